package translate

// Option mutates a Translator during construction.
type Option func(*Translator) error

// WithDictionaries appends each dictionary as its own fragment, in order.
func WithDictionaries(dicts ...Dictionary) Option {
	return func(t *Translator) error {
		for _, dict := range dicts {
			t.store.append(dict)
		}
		return nil
	}
}

// WithLanguage sets the active language the translator resolves under.
func WithLanguage(code string) Option {
	return func(t *Translator) error {
		t.store.setLanguage(code)
		return nil
	}
}

// WithTestMode starts the translator with bracketed output for unresolved
// keys.
func WithTestMode(enabled bool) Option {
	return func(t *Translator) error {
		t.testMode = enabled
		return nil
	}
}

// WithMissingHandler registers fn to observe keys that resolve nowhere,
// called with the active language and the key. Useful as a sink for
// missing-translation diagnostics during development.
func WithMissingHandler(fn func(lang, key string)) Option {
	return func(t *Translator) error {
		t.onMissing = fn
		return nil
	}
}

// WithLoader runs l at construction time and appends the loaded dictionary
// as one fragment. Loader errors abort New.
func WithLoader(l Loader) Option {
	return func(t *Translator) error {
		if l == nil {
			return nil
		}
		dict, err := l.Load()
		if err != nil {
			return err
		}
		t.store.append(dict)
		return nil
	}
}

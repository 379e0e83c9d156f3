package translate

import "sync"

// Translator resolves keys against its own dictionaries first and the
// process wide dictionary second, always under its own active language.
// The zero value is inert; build instances with New. Methods are safe for
// concurrent use.
type Translator struct {
	store *store

	mu        sync.RWMutex
	testMode  bool
	onMissing func(lang, key string)
}

// New builds a Translator starting at DefaultLanguage, applying each
// option in order. Nil options are skipped; the first option error aborts
// construction.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{store: newStore(DefaultLanguage)}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNew is New, panicking on error. Intended for package level variables
// and examples.
func MustNew(opts ...Option) *Translator {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Append retains frag and overlays its table for the active language.
func (t *Translator) Append(frag Dictionary) *Translator {
	if t == nil || t.store == nil {
		return t
	}
	t.store.append(frag)
	return t
}

// SetLanguage switches the active language, rebuilding the merged view
// from every appended fragment. Empty codes and the already active code
// leave the translator untouched.
func (t *Translator) SetLanguage(code string) *Translator {
	if t == nil || t.store == nil {
		return t
	}
	t.store.setLanguage(code)
	return t
}

// Language reports the active language code.
func (t *Translator) Language() string {
	if t == nil || t.store == nil {
		return ""
	}
	return t.store.currentLanguage()
}

// SetTestMode toggles bracketed output for unresolved keys, making missing
// translations visible in rendered fixtures.
func (t *Translator) SetTestMode(enabled bool) *Translator {
	if t == nil {
		return t
	}
	t.mu.Lock()
	t.testMode = enabled
	t.mu.Unlock()
	return t
}

// TestMode reports whether unresolved keys render bracketed.
func (t *Translator) TestMode() bool {
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.testMode
}

// Languages lists every language code the appended fragments cover.
func (t *Translator) Languages() []string {
	if t == nil || t.store == nil {
		return nil
	}
	return t.store.languages()
}

// Has reports whether key resolves under the active language, from the
// instance dictionaries or the process wide fallback.
func (t *Translator) Has(key string) bool {
	_, ok := t.resolve(key)
	return ok
}

// Text resolves key and renders it with args. Unknown keys come back as
// themselves run through the same placeholder pass, so the key text doubles
// as its own fallback template; in test mode they come back as "[key]"
// instead. Entry dispatch: numbers render as their decimal form, strings go
// through placeholder substitution, callables are invoked with args, and
// sequences or keyed maps are indexed by the first argument.
func (t *Translator) Text(key string, args ...any) string {
	e, ok := t.resolve(key)
	if !ok {
		t.reportMissing(key)
		if t.TestMode() {
			return "[" + key + "]"
		}
		return substitute(key, args...)
	}

	switch e.kind {
	case entryNumber:
		return e.str
	case entryString:
		return substitute(e.str, args...)
	case entryFunc:
		if e.fn == nil {
			return ""
		}
		return e.fn(args...)
	case entrySeq:
		return indexSeq(e.seq, args)
	case entryKeyed:
		return indexKeyed(e.keyed, args)
	}
	return ""
}

// Plural renders singular when count is exactly 1 and plural otherwise.
// The pick goes through Text, so it may itself be a dictionary key and may
// carry placeholders fed by args. Zero and negative counts are plural.
func (t *Translator) Plural(singular, plural string, count int, args ...any) string {
	pick := plural
	if count == 1 {
		pick = singular
	}
	return t.Text(pick, args...)
}

// PluralKey resolves key to a singular/plural pair and renders the side
// count selects. Keys that do not resolve to a two element sequence of
// strings yield the empty string rather than an error.
func (t *Translator) PluralKey(key string, count int, args ...any) string {
	e, ok := t.resolve(key)
	if !ok || e.kind != entrySeq || len(e.seq) != 2 {
		return ""
	}

	pick := e.seq[1]
	if count == 1 {
		pick = e.seq[0]
	}
	if pick.kind != entryString {
		return ""
	}
	return t.Text(pick.str, args...)
}

// TextFunc returns Text bound to t, for handing to callers that only need
// the plain text surface.
func (t *Translator) TextFunc() func(key string, args ...any) string {
	return t.Text
}

// resolve finds key in the instance table first, then in the process wide
// dictionary under this instance's language. The global store is read
// purely; its own active language never changes during the fallback.
func (t *Translator) resolve(key string) (entry, bool) {
	if t == nil || t.store == nil {
		return entry{}, false
	}
	if e, ok := t.store.lookup(key); ok {
		return e, true
	}
	return globalStore.lookupUnder(t.store.currentLanguage(), key)
}

func (t *Translator) reportMissing(key string) {
	if t == nil {
		return
	}

	t.mu.RLock()
	fn := t.onMissing
	t.mu.RUnlock()
	if fn == nil {
		return
	}

	lang := ""
	if t.store != nil {
		lang = t.store.currentLanguage()
	}
	fn(lang, key)
}

func indexSeq(seq []entry, args []any) string {
	if len(args) == 0 {
		return ""
	}
	idx, ok := asIndex(args[0])
	if !ok || idx < 0 || idx >= len(seq) {
		return ""
	}
	return seq[idx].valueOrCall(args...)
}

func indexKeyed(keyed map[string]entry, args []any) string {
	if len(args) == 0 {
		return ""
	}
	e, ok := keyed[stringify(args[0])]
	if !ok {
		return ""
	}
	return e.valueOrCall(args...)
}

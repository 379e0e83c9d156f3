package translate

// Helpers exposes the translator surface as template functions, ready for
// template.FuncMap. Each name gets prefix prepended, so Helpers("i18n_")
// yields "i18n_t" and friends; pass "" to keep the bare names.
func (t *Translator) Helpers(prefix string) map[string]any {
	return map[string]any{
		prefix + "t":          t.Text,
		prefix + "plural":     t.Plural,
		prefix + "plural_key": t.PluralKey,
		prefix + "ordinal":    t.Ordinal,
		prefix + "ordinalize": t.Ordinalize,
		prefix + "language":   t.Language,
	}
}

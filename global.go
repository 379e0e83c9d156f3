package translate

// DefaultLanguage is the language code the process wide dictionary starts
// with and returns to after ResetGlobal. Translators built without
// WithLanguage start here too.
const DefaultLanguage = "en_US"

// globalStore is the process wide fallback dictionary shared by every
// Translator. Instances consult it, under their own language, for keys
// their own dictionaries miss.
var globalStore = newStore(DefaultLanguage)

// AppendGlobal merges frag into the process wide dictionary.
func AppendGlobal(frag Dictionary) {
	globalStore.append(frag)
}

// SetGlobalLanguage switches the process wide dictionary's own active
// language. Empty or identical codes leave it untouched. Instance lookups
// are unaffected: the fallback always resolves under the instance's
// language, not this one.
func SetGlobalLanguage(code string) {
	globalStore.setLanguage(code)
}

// GlobalLanguage reports the process wide dictionary's active language.
func GlobalLanguage() string {
	return globalStore.currentLanguage()
}

// ResetGlobal drops every fragment appended to the process wide dictionary
// and restores DefaultLanguage. Calling it again on an already clean state
// changes nothing.
func ResetGlobal() {
	globalStore.reset(DefaultLanguage)
}

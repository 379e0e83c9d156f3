package translate

import (
	"sort"
	"sync"
)

// store holds the ordered dictionary fragments and the merged lookup table
// for the active language. Appending overlays only the active language's
// table; switching languages rebuilds the table from every retained
// fragment, so the merged view always equals the left to right fold of the
// fragments for that language, later appends winning per key.
type store struct {
	mu        sync.RWMutex
	language  string
	fragments []Dictionary
	table     map[string]entry
}

func newStore(language string) *store {
	return &store{
		language: language,
		table:    make(map[string]entry),
	}
}

func (s *store) append(frag Dictionary) {
	if len(frag) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fragments = append(s.fragments, frag)
	overlayTable(s.table, frag[s.language])
}

// setLanguage switches the active language and rebuilds the merged table.
// Empty codes and the already active code leave the store untouched.
func (s *store) setLanguage(code string) {
	if code == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if code == s.language {
		return
	}

	s.language = code
	s.table = s.rebuildLocked(code)
}

func (s *store) rebuildLocked(code string) map[string]entry {
	table := make(map[string]entry)
	for _, frag := range s.fragments {
		overlayTable(table, frag[code])
	}
	return table
}

func (s *store) currentLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *store) lookup(key string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.table[key]
	return e, ok
}

// lookupUnder resolves key as if code were the active language, without
// touching the store. When code matches the active language the merged
// table answers directly; otherwise the retained fragments are scanned in
// reverse append order, which finds the same entry the fold would.
func (s *store) lookupUnder(code, key string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if code == s.language {
		e, ok := s.table[key]
		return e, ok
	}

	for i := len(s.fragments) - 1; i >= 0; i-- {
		if raw, ok := s.fragments[i][code][key]; ok {
			return normalizeValue(key, raw), true
		}
	}
	return entry{}, false
}

// languages lists every language code any retained fragment covers.
func (s *store) languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var codes []string
	for _, frag := range s.fragments {
		for code := range frag {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}

	// make the listing deterministic
	sort.Strings(codes)
	return codes
}

// reset drops every fragment and restores language, returning the store to
// its freshly constructed state.
func (s *store) reset(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = language
	s.fragments = nil
	s.table = make(map[string]entry)
}

// overlayTable normalizes src's raw values into dst, later keys replacing
// earlier ones. The shallow per key overwrite is the merge primitive every
// store operation builds on.
func overlayTable(dst map[string]entry, src Table) {
	for key, raw := range src {
		dst[key] = normalizeValue(key, raw)
	}
}

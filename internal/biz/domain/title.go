package domain

import "strings"

// TitleKey returns the normalized form of a movie title used as its
// identity: matching, deduplication and exclusion are all case-insensitive.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// TitleSet is an ordered set of movie titles keyed by TitleKey.
// The first-seen casing of a title is kept as its canonical form;
// later additions of the same title under different casing are ignored.
type TitleSet struct {
	keys      []string
	canonical map[string]string
}

// NewTitleSet creates a TitleSet from the given titles, in order.
func NewTitleSet(titles ...string) *TitleSet {
	s := &TitleSet{canonical: make(map[string]string)}
	for _, t := range titles {
		s.Add(t)
	}
	return s
}

// Add inserts a title. It reports whether the title was new.
func (s *TitleSet) Add(title string) bool {
	key := TitleKey(title)
	if _, ok := s.canonical[key]; ok {
		return false
	}
	s.keys = append(s.keys, key)
	s.canonical[key] = title
	return true
}

// Has reports whether the title is in the set, case-insensitively.
func (s *TitleSet) Has(title string) bool {
	_, ok := s.canonical[TitleKey(title)]
	return ok
}

// Canonical returns the stored casing for a title and whether it exists.
func (s *TitleSet) Canonical(title string) (string, bool) {
	t, ok := s.canonical[TitleKey(title)]
	return t, ok
}

// Remove deletes a title case-insensitively. It reports whether it existed.
func (s *TitleSet) Remove(title string) bool {
	key := TitleKey(title)
	if _, ok := s.canonical[key]; !ok {
		return false
	}
	delete(s.canonical, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Titles returns the canonical titles in insertion order.
func (s *TitleSet) Titles() []string {
	out := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.canonical[k])
	}
	return out
}

// Len returns the number of titles in the set.
func (s *TitleSet) Len() int {
	return len(s.keys)
}

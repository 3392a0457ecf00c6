package types

import "strings"

// SkillSet is a case-insensitive set of skill names.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from names.
func NewSkillSet(names ...[]string) SkillSet {
	set := make(SkillSet)
	for _, list := range names {
		for _, n := range list {
			set.Add(n)
		}
	}
	return set
}

// Add inserts a name.
func (s SkillSet) Add(name string) {
	s[strings.ToLower(name)] = struct{}{}
}

// Has reports whether name is in the set, ignoring case.
func (s SkillSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// DedupeSkills removes case-insensitive duplicates and blank entries,
// keeping the first spelling of each name.
func DedupeSkills(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(SkillSet, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen.Has(n) {
			continue
		}
		seen.Add(n)
		out = append(out, n)
	}
	return out
}

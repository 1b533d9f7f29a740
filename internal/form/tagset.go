package form

import "strings"

// TagSet is the ordered, duplicate-free list of selected tech-stack entries.
// Operations are value-semantic: they return a new set and never mutate the
// receiver's backing array, so old states stay valid.
type TagSet []string

// Add appends the trimmed tag. Adding a tag that is already present returns
// the set unchanged.
func (s TagSet) Add(tag string) TagSet {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) {
		return s
	}
	next := make(TagSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, tag)
}

// Remove drops the first exact match; absent tags are a no-op.
func (s TagSet) Remove(tag string) TagSet {
	for i, t := range s {
		if t == tag {
			next := make(TagSet, 0, len(s)-1)
			next = append(next, s[:i]...)
			return append(next, s[i+1:]...)
		}
	}
	return s
}

// RemoveLast drops the most recently added tag; empty sets are a no-op.
func (s TagSet) RemoveLast() TagSet {
	if len(s) == 0 {
		return s
	}
	return s[: len(s)-1 : len(s)-1]
}

func (s TagSet) Contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// Serialize joins the tags with ", " in insertion order. This exact string is
// what the submitted request carries as its techstack field.
func (s TagSet) Serialize() string {
	return strings.Join(s, ", ")
}

// ExcludeSet returns the tags as a lookup set for the suggestion matcher, so
// already-selected technologies are not suggested again.
func (s TagSet) ExcludeSet() map[string]struct{} {
	if len(s) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(s))
	for _, t := range s {
		out[t] = struct{}{}
	}
	return out
}

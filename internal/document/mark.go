package document

import (
	"sort"
	"strings"
)

// Mark is a symbolic formatting tag attached to a text node.
type Mark string

// Well-known marks.
const (
	MarkBold   Mark = "bold"
	MarkItalic Mark = "italic"
)

// MarkSet is an immutable, canonically ordered set of marks.
// The zero value is the empty set.
type MarkSet struct {
	marks []Mark // sorted, unique
}

// NewMarkSet builds a set from marks; duplicates and empty tags are dropped.
func NewMarkSet(marks ...Mark) MarkSet {
	if len(marks) == 0 {
		return MarkSet{}
	}
	out := make([]Mark, 0, len(marks))
	for _, m := range marks {
		if m != "" {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	// Compact duplicates in place
	n := 0
	for i, m := range out {
		if i > 0 && m == out[n-1] {
			continue
		}
		out[n] = m
		n++
	}
	if n == 0 {
		return MarkSet{}
	}
	return MarkSet{marks: out[:n]}
}

// Has returns true if the set contains m.
func (s MarkSet) Has(m Mark) bool {
	i := sort.Search(len(s.marks), func(i int) bool { return s.marks[i] >= m })
	return i < len(s.marks) && s.marks[i] == m
}

// With returns a set that also contains m.
func (s MarkSet) With(m Mark) MarkSet {
	if m == "" || s.Has(m) {
		return s
	}
	out := make([]Mark, 0, len(s.marks)+1)
	out = append(out, s.marks...)
	out = append(out, m)
	return NewMarkSet(out...)
}

// Without returns a set that does not contain m.
func (s MarkSet) Without(m Mark) MarkSet {
	if !s.Has(m) {
		return s
	}
	out := make([]Mark, 0, len(s.marks)-1)
	for _, existing := range s.marks {
		if existing != m {
			out = append(out, existing)
		}
	}
	if len(out) == 0 {
		return MarkSet{}
	}
	return MarkSet{marks: out}
}

// Len returns the number of marks.
func (s MarkSet) Len() int {
	return len(s.marks)
}

// IsEmpty returns true if the set has no marks.
func (s MarkSet) IsEmpty() bool {
	return len(s.marks) == 0
}

// Slice returns the marks in set order.
func (s MarkSet) Slice() []Mark {
	out := make([]Mark, len(s.marks))
	copy(out, s.marks)
	return out
}

// Equal returns true if both sets hold the same marks.
func (s MarkSet) Equal(other MarkSet) bool {
	if len(s.marks) != len(other.marks) {
		return false
	}
	for i := range s.marks {
		if s.marks[i] != other.marks[i] {
			return false
		}
	}
	return true
}

// String returns a representation like "{bold,italic}".
func (s MarkSet) String() string {
	parts := make([]string, len(s.marks))
	for i, m := range s.marks {
		parts[i] = string(m)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

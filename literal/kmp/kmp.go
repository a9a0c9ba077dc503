// Package kmp implements Knuth–Morris–Pratt literal substring search.
package kmp

// Matcher finds all occurrences of a single literal pattern in text using
// the KMP failure function. It is built once per pattern and reused across
// many text inputs.
type Matcher struct {
	pattern string
	lps     []int
}

// New precomputes the LPS table for pattern and returns a reusable Matcher.
func New(pattern string) *Matcher {
	return &Matcher{pattern: pattern, lps: computeLPS(pattern)}
}

// Pattern returns the literal pattern this Matcher was built for.
func (m *Matcher) Pattern() string { return m.pattern }

// LPS returns a copy of the precomputed longest-proper-prefix-suffix table.
// Exposed for tests and debugging, not used by FindAll itself beyond
// construction.
func (m *Matcher) LPS() []int {
	out := make([]int, len(m.lps))
	copy(out, m.lps)
	return out
}

// computeLPS builds the failure function: lps[i] is the length of the
// longest proper prefix of pattern[0..i] that is also a suffix of it.
func computeLPS(pattern string) []int {
	n := len(pattern)
	lps := make([]int, n)
	length := 0
	i := 1
	for i < n {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}
	return lps
}

// FindAll scans text for every occurrence of the pattern, including
// overlapping ones, and returns their ordered zero-based start positions
// along with the count.
func (m *Matcher) FindAll(text string) ([]int, int) {
	patLen := len(m.pattern)
	if patLen == 0 {
		return nil, 0
	}

	var positions []int
	i, j := 0, 0
	n := len(text)

	for i < n {
		if m.pattern[j] == text[i] {
			i++
			j++
		}

		switch {
		case j == patLen:
			positions = append(positions, i-j)
			j = m.lps[j-1]
		case i < n && m.pattern[j] != text[i]:
			if j != 0 {
				j = m.lps[j-1]
			} else {
				i++
			}
		}
	}
	return positions, len(positions)
}

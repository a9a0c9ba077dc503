// Package boyer implements Boyer-Moore literal substring search using the
// bad-character heuristic.
package boyer

// Matcher finds all occurrences of a single literal pattern in text using
// the bad-character rule. It is built once per pattern and reused across
// many text inputs.
type Matcher struct {
	pattern string
	last    map[byte]int
}

// New precomputes the last-occurrence table for pattern and returns a
// reusable Matcher.
func New(pattern string) *Matcher {
	last := make(map[byte]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		last[pattern[i]] = i
	}
	return &Matcher{pattern: pattern, last: last}
}

// Pattern returns the literal pattern this Matcher was built for.
func (m *Matcher) Pattern() string { return m.pattern }

func (m *Matcher) lastOccurrence(c byte) int {
	if idx, ok := m.last[c]; ok {
		return idx
	}
	return -1
}

// FindAll scans text right-to-left within each window for every occurrence
// of the pattern. On a full match, the window shifts by exactly one byte
// rather than by the pattern length, so overlapping matches are reported —
// the same overlap policy kmp.Matcher.FindAll uses, so the two literal
// engines agree on which positions count as matches. On a mismatch the
// bad-character rule shifts by max(1, k-last[badChar]).
func (m *Matcher) FindAll(text string) ([]int, int) {
	patLen := len(m.pattern)
	n := len(text)
	if patLen == 0 {
		return nil, 0
	}

	var positions []int
	i := 0
	for i <= n-patLen {
		k := patLen - 1
		for k >= 0 && m.pattern[k] == text[i+k] {
			k--
		}
		if k < 0 {
			positions = append(positions, i)
			i++
			continue
		}
		shift := k - m.lastOccurrence(text[i+k])
		if shift < 1 {
			shift = 1
		}
		i += shift
	}
	return positions, len(positions)
}

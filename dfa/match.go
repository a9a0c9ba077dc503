package dfa

// FindAll scans line for all non-overlapping matches of the DFA's language
// as a substring: for each starting position, drive the DFA until it runs
// out of transitions, remembering the longest position at which it was in
// an accepting state (maximal munch — required so that, for example, (ab)+
// matches "ababab" as one 6-character match rather than stopping after the
// first "ab"). A start with no accepting position is rejected and the scan
// advances by one byte; a zero-length match still advances by at least one
// byte so the scan always terminates.
func (d *DFA) FindAll(line string) ([]int, int) {
	var positions []int

	for i := 0; i <= len(line); {
		end, matched := d.longestMatchAt(line, i)
		if !matched {
			i++
			continue
		}
		positions = append(positions, i)
		if end > i {
			i = end
		} else {
			i++
		}
	}
	return positions, len(positions)
}

// longestMatchAt drives the DFA from i, returning the end offset of the
// longest match starting at i, if any.
func (d *DFA) longestMatchAt(line string, i int) (end int, matched bool) {
	cur := d.Start()
	bestEnd := -1
	if d.IsAccept(cur) {
		bestEnd = i
		matched = true
	}

	for j := i; j < len(line); j++ {
		next, ok := d.Step(cur, line[j])
		if !ok {
			break
		}
		cur = next
		if d.IsAccept(cur) {
			bestEnd = j + 1
			matched = true
		}
	}
	return bestEnd, matched
}

// Package dfa determinizes a Thompson NFA into a DFA via subset
// construction, and drives that DFA over text lines to find all
// non-overlapping substring matches.
//
// Canonical state identity uses a sorted, inspectable key rather than a
// hash: the ε-closure-closed set of NFA states that makes up a DState is
// sorted and used as a map key directly, which keeps state identity
// debuggable wherever the state space is small enough to afford it.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/litegrep/internal/sparse"
	"github.com/coregx/litegrep/nfa"
)

// DState indexes into a DFA's state table.
type DState int

type dstate struct {
	nfaSet []nfa.StateID
	trans  map[byte]DState
	accept bool
}

// DFA is an immutable deterministic finite automaton built from an NFA by
// subset construction. Once built it is safe for concurrent read-only use.
type DFA struct {
	states   []dstate
	start    DState
	alphabet []byte
}

// Start returns the DFA's start state.
func (d *DFA) Start() DState { return d.start }

// Step returns the successor of state s on byte c, and whether a
// transition exists. A missing transition means match failure for any
// string passing through s on c, not an error.
func (d *DFA) Step(s DState, c byte) (DState, bool) {
	next, ok := d.states[s].trans[c]
	return next, ok
}

// IsAccept reports whether s is an accepting state.
func (d *DFA) IsAccept(s DState) bool { return d.states[s].accept }

// NumStates returns the number of DFA states.
func (d *DFA) NumStates() int { return len(d.states) }

// Build runs subset construction over n, producing its determinized form.
func Build(n *nfa.NFA) *DFA {
	d := &DFA{}
	seen := make(map[string]DState)

	startSet := epsilonClosure(n, []nfa.StateID{n.Start()})
	startKey, startSorted := canonicalize(startSet)
	d.states = append(d.states, dstate{nfaSet: startSorted, accept: containsState(startSorted, n.Accept())})
	seen[startKey] = 0
	d.start = 0

	d.alphabet = sortedAlphabet(n.Alphabet())

	worklist := []DState{0}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		trans := make(map[byte]DState, len(d.alphabet))
		for _, c := range d.alphabet {
			moved := move(n, d.states[cur].nfaSet, c)
			if len(moved) == 0 {
				continue // no transition: implicit dead state
			}
			closure := epsilonClosure(n, moved)
			key, sorted := canonicalize(closure)
			next, ok := seen[key]
			if !ok {
				d.states = append(d.states, dstate{
					nfaSet: sorted,
					accept: containsState(sorted, n.Accept()),
				})
				next = DState(len(d.states) - 1)
				seen[key] = next
				worklist = append(worklist, next)
			}
			trans[c] = next
		}
		d.states[cur].trans = trans
	}

	return d
}

func containsState(set []nfa.StateID, target nfa.StateID) bool {
	for _, s := range set {
		if s == target {
			return true
		}
	}
	return false
}

// epsilonClosure computes the smallest superset of seed closed under
// ε-transitions, via an explicit stack with a visited set.
func epsilonClosure(n *nfa.NFA, seed []nfa.StateID) []nfa.StateID {
	visited := sparse.NewSparseSet(uint32(n.NumStates()))
	stack := make([]nfa.StateID, 0, len(seed))
	for _, s := range seed {
		visited.Insert(uint32(s))
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.State(s).Eps {
			if !visited.Contains(uint32(e)) {
				visited.Insert(uint32(e))
				stack = append(stack, e)
			}
		}
	}
	values := visited.Values()
	out := make([]nfa.StateID, len(values))
	for i, v := range values {
		out[i] = nfa.StateID(v)
	}
	return out
}

// move returns the union of Δ(q, c) over q ∈ states.
func move(n *nfa.NFA, states []nfa.StateID, c byte) []nfa.StateID {
	var out []nfa.StateID
	for _, s := range states {
		st := n.State(s)
		if st.IsByte() && st.Byte == c {
			out = append(out, st.Next)
		}
	}
	return out
}

// canonicalize sorts a state set and derives a map key from it, so that two
// DStates with equal underlying NFA-state sets compare identical.
func canonicalize(states []nfa.StateID) (string, []nfa.StateID) {
	sorted := append([]nfa.StateID(nil), states...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sb strings.Builder
	for _, s := range sorted {
		fmt.Fprintf(&sb, "%d,", s)
	}
	return sb.String(), sorted
}

func sortedAlphabet(alphabet map[byte]struct{}) []byte {
	out := make([]byte, 0, len(alphabet))
	for c := range alphabet {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the DFA's transition table, one row per state, for
// debugging and tests.
func (d *DFA) String() string {
	var sb strings.Builder
	for i, st := range d.states {
		marker := " "
		if st.accept {
			marker = "*"
		}
		if DState(i) == d.start {
			marker += ">"
		}
		fmt.Fprintf(&sb, "%s state %d (nfa=%v):\n", marker, i, st.nfaSet)
		keys := make([]byte, 0, len(st.trans))
		for c := range st.trans {
			keys = append(keys, c)
		}
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		for _, c := range keys {
			fmt.Fprintf(&sb, "    %q -> %d\n", c, st.trans[c])
		}
	}
	return sb.String()
}

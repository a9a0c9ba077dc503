package ast

// Parse compiles a restricted-ERE pattern into an abstract syntax tree.
//
// The algorithm is a flat-list rewrite rather than a recursive-descent or
// precedence-table parser: the pattern is tokenized into a flat slice of
// *Tree nodes, and a fixed sequence of reduction passes folds that slice
// down to a single tree, highest precedence first: grouping, then postfix
// (* then +), then concatenation, then alternation. Each pass is applied to
// a fixed point before the next begins, which is what makes concatenation
// and alternation come out left-associative.
func Parse(pattern string) (*Tree, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Err: ErrEmptyPattern}
	}

	tokens := tokenize(pattern)
	tree, err := reduce(tokens)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: err}
	}
	return stripProtection(tree), nil
}

// tokenize turns a pattern string into a flat token list: each metacharacter
// becomes an operator placeholder with no children, and each literal byte is
// wrapped in a protection marker so later passes treat it uniformly as an
// already-reduced subtree.
func tokenize(pattern string) []*Tree {
	tokens := make([]*Tree, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '(':
			tokens = append(tokens, &Tree{Kind: parenL})
		case ')':
			tokens = append(tokens, &Tree{Kind: parenR})
		case '|':
			tokens = append(tokens, &Tree{Kind: Altern})
		case '*':
			tokens = append(tokens, &Tree{Kind: Star})
		case '+':
			tokens = append(tokens, &Tree{Kind: Plus})
		default:
			tokens = append(tokens, newOp(protection, newLiteral(c)))
		}
	}
	return tokens
}

// reduce drives the fixed sequence of rewrite passes over a token list and
// returns the single surviving tree, still protection-wrapped.
func reduce(tokens []*Tree) (*Tree, error) {
	var err error

	for containsParen(tokens) {
		tokens, err = reduceParens(tokens)
		if err != nil {
			return nil, err
		}
	}
	for containsUnattached(tokens, Star) {
		tokens, err = reducePostfix(tokens, Star)
		if err != nil {
			return nil, err
		}
	}
	for containsUnattached(tokens, Plus) {
		tokens, err = reducePostfix(tokens, Plus)
		if err != nil {
			return nil, err
		}
	}
	for containsConcat(tokens) {
		tokens = reduceConcat(tokens)
	}
	for containsUnattached(tokens, Altern) {
		tokens, err = reduceAltern(tokens)
		if err != nil {
			return nil, err
		}
	}

	if len(tokens) != 1 {
		return nil, ErrResidualTrees
	}
	return tokens[0], nil
}

// containsUnattached reports whether trees holds an operator placeholder of
// the given kind that has not yet been given operands (Star, Plus or
// Altern with no children).
func containsUnattached(trees []*Tree, kind Kind) bool {
	for _, t := range trees {
		if t.Kind == kind && len(t.Kids) == 0 {
			return true
		}
	}
	return false
}

func containsParen(trees []*Tree) bool {
	for _, t := range trees {
		if t.Kind == parenL || t.Kind == parenR {
			return true
		}
	}
	return false
}

// reduceParens finds the leftmost ')', scans left for its matching '(',
// recursively reduces the enclosed slice, and replaces the whole span with
// a single protection node wrapping the result.
func reduceParens(trees []*Tree) ([]*Tree, error) {
	result := make([]*Tree, 0, len(trees))
	found := false

	for _, t := range trees {
		if !found && t.Kind == parenR {
			var content []*Tree
			closed := false
			for len(result) > 0 {
				last := result[len(result)-1]
				result = result[:len(result)-1]
				if last.Kind == parenL {
					closed = true
					break
				}
				content = append([]*Tree{last}, content...)
			}
			if !closed {
				return nil, ErrMismatchedParen
			}
			found = true
			sub, err := reduce(content)
			if err != nil {
				return nil, err
			}
			result = append(result, newOp(protection, sub))
		} else {
			result = append(result, t)
		}
	}
	if !found {
		return nil, ErrMismatchedParen
	}
	return result, nil
}

// reducePostfix folds the first unattached Star or Plus operator (in that
// order of priority) onto its immediate left neighbor.
func reducePostfix(trees []*Tree, kind Kind) ([]*Tree, error) {
	result := make([]*Tree, 0, len(trees))
	found := false

	for _, t := range trees {
		if !found && t.Kind == kind && len(t.Kids) == 0 {
			if len(result) == 0 {
				return nil, ErrDanglingPostfix
			}
			if prev := result[len(result)-1]; prev.Kind == Altern && len(prev.Kids) == 0 {
				return nil, ErrDanglingPostfix
			}
			found = true
			last := result[len(result)-1]
			result = result[:len(result)-1]
			result = append(result, newOp(kind, last))
		} else {
			result = append(result, t)
		}
	}
	return result, nil
}

// reduceConcat folds the first adjacent pair of non-alternation nodes it
// finds into a binary Concat node. A node with Kind Altern — attached or
// not — breaks concatenation, since alternation binds its operands only
// after concatenation has already been resolved on either side.
func reduceConcat(trees []*Tree) []*Tree {
	result := make([]*Tree, 0, len(trees))
	found := false
	firstFound := false

	for _, t := range trees {
		switch {
		case !found && !firstFound && t.Kind != Altern:
			firstFound = true
			result = append(result, t)
		case !found && firstFound && t.Kind == Altern:
			firstFound = false
			result = append(result, t)
		case !found && firstFound && t.Kind != Altern:
			found = true
			last := result[len(result)-1]
			result = result[:len(result)-1]
			result = append(result, newOp(Concat, last, t))
		default:
			result = append(result, t)
		}
	}
	return result
}

// containsConcat reports whether two adjacent non-alternation nodes remain
// to be folded.
func containsConcat(trees []*Tree) bool {
	firstFound := false
	for _, t := range trees {
		if t.Kind != Altern && !firstFound {
			firstFound = true
			continue
		}
		if firstFound {
			if t.Kind != Altern {
				return true
			}
			firstFound = false
		}
	}
	return false
}

// reduceAltern folds the first unattached alternation operator onto its
// left and right neighbors.
func reduceAltern(trees []*Tree) ([]*Tree, error) {
	result := make([]*Tree, 0, len(trees))
	found := false
	done := false
	var left *Tree

	for _, t := range trees {
		switch {
		case !found && t.Kind == Altern && len(t.Kids) == 0:
			if len(result) == 0 {
				return nil, ErrDanglingAltern
			}
			found = true
			left = result[len(result)-1]
			result = result[:len(result)-1]
		case found && !done:
			if t.Kind == Altern && len(t.Kids) == 0 {
				return nil, ErrDanglingAltern
			}
			done = true
			result = append(result, newOp(Altern, left, t))
		default:
			result = append(result, t)
		}
	}
	if found && !done {
		return nil, ErrDanglingAltern
	}
	return result, nil
}

// stripProtection removes every protection node from the tree, recursively.
// Applying it twice is idempotent: a tree with no protection nodes left is
// returned unchanged.
func stripProtection(t *Tree) *Tree {
	if t == nil || len(t.Kids) == 0 {
		return t
	}
	if t.Kind == protection {
		return stripProtection(t.Kids[0])
	}
	kids := make([]*Tree, len(t.Kids))
	for i, k := range t.Kids {
		kids[i] = stripProtection(k)
	}
	return &Tree{Kind: t.Kind, Lit: t.Lit, Kids: kids}
}

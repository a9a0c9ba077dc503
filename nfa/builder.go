package nfa

import "github.com/coregx/litegrep/ast"

// Build compiles an AST into a Thompson NFA. Each node type maps to an NFA
// fragment with exactly one entry and one exit state, composed bottom-up.
func Build(tree *ast.Tree) (*NFA, error) {
	b := &builder{alphabet: make(map[byte]struct{})}
	entry, exit, err := b.build(tree)
	if err != nil {
		return nil, err
	}
	b.states[exit].Match = true
	return &NFA{states: b.states, start: entry, accept: exit, alphabet: b.alphabet}, nil
}

type builder struct {
	states   []State
	alphabet map[byte]struct{}
}

func (b *builder) newState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Next: InvalidState})
	return id
}

func (b *builder) addEpsilon(from StateID, to ...StateID) {
	b.states[from].Eps = append(b.states[from].Eps, to...)
}

// build recursively compiles tree, returning the fragment's entry and exit
// state ids.
func (b *builder) build(tree *ast.Tree) (entry, exit StateID, err error) {
	switch tree.Kind {
	case ast.Literal:
		entry = b.newState()
		exit = b.newState()
		b.states[entry].Byte = tree.Lit
		b.states[entry].Next = exit
		b.alphabet[tree.Lit] = struct{}{}
		return entry, exit, nil

	case ast.Concat:
		el, xl, err := b.build(tree.Kids[0])
		if err != nil {
			return 0, 0, err
		}
		er, xr, err := b.build(tree.Kids[1])
		if err != nil {
			return 0, 0, err
		}
		b.addEpsilon(xl, er)
		return el, xr, nil

	case ast.Altern:
		el, xl, err := b.build(tree.Kids[0])
		if err != nil {
			return 0, 0, err
		}
		er, xr, err := b.build(tree.Kids[1])
		if err != nil {
			return 0, 0, err
		}
		s := b.newState()
		a := b.newState()
		b.addEpsilon(s, el, er)
		b.addEpsilon(xl, a)
		b.addEpsilon(xr, a)
		return s, a, nil

	case ast.Star:
		ex, xx, err := b.build(tree.Kids[0])
		if err != nil {
			return 0, 0, err
		}
		s := b.newState()
		a := b.newState()
		b.addEpsilon(s, ex, a)
		b.addEpsilon(xx, ex, a)
		return s, a, nil

	case ast.Plus:
		ex, xx, err := b.build(tree.Kids[0])
		if err != nil {
			return 0, 0, err
		}
		s := b.newState()
		a := b.newState()
		b.addEpsilon(s, ex)
		b.addEpsilon(xx, ex, a)
		return s, a, nil

	default:
		return 0, 0, ErrUnknownOperator
	}
}

// Package ast parses the restricted extended regular expression language
// accepted by litegrep into an abstract syntax tree.
//
// The accepted metacharacters are ( ) | * +; concatenation has no operator
// character and is inferred from adjacency. Every other byte, including
// whitespace and digits, is a literal. There are no escapes, character
// classes, anchors, or counted repetition.
package ast

import "fmt"

// Kind identifies the shape of a Tree node.
type Kind uint8

const (
	// Literal is a leaf node carrying a single matched byte.
	Literal Kind = iota
	// Concat is a binary node: match Kids[0] then Kids[1].
	Concat
	// Altern is a binary node: match Kids[0] or Kids[1].
	Altern
	// Star is a unary node: match Kids[0] zero or more times.
	Star
	// Plus is a unary node: match Kids[0] one or more times.
	Plus

	// protection is a transient grouping marker used internally by the
	// parser to shield a parenthesized or literal subexpression from later
	// rewrite passes. It never appears in a Tree returned by Parse.
	protection

	// parenL and parenR are transient tokens representing '(' and ')' in
	// the flat token list produced by tokenize. They are consumed by
	// reduceParens and never survive into any subtree.
	parenL
	parenR
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Concat:
		return "Concat"
	case Altern:
		return "Altern"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case protection:
		return "protection"
	case parenL:
		return "("
	case parenR:
		return ")"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// arity returns the number of children a node of this kind must have.
func (k Kind) arity() int {
	switch k {
	case Literal:
		return 0
	case Star, Plus, protection:
		return 1
	case Concat, Altern:
		return 2
	default:
		return -1
	}
}

// Tree is a node in the regex abstract syntax tree. A node is either a
// Literal leaf carrying one byte, or an operator node with a fixed arity:
// Concat and Altern are binary, Star and Plus are unary.
type Tree struct {
	Kind Kind
	Lit  byte
	Kids []*Tree
}

func newLiteral(c byte) *Tree {
	return &Tree{Kind: Literal, Lit: c}
}

func newOp(k Kind, kids ...*Tree) *Tree {
	return &Tree{Kind: k, Kids: kids}
}

// String renders the tree as a parenthesized prefix expression, e.g.
// Concat(a,Star(b)). Useful for debugging and tests.
func (t *Tree) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind == Literal {
		return string(t.Lit)
	}
	s := t.Kind.String() + "(" + t.Kids[0].String()
	for _, k := range t.Kids[1:] {
		s += "," + k.String()
	}
	return s + ")"
}

// Validate checks the two structural invariants Parse must uphold: no
// protection markers survive, and every operator's arity matches its kind.
func Validate(t *Tree) error {
	if t == nil {
		return nil
	}
	if t.Kind == protection {
		return fmt.Errorf("ast: residual protection node in %v", t)
	}
	if want := t.Kind.arity(); want >= 0 && len(t.Kids) != want {
		return fmt.Errorf("ast: %v has %d children, want %d", t.Kind, len(t.Kids), want)
	}
	for _, k := range t.Kids {
		if err := Validate(k); err != nil {
			return err
		}
	}
	return nil
}

// hasProtection reports whether the tree (or any descendant) is still
// wrapped in a protection marker. Used only by tests to assert the
// parser's invariant that Parse never returns one.
func (t *Tree) hasProtection() bool {
	if t == nil {
		return false
	}
	if t.Kind == protection {
		return true
	}
	for _, k := range t.Kids {
		if k.hasProtection() {
			return true
		}
	}
	return false
}

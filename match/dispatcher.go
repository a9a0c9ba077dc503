// Package match unifies the three interchangeable search engines — KMP,
// Boyer-Moore, and the regex NFA/DFA pipeline — behind a single interface so
// callers can build one and reuse it across every line of input, without
// caring which engine they asked for.
package match

import (
	"fmt"

	"github.com/coregx/litegrep/ast"
	"github.com/coregx/litegrep/dfa"
	"github.com/coregx/litegrep/literal/boyer"
	"github.com/coregx/litegrep/literal/kmp"
	"github.com/coregx/litegrep/nfa"
)

// Matcher is satisfied by every engine: given a line of text, it reports the
// zero-based start offsets of every match and their count.
type Matcher interface {
	FindAll(text string) (positions []int, count int)
}

// Engine selects which Matcher implementation Dispatcher builds.
type Engine int

const (
	KMP Engine = iota
	Boyer
	Regex
)

func (e Engine) String() string {
	switch e {
	case KMP:
		return "kmp"
	case Boyer:
		return "boyer"
	case Regex:
		return "regex"
	default:
		return fmt.Sprintf("match.Engine(%d)", int(e))
	}
}

// ParseEngine maps the CLI's -m flag values to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "kmp":
		return KMP, nil
	case "boyer":
		return Boyer, nil
	case "regex":
		return Regex, nil
	default:
		return 0, fmt.Errorf("match: unknown engine %q (want kmp, boyer, or regex)", name)
	}
}

// Dispatcher wraps one compiled Matcher. It is built once per (engine,
// pattern) pair and reused across every line of the input file, so regex
// compilation (parse → NFA → DFA) happens exactly once per run.
type Dispatcher struct {
	engine  Engine
	pattern string
	matcher Matcher
}

// NewDispatcher compiles pattern for the given engine. For Regex, pattern is
// parsed as a restricted ERE and run through Thompson construction and
// subset construction; for KMP and Boyer it is treated as a literal string.
func NewDispatcher(engine Engine, pattern string) (*Dispatcher, error) {
	var m Matcher
	switch engine {
	case KMP:
		m = kmp.New(pattern)
	case Boyer:
		m = boyer.New(pattern)
	case Regex:
		tree, err := ast.Parse(pattern)
		if err != nil {
			return nil, err
		}
		n, err := nfa.Build(tree)
		if err != nil {
			return nil, err
		}
		m = dfa.Build(n)
	default:
		return nil, fmt.Errorf("match: unknown engine %v", engine)
	}
	return &Dispatcher{engine: engine, pattern: pattern, matcher: m}, nil
}

// Engine reports which engine this Dispatcher was built for.
func (d *Dispatcher) Engine() Engine { return d.engine }

// Pattern returns the original pattern string this Dispatcher was compiled
// from.
func (d *Dispatcher) Pattern() string { return d.pattern }

// FindAll delegates to the compiled engine.
func (d *Dispatcher) FindAll(text string) ([]int, int) {
	return d.matcher.FindAll(text)
}

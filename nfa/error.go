package nfa

import "errors"

// ErrUnknownOperator is returned if Build encounters an AST node kind it
// does not know how to compile. This is only reachable if the ast package's
// contract is violated (e.g. a residual protection node reaches the
// builder) — it indicates a bug upstream, not a user-facing pattern error.
var ErrUnknownOperator = errors.New("nfa: unknown AST operator")

// Command litegrep searches a file (or stdin) for lines matching a
// pattern, using one of three interchangeable engines: a literal KMP
// matcher, a literal Boyer-Moore matcher, or a small regex engine built
// from a parser, an NFA, and a subset-construction DFA.
package main

import (
	"os"

	"github.com/coregx/litegrep/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	os.Exit(runner.Run(opts))
}

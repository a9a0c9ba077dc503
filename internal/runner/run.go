package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/litegrep/internal/textio"
	"github.com/coregx/litegrep/match"
)

// Exit codes follow egrep's convention: 0 when at least one line matched, 1
// when the run completed but nothing matched, 2 on any usage or runtime
// error.
const (
	ExitMatched    = 0
	ExitNoMatch    = 1
	ExitUsageError = 2
)

// Run executes one search according to opts and returns the process exit
// code. It writes matching lines to stdout as it goes; status and error
// messages go through gologger.
func Run(opts *Options) int {
	if err := opts.Validate(); err != nil {
		gologger.Error().Msgf("%s", err)
		return ExitUsageError
	}

	pattern := opts.Pattern
	if opts.IgnoreCase {
		pattern = strings.ToLower(pattern)
	}

	dispatcher, err := match.NewDispatcher(opts.Engine(), pattern)
	if err != nil {
		gologger.Error().Msgf("compiling pattern: %s", err)
		return ExitUsageError
	}

	if opts.DryRun {
		gologger.Info().Msgf("resolved options: %+v", *opts)
		gologger.Info().Msgf("pattern %q compiled successfully with engine %s", opts.Pattern, dispatcher.Engine())
		return ExitMatched
	}

	src, err := textio.Open(opts.File)
	if err != nil {
		gologger.Error().Msgf("%s", err)
		return ExitUsageError
	}
	defer src.Close()

	lr, err := textio.NewLineReader(src, opts.Encoding)
	if err != nil {
		gologger.Error().Msgf("%s", err)
		return ExitUsageError
	}

	anyMatch := false
	matchedLines := 0
	lineNo := 0
	colorize := opts.LineNumber && isTerminal(os.Stdout)

	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		lineNo++

		haystack := line
		if opts.IgnoreCase {
			haystack = strings.ToLower(line)
		}

		_, count := dispatcher.FindAll(haystack)
		if count == 0 {
			continue
		}

		anyMatch = true
		matchedLines++
		printLine(opts, lineNo, line, colorize)

		if opts.MaxMatches > 0 && matchedLines >= opts.MaxMatches {
			break
		}
	}

	if err := lr.Err(); err != nil {
		gologger.Error().Msgf("reading %s: %s", opts.File, err)
		return ExitUsageError
	}

	if !anyMatch {
		return ExitNoMatch
	}
	return ExitMatched
}

// lineNumberColor is the ANSI escape used to bold the line-number prefix
// when stdout is an interactive terminal; it's skipped entirely when output
// is redirected or piped, since the escape codes would otherwise pollute a
// file or another program's input.
const (
	lineNumberColor = "\x1b[1;36m"
	colorReset      = "\x1b[0m"
)

func printLine(opts *Options, lineNo int, line string, colorize bool) {
	if !opts.LineNumber {
		fmt.Println(line)
		return
	}
	if colorize {
		fmt.Printf("%s%d:%s%s\n", lineNumberColor, lineNo, colorReset, line)
		return
	}
	fmt.Printf("%d:%s\n", lineNo, line)
}

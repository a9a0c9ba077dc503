// Package runner owns the CLI's flag surface and turns it into validated
// Options, in the idiom of goflags-based projectdiscovery tools: named
// flags grouped by concern, parsed once, validated once.
package runner

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/litegrep/internal/textio"
	"github.com/coregx/litegrep/match"
)

// Options holds every flag litegrep accepts.
type Options struct {
	Pattern    string
	File       string
	LineNumber bool
	IgnoreCase bool
	MaxMatches int
	Encoding   string
	EngineName string
	DryRun     bool
	Verbose    bool
	Silent     bool
}

// ParseFlags builds the flag set, parses os.Args, and returns the resulting
// Options. It does not validate cross-field constraints; call Validate for
// that.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("litegrep searches a file for lines containing a pattern, using a literal or regex matching engine.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "e", "", "pattern to search for"),
		flagSet.StringVarP(&opts.File, "file", "f", textio.Stdin, "file to search, - for stdin"),
		flagSet.StringVar(&opts.Encoding, "encoding", "", "input file encoding (default utf-8)"),
	)

	flagSet.CreateGroup("matching", "Matching",
		flagSet.StringVarP(&opts.EngineName, "mode", "m", "regex", "matching engine: kmp, boyer, or regex"),
		flagSet.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore case when matching"),
		flagSet.IntVar(&opts.MaxMatches, "max-matches", 0, "stop after this many matching lines (0 means unlimited)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.LineNumber, "line-number", "n", false, "prefix each matching line with its line number"),
		flagSet.BoolVar(&opts.DryRun, "dry-run", false, "parse and compile the pattern, then exit without reading any input"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "suppress all output except matching lines"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

// Validate checks the options for the cross-field constraints ParseFlags
// can't express as a single flag's own type.
func (o *Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	if o.MaxMatches < 0 {
		return fmt.Errorf("--max-matches must be >= 0, got %d", o.MaxMatches)
	}
	if _, err := match.ParseEngine(o.EngineName); err != nil {
		return err
	}
	return nil
}

// Engine resolves the validated EngineName into a match.Engine.
func (o *Options) Engine() match.Engine {
	e, _ := match.ParseEngine(o.EngineName)
	return e
}

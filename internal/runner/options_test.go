package runner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/litegrep/match"
)

func TestValidateRequiresPattern(t *testing.T) {
	o := &Options{Pattern: "", EngineName: "regex"}
	require.Error(t, o.Validate())
}

func TestValidateRejectsNegativeMaxMatches(t *testing.T) {
	o := &Options{Pattern: "abc", EngineName: "kmp", MaxMatches: -1}
	require.Error(t, o.Validate())
}

func TestValidateRejectsUnknownEngine(t *testing.T) {
	o := &Options{Pattern: "abc", EngineName: "nope"}
	require.Error(t, o.Validate())
}

func TestValidateAccepts(t *testing.T) {
	o := &Options{Pattern: "abc", EngineName: "boyer", MaxMatches: 0}
	require.NoError(t, o.Validate())
}

func TestEngineResolvesValidatedName(t *testing.T) {
	o := &Options{Pattern: "abc", EngineName: "regex"}
	require.NoError(t, o.Validate())
	require.Equal(t, match.Regex, o.Engine())
}

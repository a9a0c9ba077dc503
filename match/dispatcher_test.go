package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	cases := map[string]Engine{"kmp": KMP, "boyer": Boyer, "regex": Regex}
	for name, want := range cases {
		got, err := ParseEngine(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseEngine("nope")
	require.Error(t, err)
}

func TestEngineString(t *testing.T) {
	require.Equal(t, "kmp", KMP.String())
	require.Equal(t, "boyer", Boyer.String())
	require.Equal(t, "regex", Regex.String())
}

func TestNewDispatcherKMP(t *testing.T) {
	d, err := NewDispatcher(KMP, "abc")
	require.NoError(t, err)
	positions, count := d.FindAll("ab_abc_abcabc")
	require.Equal(t, []int{3, 7, 10}, positions)
	require.Equal(t, 3, count)
	require.Equal(t, KMP, d.Engine())
	require.Equal(t, "abc", d.Pattern())
}

func TestNewDispatcherBoyer(t *testing.T) {
	d, err := NewDispatcher(Boyer, "abc")
	require.NoError(t, err)
	positions, count := d.FindAll("ab_abc_abcabc")
	require.Equal(t, []int{3, 7, 10}, positions)
	require.Equal(t, 3, count)
}

func TestNewDispatcherRegex(t *testing.T) {
	d, err := NewDispatcher(Regex, "S(a|g|r)+on")
	require.NoError(t, err)
	positions, count := d.FindAll("Saon Sgon Sargon Son")
	require.Equal(t, []int{0, 5, 10}, positions)
	require.Equal(t, 3, count)
}

func TestNewDispatcherRegexInvalidPattern(t *testing.T) {
	_, err := NewDispatcher(Regex, "a(b")
	require.Error(t, err)
}

func TestNewDispatcherUnknownEngine(t *testing.T) {
	_, err := NewDispatcher(Engine(99), "abc")
	require.Error(t, err)
}

// TestAllEnginesAgreeOnLiteralPattern checks that, for a pure literal
// pattern with no regex metacharacters, all three engines report the same
// positions — the regex engine's DFA degenerates to a literal matcher in
// that case.
func TestAllEnginesAgreeOnLiteralPattern(t *testing.T) {
	text := "ab_abc_abcabc"
	pattern := "abc"

	kmpD, err := NewDispatcher(KMP, pattern)
	require.NoError(t, err)
	boyerD, err := NewDispatcher(Boyer, pattern)
	require.NoError(t, err)
	regexD, err := NewDispatcher(Regex, pattern)
	require.NoError(t, err)

	kmpPos, _ := kmpD.FindAll(text)
	boyerPos, _ := boyerD.FindAll(text)
	regexPos, _ := regexD.FindAll(text)

	require.Equal(t, kmpPos, boyerPos)
	require.Equal(t, kmpPos, regexPos)
}

package runner

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminalFalseForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, isTerminal(f))
}

package runner

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether f is attached to a terminal, via the same
// ioctl probe used to detect an interactive stdout before deciding whether
// to emit ANSI escapes. Any ioctl failure (redirected to a file, piped) is
// treated as "not a terminal" rather than an error. The probe uses the
// Linux TCGETS request, so this file builds only where unix.TCGETS exists.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}

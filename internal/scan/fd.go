package scan

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fdBin is the external enumerator binary.
const fdBin = "fd"

// fdBaseArgs are always passed: include hidden files, ignore nothing the
// walker would see, regular files only, no ANSI color in the output.
var fdBaseArgs = []string{"--hidden", "--no-ignore", "--type", "f", "--color", "never"}

// FdAvailable reports whether fd can be resolved on the execution path.
func FdAvailable() bool {
	_, err := exec.LookPath(fdBin)
	return err == nil
}

// runFd invokes fd once with every root as a search path. Any failure —
// binary missing, nonzero exit, unreadable output — is an expected
// condition, not an error: it reports to stderr and returns nil so the
// caller falls through to the walker. A nil result with no roots
// configured is indistinguishable from failure, which is fine: the
// walker over zero roots also yields nothing.
func runFd(roots, extensions, extraArgs []string) []string {
	if len(roots) == 0 {
		return nil
	}

	args := make([]string, 0, len(fdBaseArgs)+2*len(roots)+2*len(extensions)+len(extraArgs))
	args = append(args, fdBaseArgs...)
	args = append(args, FdArgs(extensions)...)
	args = append(args, extraArgs...)
	for _, root := range roots {
		args = append(args, "--search-path", root)
	}

	out, err := exec.Command(fdBin, args...).Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fd scan failed, falling back to walker: %v\n", err)
		return nil
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

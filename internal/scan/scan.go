// Package scan enumerates files under the configured roots using either
// the external fd tool or a built-in recursive walker.
package scan

// Strategy identifies which scanner enumerated the files.
type Strategy string

const (
	StrategyFd   Strategy = "fd"
	StrategyWalk Strategy = "walker"
)

// Options selects and parameterizes the scanner backend.
type Options struct {
	Extensions []string
	UseFd      bool     // user toggle for the external scanner
	FdArgs     []string // extra fd flags from configuration
}

// Run enumerates files under every root. fd is used only when enabled
// and resolvable; on any fd failure the walker runs unconditionally, so
// a result is always produced (possibly empty). The two strategies are
// equivalent modulo ordering for a given root and extension list.
func Run(roots []string, opts Options) ([]string, Strategy) {
	if opts.UseFd && FdAvailable() {
		if paths := runFd(roots, opts.Extensions, opts.FdArgs); paths != nil {
			return paths, StrategyFd
		}
	}
	return walk(roots, NewFilter(opts.Extensions)), StrategyWalk
}

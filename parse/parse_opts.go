package parse

// DefaultMaxDepth bounds nesting depth when no MaxDepth option is given.
// Lines indented past the limit are skipped with a SeverityError
// diagnostic rather than silently truncated.
const DefaultMaxDepth = 64

type parseOpts struct {
	file     string
	maxDepth int
}

type Option func(*parseOpts)

// WithFile sets the file name used in diagnostics.
func WithFile(name string) Option {
	return func(po *parseOpts) { po.file = name }
}

// MaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func MaxDepth(n int) Option {
	return func(po *parseOpts) {
		if n >= 1 {
			po.maxDepth = n
		}
	}
}

package pdb

// Options configures PDB construction. Functional options mirror the
// style the rest of this module uses for optional configuration (e.g.
// randutil.Source).
type Options struct {
	// MaxNumberStates bounds the number of abstract states a mixed
	// (numeric) PDB will ever intern. Ignored by the purely-propositional
	// fast path.
	MaxNumberStates int

	// MaxPDBSize holds the domain-product cap for a purely-propositional
	// pattern; zero means unbounded. Build does not read it: the dense fast
	// path is limited only by maxDenseStates.
	MaxPDBSize int
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the engine's defaults.
func DefaultOptions() Options {
	return Options{MaxNumberStates: 10_000, MaxPDBSize: 0}
}

// WithMaxNumberStates sets the reached-state budget for mixed PDB
// construction.
func WithMaxNumberStates(n int) Option {
	return func(o *Options) { o.MaxNumberStates = n }
}

// WithMaxPDBSize sets Options.MaxPDBSize, which Build does not read.
func WithMaxPDBSize(n int) Option {
	return func(o *Options) { o.MaxPDBSize = n }
}

func resolveOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

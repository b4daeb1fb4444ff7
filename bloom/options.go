package bloom

// Options collects the construction choices for a Filter.
type Options struct {
	journal bool
	seeds   *[2]uint32
	keyed   KeyedHash
}

type Option func(*Options)

// WithJournal selects the journaled bit store, enabling DrainJournal and
// disabling Clear, Bytes and ApplyJournal. FromBytes ignores it: a rebuilt
// bitmap is always snapshot backed.
func WithJournal() Option {
	return func(o *Options) {
		o.journal = true
	}
}

// WithHashSeeds pins the two hash seeds instead of drawing random ones.
// Filters sharing a pinned seed pair map identical items to identical bit
// offsets across processes, which FromBytes alone cannot guarantee.
func WithHashSeeds(a, b uint32) Option {
	return func(o *Options) {
		o.seeds = &[2]uint32{a, b}
	}
}

// WithKeyedHash replaces the keyed hash used for the two real hash
// evaluations. fn must be stable for identical (seed, item) pairs.
func WithKeyedHash(fn KeyedHash) Option {
	return func(o *Options) {
		o.keyed = fn
	}
}

func resolveOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keyed == nil {
		o.keyed = murmurKeyed
	}
	return o
}

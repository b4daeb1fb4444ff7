package bloom

import (
	"github.com/forestrie/go-bloom/bitvec"
)

// Store is the bit store contract the filter requires. Both bitvec variants
// satisfy it; the optional snapshot and journal capabilities are asserted
// per operation.
type Store interface {
	SetBit(i uint64)
	Bit(i uint64) bool
	BitLen() uint64
}

type snapshotStore interface {
	Store
	ClearAll()
	Bytes() []byte
	SetWord(w int, val uint64)
	WordLen() int
}

type journalStore interface {
	Store
	Drain() []bitvec.Entry
}

// Filter is a Bloom filter over a bitvec store. The zero value is not
// usable; construct with New, NewForFalsePositiveRate or FromBytes.
type Filter struct {
	store  Store
	nbits  uint64
	rounds uint32
	seeds  [2]uint32
	keyed  KeyedHash
}

// JournalUpdate carries one drained batch of modified words together with
// the hash round count of the filter that produced it.
type JournalUpdate struct {
	K       uint32
	Entries []bitvec.Entry
}

// New returns a filter backed by bitmapSize bytes, parameterized for
// itemsCount expected items. The hash round count is derived with optimalK
// and the bit store defaults to the snapshot variant.
func New(bitmapSize, itemsCount uint64, opts ...Option) (*Filter, error) {
	if bitmapSize == 0 {
		return nil, ErrBadBitmapSize
	}
	if itemsCount == 0 {
		return nil, ErrBadItemsCount
	}
	o := resolveOptions(opts)
	nbits := bitmapSize * 8
	var store Store
	if o.journal {
		store = bitvec.NewJournal(nbits)
	} else {
		store = bitvec.NewVector(nbits)
	}
	return newFilter(store, nbits, optimalK(nbits, itemsCount), o), nil
}

// NewForFalsePositiveRate sizes the bitmap with ComputeBitmapSize and
// delegates to New.
func NewForFalsePositiveRate(itemsCount uint64, fpRate float64, opts ...Option) (*Filter, error) {
	size, err := ComputeBitmapSize(itemsCount, fpRate)
	if err != nil {
		return nil, err
	}
	return New(size, itemsCount, opts...)
}

// FromBytes rebuilds a filter whose bitmap is bit for bit the serialized
// data, with the caller supplied hash round count. The store is always the
// snapshot variant. Seeds are freshly randomized unless pinned with
// WithHashSeeds; see the package documentation for the consequences.
func FromBytes(data []byte, k uint32, opts ...Option) (*Filter, error) {
	if len(data) == 0 {
		return nil, ErrShortBuffer
	}
	if k == 0 {
		return nil, ErrBadK
	}
	o := resolveOptions(opts)
	v := bitvec.VectorFromBytes(data)
	return newFilter(v, v.BitLen(), k, o), nil
}

func newFilter(store Store, nbits uint64, k uint32, o Options) *Filter {
	f := &Filter{
		store:  store,
		nbits:  nbits,
		rounds: k,
		keyed:  o.keyed,
	}
	if o.seeds != nil {
		f.seeds = *o.seeds
	} else {
		f.seeds = randomSeeds()
	}
	return f
}

// Set records the presence of item by setting its k bit offsets.
func (f *Filter) Set(item []byte) {
	var cached [2]uint64
	for i := uint32(0); i < f.rounds; i++ {
		f.store.SetBit(f.hashDerive(&cached, item, i) % f.nbits)
	}
}

// Check reports whether item is possibly in the set. False positives are
// possible, false negatives are not: after Set(x) with no intervening
// Clear, Check(x) is always true.
func (f *Filter) Check(item []byte) bool {
	var cached [2]uint64
	for i := uint32(0); i < f.rounds; i++ {
		if !f.store.Bit(f.hashDerive(&cached, item, i) % f.nbits) {
			return false
		}
	}
	return true
}

// CheckAndSet records item and reports whether it was already possibly
// present. The return value reflects the state before the call: true only
// if all k bits were set on entry; every unset bit is set in the same pass.
func (f *Filter) CheckAndSet(item []byte) bool {
	var cached [2]uint64
	present := true
	for i := uint32(0); i < f.rounds; i++ {
		off := f.hashDerive(&cached, item, i) % f.nbits
		if !f.store.Bit(off) {
			present = false
			f.store.SetBit(off)
		}
	}
	return present
}

// Clear unsets every bit. Seeds, bit count and hash rounds are unchanged.
// Journaled filters return ErrNoSnapshot: a bulk clear cannot be represented
// to incremental journal consumers without logging every word, so the
// journaled store is monotonic by contract.
func (f *Filter) Clear() error {
	s, ok := f.store.(snapshotStore)
	if !ok {
		return ErrNoSnapshot
	}
	s.ClearAll()
	return nil
}

// Bytes serializes the bitmap as ceil(nbits/8) packed bytes together with
// the hash round count, sufficient for FromBytes to rebuild the filter.
// Hash seeds are not serialized.
func (f *Filter) Bytes() ([]byte, uint32, error) {
	s, ok := f.store.(snapshotStore)
	if !ok {
		return nil, 0, ErrNoSnapshot
	}
	return s.Bytes(), f.rounds, nil
}

// DrainJournal empties the store's dirty word log, returning the
// modified-word batch for incremental replication. Each entry carries the
// word's current value, so applying a batch is idempotent and order
// insensitive per entry.
func (f *Filter) DrainJournal() (JournalUpdate, error) {
	j, ok := f.store.(journalStore)
	if !ok {
		return JournalUpdate{}, ErrNoJournal
	}
	return JournalUpdate{K: f.rounds, Entries: j.Drain()}, nil
}

// ApplyJournal overwrites the mirror's words with a batch drained from a
// source filter. The receiver must be snapshot backed and agree with the
// source on the hash round count.
func (f *Filter) ApplyJournal(u JournalUpdate) error {
	s, ok := f.store.(snapshotStore)
	if !ok {
		return ErrNoSnapshot
	}
	if u.K != f.rounds {
		return ErrBadK
	}
	for _, e := range u.Entries {
		if e.Index < 0 || e.Index >= s.WordLen() {
			return ErrBadWordIndex
		}
	}
	for _, e := range u.Entries {
		s.SetWord(e.Index, e.Word)
	}
	return nil
}

// NumBits returns the number of bits in the filter.
func (f *Filter) NumBits() uint64 {
	return f.nbits
}

// NumHashes returns the number of hash rounds used by Set and Check.
func (f *Filter) NumHashes() uint32 {
	return f.rounds
}

package bitvec

// Entry pairs a word index with the value that word held when the journal
// was drained.
type Entry struct {
	Index int
	Word  uint64
}

// Journal is the journaled bit store: every SetBit call logs the index of
// the touched word, whether or not the call changed the word. The log is
// unbounded; owners must Drain it periodically to bound memory.
type Journal struct {
	words []uint64
	nbits uint64
	dirty []int
}

// NewJournal returns an all-zero Journal addressing nbits bits with an
// empty dirty log.
func NewJournal(nbits uint64) *Journal {
	return &Journal{
		words: make([]uint64, WordCount(nbits)),
		nbits: nbits,
	}
}

// SetBit sets the bit at absolute index i and appends the touched word index
// to the dirty log. The append is unconditional: entries reflect calls, not
// state changes, so setting an already-set bit still logs.
func (j *Journal) SetBit(i uint64) {
	w := int(i >> wordShift)
	j.words[w] |= 1 << (i & wordMask)
	j.dirty = append(j.dirty, w)
}

// Bit reports whether the bit at absolute index i is set. No side effects.
func (j *Journal) Bit(i uint64) bool {
	return j.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

// BitLen returns the number of addressable bits.
func (j *Journal) BitLen() uint64 {
	return j.nbits
}

// PendingEntries returns the current length of the dirty log.
func (j *Journal) PendingEntries() int {
	return len(j.dirty)
}

// Drain empties the dirty log and returns, in original append order, each
// logged word index paired with the word's current value. A word logged
// twice appears twice, both entries carrying the same merged value, so
// applying the entries to a mirror is idempotent and order insensitive.
func (j *Journal) Drain() []Entry {
	entries := make([]Entry, len(j.dirty))
	for n, w := range j.dirty {
		entries[n] = Entry{Index: w, Word: j.words[w]}
	}
	j.dirty = j.dirty[:0]
	return entries
}

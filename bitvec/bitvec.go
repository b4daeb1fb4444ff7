package bitvec

import "encoding/binary"

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = 63
)

// WordCount returns ceil(nbits/64).
func WordCount(nbits uint64) int {
	return int((nbits + wordBits - 1) / wordBits)
}

// ByteCount returns ceil(nbits/8).
func ByteCount(nbits uint64) int {
	return int((nbits + 7) / 8)
}

// Vector is the snapshot bit store: a fixed-length bit array supporting bulk
// reset, word overwrite and packed byte serialization.
type Vector struct {
	words []uint64
	nbits uint64
}

// NewVector returns an all-zero Vector addressing nbits bits.
func NewVector(nbits uint64) *Vector {
	return &Vector{
		words: make([]uint64, WordCount(nbits)),
		nbits: nbits,
	}
}

// VectorFromBytes reconstructs the Vector serialized by Bytes. The
// reconstructed vector addresses exactly len(data)*8 bits.
func VectorFromBytes(data []byte) *Vector {
	nbits := uint64(len(data)) * 8
	buf := make([]byte, WordCount(nbits)*8)
	copy(buf, data)
	words := make([]uint64, WordCount(nbits))
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return &Vector{words: words, nbits: nbits}
}

// SetBit sets the bit at absolute index i.
func (v *Vector) SetBit(i uint64) {
	v.words[i>>wordShift] |= 1 << (i & wordMask)
}

// Bit reports whether the bit at absolute index i is set.
func (v *Vector) Bit(i uint64) bool {
	return v.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

// BitLen returns the number of addressable bits.
func (v *Vector) BitLen() uint64 {
	return v.nbits
}

// ClearAll resets every word to zero.
func (v *Vector) ClearAll() {
	clear(v.words)
}

// SetWord overwrites word w with val. This is the mirror application
// primitive: a drained journal entry is applied by overwriting the word at
// the entry's index with the entry's value.
func (v *Vector) SetWord(w int, val uint64) {
	v.words[w] = val
}

// Word returns the value of word w.
func (v *Vector) Word(w int) uint64 {
	return v.words[w]
}

// WordLen returns the number of 64 bit words.
func (v *Vector) WordLen() int {
	return len(v.words)
}

// Bytes packs the bit array into ceil(nbits/8) bytes. Words are laid out
// little endian, so bit i of the array is bit i&7 of byte i>>3 (LSB0), and
// VectorFromBytes round-trips the layout exactly.
func (v *Vector) Bytes() []byte {
	buf := make([]byte, len(v.words)*8)
	for i, w := range v.words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return buf[:ByteCount(v.nbits)]
}

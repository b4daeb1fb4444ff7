package bitvec

/*

# Bit vectors backing the Bloom filter

This package provides the fixed-length bit stores consumed by the bloom
package. Bits live in 64 bit words, bit 0 of word 0 is the least significant
bit (LSB0), and all addressing is absolute bit index arithmetic on the word
slice.

Two variants share the addressing contract:

  - Vector supports bulk clearing, word overwrite, and packed byte
    serialization for snapshot persistence.
  - Journal records, per SetBit call, the index of the touched word in an
    append-only dirty log, so a consumer can replicate only the modified
    words to a remote mirror.

The dirty log is caller managed. It is not deduplicated and nothing drains it
automatically: an owner that sets bits and never calls Drain holds a log that
grows with every SetBit call. Drain resolves each logged index to the current
word value at drain time, so replaying the drained entries in any order, any
number of times, converges the mirror on the source words.

*/

package bloom

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// KeyedHash is the external keyed hash collaborator: a seeded 64 bit hash
// with stable output for identical (seed, item) pairs.
type KeyedHash func(seed uint32, item []byte) uint64

func murmurKeyed(seed uint32, item []byte) uint64 {
	return murmur3.Sum64WithSeed(item, seed)
}

func randomSeeds() [2]uint32 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return [2]uint32{
		binary.BigEndian.Uint32(buf[0:4]),
		binary.BigEndian.Uint32(buf[4:8]),
	}
}

// hashDerive simulates the round'th hash function. Rounds 0 and 1 evaluate
// the keyed hash with seed a and seed b respectively and cache the results;
// every later round is h0 + round*h1 mod derivePrime, with wraparound 64 bit
// addition. The caller iterates rounds in order from zero so the cache is
// always populated before a derived round reads it.
func (f *Filter) hashDerive(cached *[2]uint64, item []byte, round uint32) uint64 {
	if round < 2 {
		h := f.keyed(f.seeds[round], item)
		cached[round] = h
		return h
	}
	return cached[0] + (uint64(round)*cached[1])%derivePrime
}

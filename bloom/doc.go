package bloom

/*

# Bloom filter with two real hash evaluations

This package implements a classic Bloom filter: a probabilistic set that may
report false positives but never false negatives.

  - If Check says false, the item was definitely never Set.
  - If Check says true, the item was probably Set; the false positive rate is
    tuned by the construction parameters.

Only two keyed hash evaluations are performed per item regardless of the
configured number of hash rounds: rounds beyond the first two are derived by
double hashing, h0 + i*h1 mod P, with P the largest prime below 2^64. This
trades strict hash independence for speed.

## Stores

The filter owns a bit store from the bitvec package, selected at
construction:

  - the default snapshot store supports Clear, Bytes and ApplyJournal, for
    whole-bitmap persistence;
  - WithJournal selects the journaled store, which logs every modified word
    so that DrainJournal can feed incremental replication of the bitmap to a
    remote mirror without retransmitting the whole thing.

The variants are capabilities, not modes: an operation the selected store
cannot support fails with ErrNoSnapshot or ErrNoJournal.

## Seeds are not serialized

Bytes captures the bitmap and the hash round count only. A filter rebuilt
with FromBytes draws fresh random seeds, so it agrees with the original about
every item already reflected in the bitmap, but not about items set later.
Pin the seed pair with WithHashSeeds on both sides when deterministic
cross-process behavior is required.

## Concurrency

None. Set, CheckAndSet, Clear, DrainJournal and ApplyJournal mutate the store
without coordination; callers that share a filter across goroutines must
provide their own synchronization. Concurrent Check calls with no interleaved
mutation are safe.

*/

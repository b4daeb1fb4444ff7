package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-bloom/bitvec"
)

func testKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%d", i))
	}
	return keys
}

func TestFreshFilterIsNegative(t *testing.T) {
	f, err := New(1024, 10)
	require.NoError(t, err)
	require.False(t, f.Check([]byte("never inserted")))
}

func TestNoFalseNegatives(t *testing.T) {
	f, err := NewForFalsePositiveRate(1000, 0.01)
	require.NoError(t, err)

	keys := testKeys(200)
	for _, k := range keys {
		f.Set(k)
	}
	for _, k := range keys {
		require.True(t, f.Check(k))
	}
}

func TestSetThenCheck(t *testing.T) {
	f, err := New(10, 80)
	require.NoError(t, err)

	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.False(t, f.Check(key))
	f.Set(key)
	require.True(t, f.Check(key))
}

func TestCheckAndSet(t *testing.T) {
	f, err := New(1024, 10)
	require.NoError(t, err)

	key := []byte("first sighting")
	require.False(t, f.CheckAndSet(key))
	require.True(t, f.CheckAndSet(key))
	require.True(t, f.Check(key))

	f.Set([]byte("other"))
	require.True(t, f.CheckAndSet([]byte("other")))
}

func TestClearResetsMembership(t *testing.T) {
	f, err := New(1024, 10)
	require.NoError(t, err)

	key := []byte("ephemeral")
	f.Set(key)
	require.True(t, f.Check(key))
	require.NoError(t, f.Clear())
	require.False(t, f.Check(key))

	// Parameters survive the clear.
	require.Equal(t, uint64(1024*8), f.NumBits())
	f.Set(key)
	require.True(t, f.Check(key))
}

func TestBytesRoundTrip(t *testing.T) {
	f, err := New(256, 50, WithHashSeeds(11, 13))
	require.NoError(t, err)

	keys := testKeys(50)
	for _, k := range keys {
		f.Set(k)
	}

	data, k, err := f.Bytes()
	require.NoError(t, err)
	require.Len(t, data, 256)
	require.Equal(t, f.NumHashes(), k)

	// The bitmap round-trips regardless of seeds.
	g, err := FromBytes(data, k)
	require.NoError(t, err)
	require.Equal(t, f.NumBits(), g.NumBits())
	gdata, gk, err := g.Bytes()
	require.NoError(t, err)
	require.Equal(t, data, gdata)
	require.Equal(t, k, gk)

	// With the seed pair pinned on both sides, membership answers carry
	// over as well.
	h, err := FromBytes(data, k, WithHashSeeds(11, 13))
	require.NoError(t, err)
	for _, key := range keys {
		require.True(t, h.Check(key))
	}
}

func TestPinnedSeedsAreDeterministic(t *testing.T) {
	opts := []Option{WithHashSeeds(3, 5)}
	f, err := New(128, 20, opts...)
	require.NoError(t, err)
	g, err := New(128, 20, opts...)
	require.NoError(t, err)

	for _, key := range testKeys(20) {
		f.Set(key)
		g.Set(key)
	}

	fdata, _, err := f.Bytes()
	require.NoError(t, err)
	gdata, _, err := g.Bytes()
	require.NoError(t, err)
	require.Equal(t, fdata, gdata)
}

func TestJournalCardinality(t *testing.T) {
	f, err := New(8, 3, WithJournal())
	require.NoError(t, err)

	f.Set([]byte{5, 4})

	u, err := f.DrainJournal()
	require.NoError(t, err)
	require.Equal(t, f.NumHashes(), u.K)
	// One entry per hash round, even when rounds collide on a word.
	require.Len(t, u.Entries, int(f.NumHashes()))

	// Entries reflect calls, not state changes: re-setting the same item
	// journals another full batch.
	f.Set([]byte{5, 4})
	u, err = f.DrainJournal()
	require.NoError(t, err)
	require.Len(t, u.Entries, int(f.NumHashes()))

	u, err = f.DrainJournal()
	require.NoError(t, err)
	require.Empty(t, u.Entries)
}

func TestJournalReplication(t *testing.T) {
	src, err := New(128, 20, WithJournal(), WithHashSeeds(7, 9))
	require.NoError(t, err)

	mirror, err := FromBytes(make([]byte, 128), src.NumHashes(), WithHashSeeds(7, 9))
	require.NoError(t, err)

	keys := testKeys(20)
	for _, k := range keys {
		src.Set(k)
	}

	u, err := src.DrainJournal()
	require.NoError(t, err)
	require.NoError(t, mirror.ApplyJournal(u))
	for _, k := range keys {
		require.True(t, mirror.Check(k))
	}

	// Re-applying a batch is harmless: entries carry values, not deltas.
	require.NoError(t, mirror.ApplyJournal(u))
	for _, k := range keys {
		require.True(t, mirror.Check(k))
	}

	// Incremental catch-up after more writes.
	late := []byte("late arrival")
	src.Set(late)
	u, err = src.DrainJournal()
	require.NoError(t, err)
	require.NoError(t, mirror.ApplyJournal(u))
	require.True(t, mirror.Check(late))
}

func TestApplyJournalRejectsBadBatches(t *testing.T) {
	mirror, err := FromBytes(make([]byte, 16), 4)
	require.NoError(t, err)

	err = mirror.ApplyJournal(JournalUpdate{K: 5})
	require.ErrorIs(t, err, ErrBadK)

	// 16 bytes is 2 words; word index 2 is out of range. Nothing may be
	// applied when any entry is out of range.
	err = mirror.ApplyJournal(JournalUpdate{
		K:       4,
		Entries: []bitvec.Entry{{Index: 0, Word: 1}, {Index: 2, Word: 1}},
	})
	require.ErrorIs(t, err, ErrBadWordIndex)

	data, _, err := mirror.Bytes()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), data)
}

func TestStoreCapabilities(t *testing.T) {
	journaled, err := New(64, 10, WithJournal())
	require.NoError(t, err)
	snapshot, err := New(64, 10)
	require.NoError(t, err)

	require.ErrorIs(t, journaled.Clear(), ErrNoSnapshot)
	_, _, err = journaled.Bytes()
	require.ErrorIs(t, err, ErrNoSnapshot)
	require.ErrorIs(t, journaled.ApplyJournal(JournalUpdate{K: journaled.NumHashes()}), ErrNoSnapshot)

	_, err = snapshot.DrainJournal()
	require.ErrorIs(t, err, ErrNoJournal)
}

func TestConstructorPreconditions(t *testing.T) {
	_, err := New(0, 10)
	require.ErrorIs(t, err, ErrBadBitmapSize)

	_, err = New(10, 0)
	require.ErrorIs(t, err, ErrBadItemsCount)

	_, err = NewForFalsePositiveRate(0, 0.01)
	require.ErrorIs(t, err, ErrBadItemsCount)

	_, err = NewForFalsePositiveRate(10, 1.0)
	require.ErrorIs(t, err, ErrBadFPRate)

	_, err = FromBytes(nil, 3)
	require.ErrorIs(t, err, ErrShortBuffer)

	_, err = FromBytes(make([]byte, 8), 0)
	require.ErrorIs(t, err, ErrBadK)
}

func TestOnlyTwoRealHashEvaluations(t *testing.T) {
	var calls int
	counting := func(seed uint32, item []byte) uint64 {
		calls++
		return murmurKeyed(seed, item)
	}

	f, err := New(1024, 10, WithKeyedHash(counting))
	require.NoError(t, err)
	require.Greater(t, f.NumHashes(), uint32(2))

	f.Set([]byte("item"))
	require.Equal(t, 2, calls)

	calls = 0
	require.True(t, f.Check([]byte("item")))
	require.Equal(t, 2, calls)
}

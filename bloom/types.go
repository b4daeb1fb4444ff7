package bloom

import "errors"

// derivePrime is the largest prime below 2^64. Reducing the multiplicative
// term of the derived rounds modulo a prime keeps it well distributed across
// the full 64 bit range.
const derivePrime uint64 = 0xffffffffffffffc5

var (
	ErrBadBitmapSize = errors.New("bloom: bitmap size must be at least one byte")
	ErrBadItemsCount = errors.New("bloom: items count must be positive")
	ErrBadFPRate     = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrBadK          = errors.New("bloom: hash round count invalid")
	ErrNoJournal     = errors.New("bloom: store does not journal modified words")
	ErrNoSnapshot    = errors.New("bloom: store does not support snapshots")
	ErrShortBuffer   = errors.New("bloom: serialized bitmap empty or too short")
	ErrBadWordIndex  = errors.New("bloom: journal entry outside the bitmap")
)

package bloom

import "math"

// ComputeBitmapSize returns the recommended bitmap size in bytes for holding
// itemsCount items at a false positive rate of fpRate:
//
//	ceil(n * ln(p) / (-8 * ln(2)^2))
func ComputeBitmapSize(itemsCount uint64, fpRate float64) (uint64, error) {
	if itemsCount == 0 {
		return 0, ErrBadItemsCount
	}
	if fpRate <= 0 || fpRate >= 1 {
		return 0, ErrBadFPRate
	}
	ln2sq := math.Ln2 * math.Ln2
	return uint64(math.Ceil(float64(itemsCount) * math.Log(fpRate) / (-8 * ln2sq))), nil
}

// optimalK returns ceil(m/n * ln(2)), floored at 1, the hash round count
// minimizing the false positive rate for mBits bits and itemsCount items.
func optimalK(mBits, itemsCount uint64) uint32 {
	k := uint32(math.Ceil(float64(mBits) / float64(itemsCount) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return k
}

package bloom

import (
	"errors"
	"math"
)

var (
	ErrBadCapacity  = errors.New("bloom: capacity must be positive")
	ErrBadErrorRate = errors.New("bloom: error rate must be in (0, 1)")
	ErrSizeOverflow = errors.New("bloom: bit count overflows int")
)

// lnsq is pow(log(2), 2).
const lnsq = math.Ln2 * math.Ln2

// CheckParams validates the inputs of Estimate, New and NewChecked.
func CheckParams(capacity int, errorRate float64) error {
	if capacity <= 0 {
		return ErrBadCapacity
	}
	// Also rejects NaN.
	if !(errorRate > 0 && errorRate < 1) {
		return ErrBadErrorRate
	}
	return nil
}

// Estimate returns the number of bits and hash functions of a filter
// holding capacity items with a false positive probability of errorRate.
//
//	m = ceil(n |ln p| / ln(2)^2)
//	k = ceil(m ln(2) / n)
func Estimate(capacity int, errorRate float64) (nbits, hashes uint64, err error) {
	if err := CheckParams(capacity, errorRate); err != nil {
		return 0, 0, err
	}
	n := float64(capacity)
	m := math.Ceil(n * math.Abs(math.Log(errorRate)) / lnsq)
	if m >= float64(math.MaxInt) {
		return 0, 0, ErrSizeOverflow
	}
	k := math.Ceil(m * math.Ln2 / n)
	if k < 1 {
		k = 1
	}
	return uint64(m), uint64(k), nil
}

package bloom

import "math"

// Filter is a fixed-size Bloom filter over keys of type K, digested with H.
// H is only ever used as its zero value.
//
// A Filter is not safe for concurrent use.
type Filter[K any, H Hasher[K]] struct {
	bits     *BitVec // bit array, never resized
	nbits    uint64  // number of usable bits, m
	hashes   uint64  // number of hash functions, k
	popcount int     // number of set bits
}

// New creates a new Bloom filter for capacity items with probability
// errorRate. errorRate must be between 0 and 1 (exclusive) and is the
// probability of false positives wanted once capacity distinct keys have
// been added. capacity must be positive. New panics otherwise; use
// NewChecked to get an error instead.
func New[K any, H Hasher[K]](capacity int, errorRate float64) *Filter[K, H] {
	f, err := NewChecked[K, H](capacity, errorRate)
	if err != nil {
		panic("bloom.New: " + err.Error())
	}
	return f
}

// NewChecked is like New but returns ErrBadCapacity, ErrBadErrorRate or
// ErrSizeOverflow instead of panicking.
func NewChecked[K any, H Hasher[K]](capacity int, errorRate float64) (*Filter[K, H], error) {
	nbits, hashes, err := Estimate(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	return &Filter[K, H]{
		bits:   FromElem(int(nbits), false),
		nbits:  nbits,
		hashes: hashes,
	}, nil
}

// digest hashes key once. "Less Hashing, Same Performance: Building a
// Better Bloom Filter" (Kirsch and Mitzenmacher) tells us
// gi(x) = h1(x) + i*h2(x), so the low and high halves of the digest stand in
// for h1 and h2.
func (f *Filter[K, H]) digest(key K) (a, b uint64) {
	var h H
	d := h.Digest(key)
	return d & math.MaxUint32, d >> 32
}

// Add adds a key to the filter.
func (f *Filter[K, H]) Add(key K) {
	a, b := f.digest(key)
	for h := uint64(0); h != f.hashes; h++ {
		i := int((a + b*h) % f.nbits)
		if v, _ := f.bits.Get(i); !v {
			f.bits.Set(i, true)
			f.popcount++
		}
	}
}

// Has returns true if the key probably exists in the filter. It never
// returns false for a key that was added since the last Clear.
func (f *Filter[K, H]) Has(key K) bool {
	a, b := f.digest(key)
	for h := uint64(0); h != f.hashes; h++ {
		if v, _ := f.bits.Get(int((a + b*h) % f.nbits)); !v {
			return false
		}
	}
	return true
}

// Clear removes every key. The filter keeps its size.
func (f *Filter[K, H]) Clear() {
	f.bits.Clear()
	f.popcount = 0
}

// Bitmap returns the filter's bit array. It must not be modified.
func (f *Filter[K, H]) Bitmap() *BitVec { return f.bits }

// Size returns the approximate number of distinct keys in the filter. While
// the number of keys is at most the filter's capacity it should be within a
// few percent of the actual amount.
//
// The estimator is n* = -(m/k) ln(1 - X/m) where X is the number of set
// bits, from http://pubs.acs.org/doi/abs/10.1021/ci600526a.
func (f *Filter[K, H]) Size() int {
	if uint64(f.popcount) == f.nbits {
		return math.MaxInt // saturated
	}
	m := float64(f.nbits)
	k := float64(f.hashes)
	X := float64(f.popcount)
	return int(math.Floor(-((m / k) * math.Log(1-(X/m))) + 0.5))
}

// Stats returns hashes, the number of hash functions, and nbits, the number
// of usable bits.
func (f *Filter[K, H]) Stats() (hashes, nbits uint64) {
	return f.hashes, f.nbits
}

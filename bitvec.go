package bloom

import (
	"iter"
	"math/bits"
	"slices"
	"strings"
)

const (
	wordBits = 64           // bits per word
	div64    = 6            // division by 64
	mod64    = wordBits - 1 // remainder mod 64
)

// BitVec is a growable sequence of bits packed into 64-bit words. Bit b of
// word w is logical position w*64+b.
//
// Bits past Len in the final word are always zero.
//
// The zero value is an empty BitVec ready to use.
type BitVec struct {
	words []uint64
	nbits int
}

// blocksFor returns the number of words needed to hold n bits.
func blocksFor(n int) int {
	// (n + mod64) >> div64 would overflow for n close to MaxInt.
	if n&mod64 == 0 {
		return n >> div64
	}
	return n>>div64 + 1
}

// NewBitVec returns an empty BitVec. It does not allocate.
func NewBitVec() *BitVec {
	return &BitVec{}
}

// WithCapacity returns an empty BitVec that can hold at least nbits bits
// without reallocating.
func WithCapacity(nbits int) *BitVec {
	if nbits < 0 {
		panic("bloom.WithCapacity: negative capacity")
	}
	return &BitVec{words: make([]uint64, 0, blocksFor(nbits))}
}

// FromElem returns a BitVec of length nbits with every bit set to bit.
func FromElem(nbits int, bit bool) *BitVec {
	if nbits < 0 {
		panic("bloom.FromElem: negative length")
	}
	b := &BitVec{
		words: make([]uint64, blocksFor(nbits)),
		nbits: nbits,
	}
	if bit {
		b.SetAll()
	}
	return b
}

// FromBools returns a BitVec holding vals in order.
func FromBools(vals ...bool) *BitVec {
	b := WithCapacity(len(vals))
	for _, v := range vals {
		b.Push(v)
	}
	return b
}

// fixLastBlock zeroes the unused bits of the final word.
func (b *BitVec) fixLastBlock() {
	if extra := b.nbits & mod64; extra > 0 {
		b.words[len(b.words)-1] &= 1<<extra - 1
	}
}

// Len returns the number of bits in b.
func (b *BitVec) Len() int { return b.nbits }

// IsEmpty reports whether b holds no bits.
func (b *BitVec) IsEmpty() bool { return b.nbits == 0 }

// Get returns the bit at position i. ok is false if i is out of range.
func (b *BitVec) Get(i int) (bit, ok bool) {
	if i < 0 || i >= b.nbits {
		return false, false
	}
	return b.words[i>>div64]&(1<<(uint(i)&mod64)) != 0, true
}

// At returns the bit at position i. It panics if i is out of range.
func (b *BitVec) At(i int) bool {
	v, ok := b.Get(i)
	if !ok {
		panic("bloom.BitVec: index out of range")
	}
	return v
}

// Set sets the bit at position i to v. It panics if i is out of range.
func (b *BitVec) Set(i int, v bool) {
	if i < 0 || i >= b.nbits {
		panic("bloom.BitVec: index out of range")
	}
	mask := uint64(1) << (uint(i) & mod64)
	if v {
		b.words[i>>div64] |= mask
	} else {
		b.words[i>>div64] &^= mask
	}
}

// Push appends bit to the end of b.
func (b *BitVec) Push(bit bool) {
	if b.nbits&mod64 == 0 {
		b.words = append(b.words, 0)
	}
	b.nbits++
	b.Set(b.nbits-1, bit)
}

// Extend pushes every bit produced by seq.
func (b *BitVec) Extend(seq iter.Seq[bool]) {
	for v := range seq {
		b.Push(v)
	}
}

// Clear zeroes every bit. Len is unchanged.
func (b *BitVec) Clear() {
	clear(b.words)
}

// SetAll sets every bit to 1.
func (b *BitVec) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.fixLastBlock()
}

// Negate flips every bit.
func (b *BitVec) Negate() {
	for i, w := range b.words {
		b.words[i] = ^w
	}
	b.fixLastBlock()
}

// Reserve grows b so that at least additional more bits can be pushed
// without reallocating.
func (b *BitVec) Reserve(additional int) {
	if additional < 0 {
		panic("bloom.BitVec: negative reserve")
	}
	want := b.nbits + additional
	if want < b.nbits {
		panic("bloom.BitVec: capacity overflow")
	}
	if want > b.Capacity() {
		b.words = slices.Grow(b.words, blocksFor(want)-len(b.words))
	}
}

// Capacity returns the number of bits b can hold without reallocating.
func (b *BitVec) Capacity() int {
	c := cap(b.words)
	if c > int(^uint(0)>>1)>>div64 {
		return int(^uint(0) >> 1)
	}
	return c << div64
}

// Count returns the number of set bits.
func (b *BitVec) Count() int {
	var n int
	for _, w := range b.words {
		n += popcount(w)
	}
	return n
}

// Words returns the backing words. The slice aliases b and must not be
// modified.
func (b *BitVec) Words() []uint64 { return b.words }

// All returns an iterator over (position, bit) pairs in increasing order.
func (b *BitVec) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < b.nbits; i++ {
			if !yield(i, b.words[i>>div64]&(1<<(uint(i)&mod64)) != 0) {
				return
			}
		}
	}
}

// Backward returns an iterator over (position, bit) pairs in decreasing
// order.
func (b *BitVec) Backward() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := b.nbits - 1; i >= 0; i-- {
			if !yield(i, b.words[i>>div64]&(1<<(uint(i)&mod64)) != 0) {
				return
			}
		}
	}
}

// Clone returns a deep copy of b.
func (b *BitVec) Clone() *BitVec {
	return &BitVec{words: slices.Clone(b.words), nbits: b.nbits}
}

// Equal reports whether b and o hold the same bits.
func (b *BitVec) Equal(o *BitVec) bool {
	return b.nbits == o.nbits && slices.Equal(b.words, o.words)
}

// String formats b as a string of 0s and 1s, position 0 first.
func (b *BitVec) String() string {
	var sb strings.Builder
	sb.Grow(b.nbits)
	for _, v := range b.All() {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func popcount(x uint64) int { return bits.OnesCount64(x) }

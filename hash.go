package bloom

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
)

// Hasher maps a key to a 64-bit digest. Implementations must be usable as
// their zero value and must return the same digest for equal keys.
//
// The filter splits the digest into its low and high 32 bits, so both
// halves should be well distributed.
type Hasher[K any] interface {
	Digest(key K) uint64
}

// Key is the set of key types the built-in hashers accept.
type Key interface {
	~string | ~[]byte
}

// Integer is the set of integer key types SipUint64 accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const (
	k0 = 17697571051839533707
	k1 = 15128385881502100741
)

// SipHash digests keys with SipHash-2-4 under a fixed key.
type SipHash[K Key] struct{}

func (SipHash[K]) Digest(key K) uint64 {
	return siphash.Hash(k0, k1, []byte(key))
}

// Murmur3 digests keys with the 64-bit half of MurmurHash3 x64_128.
type Murmur3[K Key] struct{}

func (Murmur3[K]) Digest(key K) uint64 {
	return murmur3.Sum64([]byte(key))
}

// SipUint64 digests integers by hashing their little-endian encoding with
// SipHash-2-4.
type SipUint64[K Integer] struct{}

func (SipUint64[K]) Digest(key K) uint64 {
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], uint64(key))
	return siphash.Hash(k0, k1, p[:])
}

var (
	_ Hasher[string] = SipHash[string]{}
	_ Hasher[[]byte] = Murmur3[[]byte]{}
	_ Hasher[int]    = SipUint64[int]{}
)

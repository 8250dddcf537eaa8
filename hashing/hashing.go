// Package hashing provides digest helpers for types that know how to feed
// themselves into a hash.Hash.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its digest.
// Both Sha256 and XXH3 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 digest of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the XXH3 digest of the given Hashable as a hex-encoded
// string. Use it where the digest only needs to be fast and
// well-distributed, not cryptographic.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Number is a Hashable wrapper for any integer. The value is written as
// eight big-endian bytes, so equal values hash equally regardless of the
// declared width.
type Number[T constraints.Integer] struct {
	value T
}

// NewNumber wraps v for hashing.
func NewNumber[T constraints.Integer](v T) Number[T] {
	return Number[T]{value: v}
}

func (n Number[T]) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(n.value))

	_, err := h.Write(buf[:])

	return err
}

func (n Number[T]) Equals(other Number[T]) bool {
	return n.value == other.value
}

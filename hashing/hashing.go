// Package hashing defines how values feed themselves into a hash.Hash, and the
// hash functions used to fingerprint locations and validation reports.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc takes a Hashable and returns a string representation of its hash.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by values that can write a canonical byte form of
// themselves into a hash.Hash.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 digest of the given Hashable.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// Xxh3 returns the hex-encoded 64-bit xxh3 digest of the given Hashable. It is
// not cryptographic; use it for fingerprints and equality shortcuts.
func Xxh3(hashable Hashable) (string, error) {
	return sum(xxh3.New(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString is a string that implements Hashable.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

// UpdateHash writes the string length followed by its bytes, so that
// consecutive strings cannot run into each other.
func (s HashableString) UpdateHash(h hash.Hash) error {
	if err := HashableInt(len(s)).UpdateHash(h); err != nil {
		return err
	}

	_, err := h.Write([]byte(s))

	return err
}

// HashableInt is an int that implements Hashable (fixed 8 byte big-endian form).
type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(i)) //nolint:gosec

	_, err := h.Write(buf[:])

	return err
}

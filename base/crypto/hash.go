// Package crypto holds the host-side CryptoHash.
package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// CryptoHashSize is the length of a CryptoHash in bytes.
const CryptoHashSize = 32

// CryptoHash is a 256-bit Keccak digest identifying chains, blobs and
// applications.
type CryptoHash [CryptoHashSize]byte

// CryptoHashFromU64s builds a hash from four 64-bit parts. Each part is
// written big-endian, in order, so part 1 holds the first eight bytes.
func CryptoHashFromU64s(parts [4]uint64) CryptoHash {
	var h CryptoHash
	for i, p := range parts {
		binary.BigEndian.PutUint64(h[i*8:], p)
	}
	return h
}

// U64s splits the hash back into the four parts CryptoHashFromU64s takes.
func (h CryptoHash) U64s() [4]uint64 {
	var parts [4]uint64
	for i := range parts {
		parts[i] = binary.BigEndian.Uint64(h[i*8:])
	}
	return parts
}

// HashBytes returns the Keccak-256 digest of data.
func HashBytes(data []byte) CryptoHash {
	var h CryptoHash
	k := sha3.NewLegacyKeccak256()
	k.Write(data)
	k.Sum(h[:0])
	return h
}

// HashTagged hashes data under a type name prefix, so values of different
// types with equal encodings never collide.
func HashTagged(typeName string, data []byte) CryptoHash {
	var h CryptoHash
	k := sha3.NewLegacyKeccak256()
	k.Write([]byte(typeName))
	k.Write([]byte("::"))
	k.Write(data)
	k.Sum(h[:0])
	return h
}

// ParseCryptoHash decodes a 64-character hex string.
func ParseCryptoHash(s string) (CryptoHash, error) {
	var h CryptoHash
	if len(s) != hex.EncodedLen(CryptoHashSize) {
		return h, fmt.Errorf("crypto hash: want %d hex characters, got %d", hex.EncodedLen(CryptoHashSize), len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("crypto hash: %w", err)
	}
	return h, nil
}

func (h CryptoHash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether every byte of the hash is zero.
func (h CryptoHash) IsZero() bool {
	return h == CryptoHash{}
}

func (h CryptoHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *CryptoHash) UnmarshalText(text []byte) error {
	parsed, err := ParseCryptoHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

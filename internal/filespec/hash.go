package filespec

import (
	"crypto/sha256"
	"encoding/hex"
)

// FileHash is a content checksum. The zero-value-like EmptyHash marks a
// record whose checksum has not been computed (or, for big seeds, is
// deliberately absent); consumers must treat it as "content unknown, rely
// on path and modification time".
type FileHash struct {
	// Name identifies the digest algorithm, or "none" for the empty
	// sentinel.
	Name string

	// Checksum is the hex-encoded digest, empty for the sentinel.
	Checksum string
}

// EmptyHash returns the distinguished "not yet computed" checksum value.
func EmptyHash() FileHash {
	return FileHash{Name: "none", Checksum: ""}
}

// HashFromContents computes the checksum of the literal on-disk bytes.
// Callers must pass unstripped content: the hash reflects exactly what is
// on disk, independent of any normalization applied to stored content.
func HashFromContents(contents []byte) FileHash {
	sum := sha256.Sum256(contents)
	return FileHash{
		Name:     "sha256",
		Checksum: hex.EncodeToString(sum[:]),
	}
}

// IsEmpty reports whether the hash is the empty sentinel.
func (h FileHash) IsEmpty() bool {
	return h.Checksum == ""
}

// Equal reports whether two hashes denote identical content. Equality of
// non-empty checksums is the authoritative content-identity signal; an
// empty sentinel is never equal to anything, including another sentinel.
func (h FileHash) Equal(other FileHash) bool {
	if h.IsEmpty() || other.IsEmpty() {
		return false
	}
	return h.Name == other.Name && h.Checksum == other.Checksum
}

package collections

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Digest is a 256-bit content fingerprint.
type Digest [blake2b.Size256]byte

// String returns the digest in hex.
func (d Digest) String() string { return fmt.Sprintf("%x", d[:]) }

// Fingerprint returns an order-sensitive BLAKE2b-256 digest of the elements
// of it. Each element is JSON-encoded, so two containers holding equal
// values in the same order share a fingerprint across processes, whatever
// their concrete type. Use it to key caches or maps by list content.
func Fingerprint[T any](it RichIterable[T]) (Digest, error) {
	h := newHash()
	for item := range it.All() {
		b, err := json.Marshal(item)
		if err != nil {
			return Digest{}, fmt.Errorf("collections: fingerprint element: %w", err)
		}
		writeFrame(h, b)
	}
	return sum(h), nil
}

// UnorderedFingerprint is like [Fingerprint] but ignores iteration order:
// two sets with the same members, or two bags with the same counts, share a
// fingerprint.
func UnorderedFingerprint[T any](it RichIterable[T]) (Digest, error) {
	digests := make([][]byte, 0, it.Size())
	for item := range it.All() {
		b, err := json.Marshal(item)
		if err != nil {
			return Digest{}, fmt.Errorf("collections: fingerprint element: %w", err)
		}
		d := blake2b.Sum256(b)
		digests = append(digests, d[:])
	}
	slices.SortFunc(digests, bytes.Compare)

	h := newHash()
	for _, d := range digests {
		writeFrame(h, d)
	}
	return sum(h), nil
}

func newHash() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// writeFrame length-prefixes b so that ["ab", "c"] and ["a", "bc"] differ.
func writeFrame(h hash.Hash, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	h.Write(n[:])
	h.Write(b)
}

func sum(h hash.Hash) Digest {
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

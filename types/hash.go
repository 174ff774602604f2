package types

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// HashLen is the length of a block hash in bytes.
const HashLen = 32

// H256Le is a 32-byte block hash kept in little-endian byte order, which is
// the form the BTC relay uses as its storage key. Wire and display encodings
// are big-endian hex. Mixing the two orderings is the dominant source of
// relay bugs, so every conversion between them goes through this type.
type H256Le [HashLen]byte

// ZeroH256Le is the all-zero hash, reported by an uninitialized light client.
var ZeroH256Le = H256Le{}

// NewH256LeFromBytesLE constructs a H256Le from little-endian bytes.
func NewH256LeFromBytesLE(b []byte) (H256Le, error) {
	if len(b) != HashLen {
		return H256Le{}, errors.Mark(
			errors.Newf("invalid hash length: got %d, want %d", len(b), HashLen),
			ErrDecodeHash,
		)
	}
	var h H256Le
	copy(h[:], b)

	return h, nil
}

// NewH256LeFromHexBE constructs a H256Le from big-endian hex, the form block
// hashes travel on the wire and appear in logs and block explorers.
func NewH256LeFromHexBE(s string) (H256Le, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return H256Le{}, errors.Mark(errors.Wrap(err, "malformed hash hex"), ErrDecodeHash)
	}
	if len(b) != HashLen {
		return H256Le{}, errors.Mark(
			errors.Newf("invalid hash length: got %d, want %d", len(b), HashLen),
			ErrDecodeHash,
		)
	}

	var h H256Le
	for i := 0; i < HashLen; i++ {
		h[i] = b[HashLen-1-i]
	}

	return h, nil
}

// BytesLE returns a copy of the hash in little-endian byte order.
func (h H256Le) BytesLE() []byte {
	b := make([]byte, HashLen)
	copy(b, h[:])

	return b
}

// HexBE returns the big-endian hex encoding used for display and wire transit.
func (h H256Le) HexBE() string {
	rev := make([]byte, HashLen)
	for i := 0; i < HashLen; i++ {
		rev[i] = h[HashLen-1-i]
	}

	return hex.EncodeToString(rev)
}

// IsZero reports whether the hash is all zeroes. The light client reports a
// zero best hash before it has been initialized.
func (h H256Le) IsZero() bool {
	return h == ZeroH256Le
}

func (h H256Le) String() string {
	return h.HexBE()
}

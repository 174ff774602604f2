package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
)

// RawBlockHeaderLen is the length of the canonical Bitcoin block header
// serialization (version, prev-hash, merkle-root, time, bits, nonce).
const RawBlockHeaderLen = 80

// RawBlockHeader is an 80-byte serialized Bitcoin block header. The block
// hash is always recomputed from the bytes, never stored alongside them.
type RawBlockHeader []byte

// NewRawBlockHeader validates the length of b and wraps it as a RawBlockHeader.
func NewRawBlockHeader(b []byte) (RawBlockHeader, error) {
	if len(b) != RawBlockHeaderLen {
		return nil, errors.Mark(
			errors.Newf("invalid raw header length: got %d, want %d", len(b), RawBlockHeaderLen),
			ErrInvalidHeader,
		)
	}

	return RawBlockHeader(b), nil
}

// NewRawBlockHeaderFromHex decodes a hex-encoded 80-byte header.
func NewRawBlockHeaderFromHex(s string) (RawBlockHeader, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "malformed header hex"), ErrInvalidHeader)
	}

	return NewRawBlockHeader(b)
}

// NewRawBlockHeaderFromBlockHeader serializes a wire.BlockHeader into its
// canonical 80-byte form.
func NewRawBlockHeaderFromBlockHeader(header *wire.BlockHeader) (RawBlockHeader, error) {
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize block header")
	}

	return NewRawBlockHeader(buf.Bytes())
}

// Hash recomputes the double-SHA-256 block hash of the header. The result is
// in little-endian byte order, matching the relay's storage key format.
func (h RawBlockHeader) Hash() H256Le {
	digest := chainhash.DoubleHashH(h)

	return H256Le(digest)
}

// Seed returns the single-SHA-256 digest of the raw header bytes, used to
// seed the randomized submission delay. It is a pure function of the header
// content, so a given header always produces the same seed.
func (h RawBlockHeader) Seed() [sha256.Size]byte {
	return sha256.Sum256(h)
}

// BlockHeader parses the raw bytes into a wire.BlockHeader.
func (h RawBlockHeader) BlockHeader() (*wire.BlockHeader, error) {
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(h)); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to parse block header"), ErrInvalidHeader)
	}

	return &header, nil
}

// Bytes returns a copy of the raw header bytes.
func (h RawBlockHeader) Bytes() []byte {
	b := make([]byte, len(h))
	copy(b, h)

	return b
}

func (h RawBlockHeader) String() string {
	return h.Hash().String()
}

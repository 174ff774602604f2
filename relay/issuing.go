package relay

import (
	"context"

	"github.com/Warchant/interbtc-clients/types"
)

// Issuing is the submission and query contract against the remote BTC relay.
// Production and test implementations both satisfy it, so the driver can run
// against an in-memory light client without network access.
type Issuing interface {
	// IsInitialized returns true if the light client has been seeded with a
	// starting header, i.e. its best-known hash is non-zero.
	IsInitialized(ctx context.Context) (bool, error)

	// Initialize seeds the light client with a trusted starting header at the
	// given height. It must only be invoked when IsInitialized reports false;
	// calling it otherwise is a caller error and is not retried.
	Initialize(ctx context.Context, header types.RawBlockHeader, height uint32) error

	// SubmitBlockHeader submits a single header, waiting out the given random
	// delay first and skipping the remote write if another relayer already
	// stored the header in the meantime.
	SubmitBlockHeader(ctx context.Context, header types.RawBlockHeader, randomDelay RandomDelay) error

	// SubmitBlockHeaderBatch submits multiple headers in one remote operation,
	// preserving the caller's ordering. The headers must be contiguous in the
	// target chain or the remote client rejects them; no delay or duplicate
	// pre-check is applied.
	SubmitBlockHeaderBatch(ctx context.Context, headers []types.RawBlockHeader) error

	// GetBestHeight returns the light client's chain tip height.
	GetBestHeight(ctx context.Context) (uint32, error)

	// GetBlockHash returns the block hash stored at the given height in
	// little-endian form.
	GetBlockHash(ctx context.Context, height uint32) (types.H256Le, error)

	// IsBlockStored returns true if the light client has stored a header with
	// the given little-endian hash at a non-zero height.
	IsBlockStored(ctx context.Context, hashLE types.H256Le) (bool, error)
}

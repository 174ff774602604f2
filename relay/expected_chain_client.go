package relay

import (
	"context"

	"github.com/Warchant/interbtc-clients/types"
)

// StoredBlockHeader is the light client's record of an accepted header. A
// zero Height means the light client does not know the block.
type StoredBlockHeader struct {
	Height uint32
	Hash   types.H256Le
}

// ChainClient is the transaction-submission and state-query surface of the
// remote chain hosting the BTC relay. Hash-valued queries return big-endian
// hex, the wire form; conversion to the relay's little-endian storage keys
// happens in the gateway through types.H256Le.
//
// Implementations must not retry internally. Known rejection reasons are
// reported through the sentinel errors in the types package.
type ChainClient interface {
	// GetBestBlock returns the hash of the relay's current tip in big-endian
	// hex. The all-zero hash means the relay has not been initialized.
	GetBestBlock(ctx context.Context) (string, error)

	// GetBestBlockHeight returns the height of the relay's current tip.
	GetBestBlockHeight(ctx context.Context) (uint32, error)

	// GetBlockHash returns the stored block hash at the given height in
	// big-endian hex.
	GetBlockHash(ctx context.Context, height uint32) (string, error)

	// GetBlockHeader looks up a stored header by its little-endian hash.
	// Unknown blocks yield a zero-valued StoredBlockHeader, not an error.
	GetBlockHeader(ctx context.Context, hashLE types.H256Le) (StoredBlockHeader, error)

	// InitializeBTCRelay seeds the relay with a trusted starting header.
	InitializeBTCRelay(ctx context.Context, header types.RawBlockHeader, height uint32) error

	// StoreBlockHeader submits a single header extending the relay's chain.
	StoreBlockHeader(ctx context.Context, header types.RawBlockHeader) error

	// StoreBlockHeaders submits a contiguous batch of headers in order.
	StoreBlockHeaders(ctx context.Context, headers []types.RawBlockHeader) error

	Close() error
}

package types

import "github.com/cockroachdb/errors"

// Error kinds shared across the relay. ErrRemoteRejected marks every failed
// remote call so callers can classify without knowing the transport; the
// remaining sentinels identify specific rejection reasons where the remote
// client reports them.
var (
	// ErrRemoteRejected indicates the chain client's submission or query failed.
	// Callers should treat this as retryable with backoff.
	ErrRemoteRejected = errors.New("remote client rejected the call")

	// ErrDecodeHash indicates hex or byte decoding of a block hash failed.
	// This is a data-integrity bug, not retryable.
	ErrDecodeHash = errors.New("failed to decode block hash")

	// ErrInvalidHeader indicates a raw block header is malformed or not 80 bytes.
	ErrInvalidHeader = errors.New("invalid raw block header")

	// ErrAlreadyInitialized indicates Initialize was called on an initialized
	// light client. This is a caller error and must not be retried.
	ErrAlreadyInitialized = errors.New("light client already initialized")

	// ErrBlockExists indicates the submitted header is already stored by the
	// light client. Duplication is a benign race outcome between relayers and
	// is converted to success at the submission layer.
	ErrBlockExists = errors.New("block header already stored")

	// ErrMissingParent indicates a submitted header (or the first header of a
	// batch) does not extend a block known to the light client.
	ErrMissingParent = errors.New("header does not extend a stored block")
)

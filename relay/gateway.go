package relay

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/types"
)

// Gateway implements Issuing against a ChainClient. It performs no internal
// retries; every remote failure is surfaced to the caller marked with
// types.ErrRemoteRejected, so retry cadence stays a caller decision.
type Gateway struct {
	client ChainClient
	logger *zap.SugaredLogger
}

var _ Issuing = (*Gateway)(nil)

func NewGateway(parentLogger *zap.Logger, client ChainClient) *Gateway {
	return &Gateway{
		client: client,
		logger: parentLogger.With(zap.String("module", "gateway")).Sugar(),
	}
}

// remoteErr marks a failed remote call with ErrRemoteRejected. Cancellation
// is a clean shutdown path, never a remote failure.
func remoteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	return errors.Mark(err, types.ErrRemoteRejected)
}

func (g *Gateway) IsInitialized(ctx context.Context) (bool, error) {
	hashHex, err := g.client.GetBestBlock(ctx)
	if err != nil {
		return false, remoteErr(err)
	}

	hash, err := types.NewH256LeFromHexBE(hashHex)
	if err != nil {
		return false, err
	}

	return !hash.IsZero(), nil
}

func (g *Gateway) Initialize(ctx context.Context, header types.RawBlockHeader, height uint32) error {
	if err := g.client.InitializeBTCRelay(ctx, header, height); err != nil {
		return remoteErr(err)
	}

	g.logger.Infof("Initialized the BTC relay at height %d with header %s", height, header.Hash())

	return nil
}

// SubmitBlockHeader implements the check-delay-recheck-submit protocol.
// Multiple independent relayers race to submit the same header; the random
// wait spreads them out and the recheck lets all but the winner return
// success without a remote write. This does not guarantee exactly-once
// submission, the remote relay treats a duplicate of a known header as a
// no-op.
func (g *Gateway) SubmitBlockHeader(ctx context.Context, header types.RawBlockHeader, randomDelay RandomDelay) error {
	hash := header.Hash()

	// wait a random amount of slots, to avoid all relayers flooding the
	// chain with the same transaction
	if err := randomDelay.Delay(ctx, header.Seed()); err != nil {
		return err
	}

	stored, err := g.IsBlockStored(ctx, hash)
	if err != nil {
		return err
	}
	if stored {
		g.logger.Debugf("Header %s already stored, skipping submission", hash)

		return nil
	}

	if err := g.client.StoreBlockHeader(ctx, header); err != nil {
		return remoteErr(err)
	}

	g.logger.Debugf("Submitted header %s", hash)

	return nil
}

func (g *Gateway) SubmitBlockHeaderBatch(ctx context.Context, headers []types.RawBlockHeader) error {
	if len(headers) == 0 {
		return errors.New("no headers to submit")
	}

	// headers are submitted in the caller's order; contiguity is checked by
	// the remote client, not here
	if err := g.client.StoreBlockHeaders(ctx, headers); err != nil {
		return remoteErr(err)
	}

	g.logger.Debugf("Submitted a batch of %d headers ending at %s", len(headers), headers[len(headers)-1].Hash())

	return nil
}

func (g *Gateway) GetBestHeight(ctx context.Context) (uint32, error) {
	height, err := g.client.GetBestBlockHeight(ctx)
	if err != nil {
		return 0, remoteErr(err)
	}

	return height, nil
}

func (g *Gateway) GetBlockHash(ctx context.Context, height uint32) (types.H256Le, error) {
	hashHex, err := g.client.GetBlockHash(ctx, height)
	if err != nil {
		return types.H256Le{}, remoteErr(err)
	}

	return types.NewH256LeFromHexBE(hashHex)
}

func (g *Gateway) IsBlockStored(ctx context.Context, hashLE types.H256Le) (bool, error) {
	head, err := g.client.GetBlockHeader(ctx, hashLE)
	if err != nil {
		return false, remoteErr(err)
	}

	return head.Height > 0, nil
}

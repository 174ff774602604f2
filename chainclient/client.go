package chainclient

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/config"
	"github.com/Warchant/interbtc-clients/relay"
	"github.com/Warchant/interbtc-clients/types"
)

// namespace under which the chain node exposes the BTC relay methods
const namespace = "btcrelay"

// storedBlockHeader is the wire form of a stored header; hashes travel as
// big-endian hex.
type storedBlockHeader struct {
	Height  uint32 `json:"height"`
	HashHex string `json:"hash"`
}

// api mirrors the chain node's btcrelay JSON-RPC surface as a struct of
// function stubs populated by go-jsonrpc.
type api struct {
	GetBestBlock       func(ctx context.Context) (string, error)
	GetBestBlockHeight func(ctx context.Context) (uint32, error)
	GetBlockHash       func(ctx context.Context, height uint32) (string, error)
	GetBlockHeader     func(ctx context.Context, hashHex string) (storedBlockHeader, error)
	InitializeBTCRelay func(ctx context.Context, header []byte, height uint32) error
	StoreBlockHeader   func(ctx context.Context, header []byte) error
	StoreBlockHeaders  func(ctx context.Context, headers [][]byte) error
}

// Client talks to the remote chain's BTC relay over JSON-RPC. It performs no
// retries; rejection reasons reported by the relay are mapped onto the
// sentinel errors in the types package.
type Client struct {
	cfg      *config.ChainConfig
	logger   *zap.SugaredLogger
	internal api
	closer   jsonrpc.ClientCloser
}

var _ relay.ChainClient = (*Client)(nil)

func New(ctx context.Context, cfg *config.ChainConfig, parentLogger *zap.Logger) (*Client, error) {
	client := &Client{
		cfg:    cfg,
		logger: parentLogger.With(zap.String("module", "chainclient")).Sugar(),
	}

	closer, err := jsonrpc.NewClient(ctx, cfg.RPCAddr, namespace, &client.internal, http.Header{})
	if err != nil {
		return nil, err
	}
	client.closer = closer
	client.logger.Infof("Successfully connected to the chain node at %s", cfg.RPCAddr)

	return client, nil
}

// callCtx bounds an individual RPC call with the configured timeout.
func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.cfg.Timeout)
}

func (c *Client) GetBestBlock(ctx context.Context) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	hashHex, err := c.internal.GetBestBlock(ctx)

	return hashHex, classifyRemoteError(err)
}

func (c *Client) GetBestBlockHeight(ctx context.Context) (uint32, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	height, err := c.internal.GetBestBlockHeight(ctx)

	return height, classifyRemoteError(err)
}

func (c *Client) GetBlockHash(ctx context.Context, height uint32) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	hashHex, err := c.internal.GetBlockHash(ctx, height)

	return hashHex, classifyRemoteError(err)
}

func (c *Client) GetBlockHeader(ctx context.Context, hashLE types.H256Le) (relay.StoredBlockHeader, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	stored, err := c.internal.GetBlockHeader(ctx, hashLE.HexBE())
	if err != nil {
		return relay.StoredBlockHeader{}, classifyRemoteError(err)
	}
	if stored.Height == 0 {
		// the relay does not know the block
		return relay.StoredBlockHeader{}, nil
	}

	hash, err := types.NewH256LeFromHexBE(stored.HashHex)
	if err != nil {
		return relay.StoredBlockHeader{}, err
	}

	return relay.StoredBlockHeader{
		Height: stored.Height,
		Hash:   hash,
	}, nil
}

func (c *Client) InitializeBTCRelay(ctx context.Context, header types.RawBlockHeader, height uint32) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	return classifyRemoteError(c.internal.InitializeBTCRelay(ctx, header.Bytes(), height))
}

func (c *Client) StoreBlockHeader(ctx context.Context, header types.RawBlockHeader) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	return classifyRemoteError(c.internal.StoreBlockHeader(ctx, header.Bytes()))
}

func (c *Client) StoreBlockHeaders(ctx context.Context, headers []types.RawBlockHeader) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	raw := make([][]byte, len(headers))
	for i, header := range headers {
		raw[i] = header.Bytes()
	}

	return classifyRemoteError(c.internal.StoreBlockHeaders(ctx, raw))
}

func (c *Client) Close() error {
	c.closer()

	return nil
}

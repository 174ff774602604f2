package relay_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/Warchant/interbtc-clients/relay"
	"github.com/Warchant/interbtc-clients/types"
)

// genHeaderChain produces a contiguous header chain of the given length, each
// header committing to the hash of the previous one.
func genHeaderChain(t *testing.T, r *rand.Rand, length int) []types.RawBlockHeader {
	t.Helper()

	headers := make([]types.RawBlockHeader, 0, length)
	var prev chainhash.Hash
	for i := 0; i < length; i++ {
		var merkle chainhash.Hash
		r.Read(merkle[:])
		header := wire.BlockHeader{
			Version:    4,
			PrevBlock:  prev,
			MerkleRoot: merkle,
			Timestamp:  time.Unix(1600000000+int64(i)*600, 0),
			Bits:       0x1d00ffff,
			Nonce:      r.Uint32(),
		}
		raw, err := types.NewRawBlockHeaderFromBlockHeader(&header)
		require.NoError(t, err)
		prev = header.BlockHash()
		headers = append(headers, raw)
	}

	return headers
}

// fakeHeaderSource serves a pre-generated chain, mapping slice index i to
// height startHeight+i.
type fakeHeaderSource struct {
	startHeight uint32
	headers     []types.RawBlockHeader
}

func (s *fakeHeaderSource) GetBestHeight() (uint32, error) {
	return s.startHeight + uint32(len(s.headers)) - 1, nil
}

func (s *fakeHeaderSource) GetHeader(height uint32) (types.RawBlockHeader, error) {
	if height < s.startHeight || height >= s.startHeight+uint32(len(s.headers)) {
		return nil, errNoSuchHeight
	}

	return s.headers[height-s.startHeight], nil
}

var errNoSuchHeight = errors.New("no block at requested height")

// fakeChainClient is an in-memory light client. It enforces the remote
// relay's acceptance rules: one-time initialization, duplicate and orphan
// rejection, contiguous height assignment.
type fakeChainClient struct {
	mu sync.Mutex

	initialized bool
	bestHeight  uint32
	bestHash    types.H256Le
	byHash      map[types.H256Le]relay.StoredBlockHeader
	byHeight    map[uint32]types.H256Le

	storeCalls int
	batchCalls int
}

var _ relay.ChainClient = (*fakeChainClient)(nil)

func newFakeChainClient() *fakeChainClient {
	return &fakeChainClient{
		byHash:   make(map[types.H256Le]relay.StoredBlockHeader),
		byHeight: make(map[uint32]types.H256Le),
	}
}

func (c *fakeChainClient) GetBestBlock(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return types.ZeroH256Le.HexBE(), nil
	}

	return c.bestHash.HexBE(), nil
}

func (c *fakeChainClient) GetBestBlockHeight(_ context.Context) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.bestHeight, nil
}

func (c *fakeChainClient) GetBlockHash(_ context.Context, height uint32) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hash, ok := c.byHeight[height]
	if !ok {
		return "", errNoSuchHeight
	}

	return hash.HexBE(), nil
}

func (c *fakeChainClient) GetBlockHeader(_ context.Context, hashLE types.H256Le) (relay.StoredBlockHeader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.byHash[hashLE], nil
}

func (c *fakeChainClient) InitializeBTCRelay(_ context.Context, header types.RawBlockHeader, height uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return types.ErrAlreadyInitialized
	}

	c.initialized = true
	c.put(header.Hash(), height)

	return nil
}

func (c *fakeChainClient) StoreBlockHeader(_ context.Context, header types.RawBlockHeader) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.storeCalls++

	return c.store(header)
}

func (c *fakeChainClient) StoreBlockHeaders(_ context.Context, headers []types.RawBlockHeader) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.batchCalls++
	for _, header := range headers {
		if err := c.store(header); err != nil {
			return err
		}
	}

	return nil
}

func (c *fakeChainClient) Close() error {
	return nil
}

// store must be called with the mutex held.
func (c *fakeChainClient) store(header types.RawBlockHeader) error {
	hash := header.Hash()
	if _, ok := c.byHash[hash]; ok {
		return types.ErrBlockExists
	}

	parsed, err := header.BlockHeader()
	if err != nil {
		return types.ErrInvalidHeader
	}
	if types.H256Le(parsed.PrevBlock) != c.bestHash {
		return types.ErrMissingParent
	}

	c.put(hash, c.bestHeight+1)

	return nil
}

func (c *fakeChainClient) put(hash types.H256Le, height uint32) {
	c.byHash[hash] = relay.StoredBlockHeader{Height: height, Hash: hash}
	c.byHeight[height] = hash
	c.bestHeight = height
	c.bestHash = hash
}

func (c *fakeChainClient) StoreCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.storeCalls
}

func (c *fakeChainClient) BatchCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.batchCalls
}

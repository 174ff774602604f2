package btcclient

import (
	"fmt"
	"math"

	"github.com/avast/retry-go/v4"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/Warchant/interbtc-clients/types"
)

// GetBestHeight returns the height of the best block known to the BTC node
func (c *Client) GetBestHeight() (uint32, error) {
	height, err := c.getBlockCountWithRetry()
	if err != nil {
		return 0, err
	}

	if height < 0 || height > int64(math.MaxUint32) {
		panic(fmt.Errorf("height (%d) is out of uint32 range", height)) // software bug, panic
	}

	return uint32(height), nil
}

// GetHeader returns the raw 80-byte header of the block at the given height
// on the node's main chain.
func (c *Client) GetHeader(height uint32) (types.RawBlockHeader, error) {
	blockHash, err := c.getBlockHashWithRetry(height)
	if err != nil {
		return nil, fmt.Errorf("failed to get block hash at height %d: %w", height, err)
	}

	header, err := c.getBlockHeaderWithRetry(blockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get block header %s: %w", blockHash.String(), err)
	}

	return types.NewRawBlockHeaderFromBlockHeader(header)
}

func (c *Client) getBlockCountWithRetry() (int64, error) {
	var (
		height int64
		err    error
	)

	if err = retry.Do(func() error {
		height, err = c.GetBlockCount()

		return err
	},
		retry.Delay(c.retrySleepTime),
		retry.MaxDelay(c.maxRetrySleepTime),
		retry.Attempts(c.maxRetryTimes),
	); err != nil {
		c.logger.Debugf("Failed to query the block count: %v", err)

		return 0, err
	}

	return height, nil
}

func (c *Client) getBlockHashWithRetry(height uint32) (*chainhash.Hash, error) {
	var (
		blockHash *chainhash.Hash
		err       error
	)

	if err = retry.Do(func() error {
		blockHash, err = c.GetBlockHash(int64(height))

		return err
	},
		retry.Delay(c.retrySleepTime),
		retry.MaxDelay(c.maxRetrySleepTime),
		retry.Attempts(c.maxRetryTimes),
	); err != nil {
		c.logger.Debugf("Failed to query the block hash at height %d: %v", height, err)

		return nil, err
	}

	return blockHash, nil
}

func (c *Client) getBlockHeaderWithRetry(blockHash *chainhash.Hash) (*wire.BlockHeader, error) {
	var (
		header *wire.BlockHeader
		err    error
	)

	if err = retry.Do(func() error {
		header, err = c.GetBlockHeader(blockHash)

		return err
	},
		retry.Delay(c.retrySleepTime),
		retry.MaxDelay(c.maxRetrySleepTime),
		retry.Attempts(c.maxRetryTimes),
	); err != nil {
		c.logger.Debugf("Failed to query the block header %s: %v", blockHash.String(), err)

		return nil, err
	}

	return header, nil
}

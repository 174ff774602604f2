package btcclient

import (
	"github.com/Warchant/interbtc-clients/types"
)

// HeaderSource supplies raw Bitcoin block headers and the local best height,
// typically backed by a bitcoind or btcd node.
type HeaderSource interface {
	GetBestHeight() (uint32, error)
	GetHeader(height uint32) (types.RawBlockHeader, error)
}

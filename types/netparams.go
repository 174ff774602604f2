package types

import "github.com/btcsuite/btcd/chaincfg"

type SupportedBtcNetwork string

const (
	BtcMainnet SupportedBtcNetwork = "mainnet"
	BtcTestnet SupportedBtcNetwork = "testnet"
	BtcSimnet  SupportedBtcNetwork = "simnet"
	BtcRegtest SupportedBtcNetwork = "regtest"
	BtcSignet  SupportedBtcNetwork = "signet"
)

func (c SupportedBtcNetwork) String() string {
	return string(c)
}

// GetValidNetParams returns the map of supported Bitcoin network names to
// their chain parameters.
func GetValidNetParams() map[string]*chaincfg.Params {
	return map[string]*chaincfg.Params{
		BtcMainnet.String(): &chaincfg.MainNetParams,
		BtcTestnet.String(): &chaincfg.TestNet3Params,
		BtcSimnet.String():  &chaincfg.SimNetParams,
		BtcRegtest.String(): &chaincfg.RegressionNetParams,
		BtcSignet.String():  &chaincfg.SigNetParams,
	}
}

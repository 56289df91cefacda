package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

type duplicateTransaction struct {
	blockNumber uint64
	blockHash   string
	txHash      string
}

// Mainnet coinbase transactions that reuse the hash of an earlier, still unspent coinbase (BIP30).
// The node reports them in both blocks; only the first occurrence is exported.
var mainnetDuplicateTransactions = []duplicateTransaction{
	{
		blockNumber: 91842,
		blockHash:   "00000000000a4d0a398161ffc163c503763b1f4360639393e0e4c8e300e0caec",
		txHash:      "d5d27987d2a3dfc724e359870c6644b40e497bdc0589a033220fe15429d88599",
	},
	{
		blockNumber: 91880,
		blockHash:   "00000000000743f190a18c5577a3c2d2a1f610ae9601ac046a38084ccb7cd721",
		txHash:      "e3bf3d07d4b0375638d5f1db5255fe07ba2c4cb067cd81b84ee974b6585fb468",
	},
}

// IsDuplicateTransaction reports whether tx is a known historical duplicate in the given block.
func IsDuplicateTransaction(network model.Network, block model.Block, txHash string) bool {
	params, err := chainParamsForNetwork(network)
	if err != nil || params.Net != chaincfg.MainNetParams.Net {
		return false
	}
	for _, d := range mainnetDuplicateTransactions {
		if d.blockNumber == block.Number && d.blockHash == block.Hash && d.txHash == txHash {
			return true
		}
	}
	return false
}

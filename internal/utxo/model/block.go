// Package model defines domain models for UTXO chain streaming.
package model

import "github.com/shopspring/decimal"

// Network names a Bitcoin-family network as understood by the node and chain params.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// Block represents a block as exported downstream.
type Block struct {
	Hash             string          `json:"hash"`
	Number           uint64          `json:"number"`
	Size             int64           `json:"size"`
	StrippedSize     int64           `json:"stripped_size"`
	Weight           int64           `json:"weight"`
	Version          int32           `json:"version"`
	MerkleRoot       string          `json:"merkle_root"`
	Timestamp        int64           `json:"timestamp"`
	Nonce            string          `json:"nonce"`
	Bits             string          `json:"bits"`
	Difficulty       decimal.Decimal `json:"difficulty"`
	CoinbaseParam    string          `json:"coinbase_param,omitempty"`
	TransactionCount int             `json:"transaction_count"`
	Transactions     []Transaction   `json:"transactions,omitempty"`
}

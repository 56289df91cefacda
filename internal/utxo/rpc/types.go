// Package rpc implements a batched JSON-RPC gateway to a Bitcoin-family node.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Cache stores raw results keyed by request fingerprint. Implementations must be safe for concurrent use.
	Cache interface {
		Get(ctx context.Context, key string) ([]byte, bool, error)
		Set(ctx context.Context, key string, value []byte) error
	}
)

// Command is a single JSON-RPC method invocation.
type Command struct {
	Method string
	Params []any
}

// NewCommand builds a Command.
func NewCommand(method string, params ...any) Command {
	if params == nil {
		params = []any{}
	}
	return Command{Method: method, Params: params}
}

func (c Command) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Params)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

type response struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
	ID     *uint64           `json:"id"`
}

// Block is the verbose getblock payload (verbosity 2 embeds full transactions).
type Block struct {
	Hash              string          `json:"hash"`
	Confirmations     int64           `json:"confirmations"`
	Size              int64           `json:"size"`
	StrippedSize      int64           `json:"strippedsize"`
	Weight            int64           `json:"weight"`
	Height            int64           `json:"height"`
	Version           int32           `json:"version"`
	MerkleRoot        string          `json:"merkleroot"`
	Tx                []Transaction   `json:"tx"`
	Time              int64           `json:"time"`
	MedianTime        int64           `json:"mediantime"`
	Nonce             uint64          `json:"nonce"`
	Bits              string          `json:"bits"`
	Difficulty        decimal.Decimal `json:"difficulty"`
	NTx               int             `json:"nTx"`
	PreviousBlockHash string          `json:"previousblockhash"`
}

// Transaction is the verbose transaction payload from getblock or getrawtransaction.
type Transaction struct {
	TxID      string `json:"txid"`
	Hash      string `json:"hash"`
	Version   int32  `json:"version"`
	Size      int64  `json:"size"`
	VSize     int64  `json:"vsize"`
	Weight    int64  `json:"weight"`
	LockTime  uint32 `json:"locktime"`
	Vin       []Vin  `json:"vin"`
	Vout      []Vout `json:"vout"`
	Hex       string `json:"hex"`
	BlockHash string `json:"blockhash"`
	BlockTime int64  `json:"blocktime"`
	Time      int64  `json:"time"`
}

// Vin is a transaction input payload.
type Vin struct {
	Coinbase  string     `json:"coinbase"`
	TxID      string     `json:"txid"`
	Vout      uint32     `json:"vout"`
	ScriptSig *ScriptSig `json:"scriptSig"`
	Witness   []string   `json:"txinwitness"`
	Sequence  uint32     `json:"sequence"`
}

// IsCoinBase reports whether the input is a coinbase input.
func (v Vin) IsCoinBase() bool {
	return v.Coinbase != "" || v.TxID == ""
}

// ScriptSig is the input signature script.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vout is a transaction output payload. Value is kept as an exact decimal.
type Vout struct {
	Value        decimal.Decimal `json:"value"`
	N            uint32          `json:"n"`
	ScriptPubKey ScriptPubKey    `json:"scriptPubKey"`
}

// ScriptPubKey is the output locking script. Newer nodes report a single Address instead of Addresses.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   *int     `json:"reqSigs"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
	Address   string   `json:"address"`
}

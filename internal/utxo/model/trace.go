package model

// Trace is a flattened ledger movement over one input (IsIn) or one output of a transaction.
// Input traces describe the spent outpoint, so VoutIndex/VoutCount refer to the previous transaction.
type Trace struct {
	IsIn                bool    `json:"is_in"`
	TransactionHash     string  `json:"transaction_hash"`
	TransactionIndex    int     `json:"transaction_index"`
	BlockNumber         uint64  `json:"block_number"`
	BlockHash           string  `json:"block_hash"`
	BlockTimestamp      int64   `json:"block_timestamp"`
	IsCoinbase          bool    `json:"is_coinbase"`
	VinIndex            *int    `json:"vin_idx"`
	VinCount            int     `json:"vin_cnt"`
	VoutIndex           *uint32 `json:"vout_idx"`
	VoutCount           *int    `json:"vout_cnt"`
	PrevTransactionHash string  `json:"pxhash,omitempty"`
	Value               *int64  `json:"value"`
	Address             *string `json:"address"`
	Type                string  `json:"script_type,omitempty"`
	RequiredSignatures  *int    `json:"required_signatures"`
	InputValue          *int64  `json:"input_value"`
	OutputValue         int64   `json:"output_value"`
}

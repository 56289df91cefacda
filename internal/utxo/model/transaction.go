package model

import "encoding/json"

// Transaction represents a transaction with its ordered inputs and outputs.
type Transaction struct {
	Hash           string              `json:"hash"`
	Size           int64               `json:"size"`
	VirtualSize    int64               `json:"virtual_size"`
	Weight         int64               `json:"weight"`
	Version        int32               `json:"version"`
	LockTime       uint32              `json:"lock_time"`
	BlockNumber    uint64              `json:"block_number"`
	BlockHash      string              `json:"block_hash"`
	BlockTimestamp int64               `json:"block_timestamp"`
	IsCoinbase     bool                `json:"is_coinbase"`
	Index          int                 `json:"index"`
	Hex            string              `json:"hex,omitempty"`
	Inputs         []TransactionInput  `json:"inputs"`
	Outputs        []TransactionOutput `json:"outputs"`
}

// TransactionInput describes a reference to a previous transaction output.
// RequiredSignatures, Type, Addresses, Value and PrevOutputCount stay empty until enrichment.
type TransactionInput struct {
	Index                int      `json:"index"`
	SpentTransactionHash string   `json:"spent_transaction_hash,omitempty"`
	SpentOutputIndex     *uint32  `json:"spent_output_index"`
	ScriptAsm            string   `json:"script_asm"`
	ScriptHex            string   `json:"script_hex"`
	Sequence             uint32   `json:"sequence"`
	CoinbaseParam        string   `json:"coinbase_param,omitempty"`
	Witness              []string `json:"witness,omitempty"`
	RequiredSignatures   *int     `json:"required_signatures"`
	Type                 string   `json:"type,omitempty"`
	Addresses            []string `json:"addresses"`
	Value                *int64   `json:"value"`
	PrevOutputCount      *int     `json:"prev_output_count,omitempty"`
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Index              uint32   `json:"index"`
	ScriptAsm          string   `json:"script_asm"`
	ScriptHex          string   `json:"script_hex"`
	RequiredSignatures *int     `json:"required_signatures"`
	Type               string   `json:"type"`
	Addresses          []string `json:"addresses"`
	Value              int64    `json:"value"`
}

// IsCoinbase reports whether the input mints new coins instead of spending an output.
func (in TransactionInput) IsCoinbase() bool {
	return in.SpentTransactionHash == ""
}

// IsEnriched reports whether the previous output data has been copied onto the input.
func (in TransactionInput) IsEnriched() bool {
	return in.Value != nil
}

// AddInput appends in with the next sequential index.
func (t *Transaction) AddInput(in TransactionInput) {
	in.Index = len(t.Inputs)
	t.Inputs = append(t.Inputs, in)
}

// InputCount returns the number of inputs.
func (t Transaction) InputCount() int { return len(t.Inputs) }

// OutputCount returns the number of outputs.
func (t Transaction) OutputCount() int { return len(t.Outputs) }

// OutputValue sums output values.
func (t Transaction) OutputValue() int64 {
	var total int64
	for _, out := range t.Outputs {
		total += out.Value
	}
	return total
}

// InputValue sums enriched input values. It returns nil if any non-coinbase input
// has not been enriched, since the total would be understated.
func (t Transaction) InputValue() *int64 {
	var total int64
	for _, in := range t.Inputs {
		if in.IsCoinbase() {
			continue
		}
		if in.Value == nil {
			return nil
		}
		total += *in.Value
	}
	return &total
}

// Fee returns input value minus output value; nil for coinbase or unenriched transactions.
func (t Transaction) Fee() *int64 {
	if t.IsCoinbase {
		return nil
	}
	in := t.InputValue()
	if in == nil {
		return nil
	}
	fee := *in - t.OutputValue()
	return &fee
}

// MarshalJSON adds the derived counters and values to the exported record.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		plain
		InputCount  int    `json:"input_count"`
		OutputCount int    `json:"output_count"`
		InputValue  *int64 `json:"input_value"`
		OutputValue int64  `json:"output_value"`
		Fee         *int64 `json:"fee"`
	}{
		plain:       plain(t),
		InputCount:  t.InputCount(),
		OutputCount: t.OutputCount(),
		InputValue:  t.InputValue(),
		OutputValue: t.OutputValue(),
		Fee:         t.Fee(),
	})
}

package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/safe"
)

const insertTransactionsQuery = `
INSERT INTO utxo_transactions (
	item_id,
	network,
	hash,
	block_number,
	block_hash,
	block_timestamp,
	transaction_index,
	size,
	virtual_size,
	weight,
	version,
	lock_time,
	is_coinbase,
	input_count,
	output_count,
	input_value,
	output_value,
	fee,
	inputs,
	outputs
) VALUES`

// InsertTransactions stores transaction items. Inputs and outputs are kept as JSON documents.
func (r *Repository) InsertTransactions(ctx context.Context, items []model.Item) error {
	return r.insert(ctx, "insert_transactions", insertTransactionsQuery, items, r.transactionRow)
}

func (r *Repository) transactionRow(item model.Item) ([]any, error) {
	tx := item.Transaction
	if tx == nil {
		return nil, fmt.Errorf("item %q is not a transaction", item.ItemID)
	}
	index, err := safe.Uint32(tx.Index)
	if err != nil {
		return nil, fmt.Errorf("transaction %s index: %w", tx.Hash, err)
	}
	inputCount, err := safe.Uint32(tx.InputCount())
	if err != nil {
		return nil, fmt.Errorf("transaction %s input count: %w", tx.Hash, err)
	}
	outputCount, err := safe.Uint32(tx.OutputCount())
	if err != nil {
		return nil, fmt.Errorf("transaction %s output count: %w", tx.Hash, err)
	}
	inputs, err := json.Marshal(tx.Inputs)
	if err != nil {
		return nil, fmt.Errorf("encode transaction %s inputs: %w", tx.Hash, err)
	}
	outputs, err := json.Marshal(tx.Outputs)
	if err != nil {
		return nil, fmt.Errorf("encode transaction %s outputs: %w", tx.Hash, err)
	}
	return []any{
		item.ItemID,
		string(r.network),
		tx.Hash,
		tx.BlockNumber,
		tx.BlockHash,
		time.Unix(tx.BlockTimestamp, 0).UTC(),
		index,
		tx.Size,
		tx.VirtualSize,
		tx.Weight,
		tx.Version,
		tx.LockTime,
		tx.IsCoinbase,
		inputCount,
		outputCount,
		tx.InputValue(),
		tx.OutputValue(),
		tx.Fee(),
		string(inputs),
		string(outputs),
	}, nil
}

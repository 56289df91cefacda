package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/safe"
)

const insertTracesQuery = `
INSERT INTO utxo_traces (
	item_id,
	network,
	is_in,
	transaction_hash,
	transaction_index,
	block_number,
	block_hash,
	block_timestamp,
	is_coinbase,
	vin_idx,
	vin_cnt,
	vout_idx,
	vout_cnt,
	pxhash,
	value,
	address,
	input_value,
	output_value
) VALUES`

// InsertTraces stores trace items.
func (r *Repository) InsertTraces(ctx context.Context, items []model.Item) error {
	return r.insert(ctx, "insert_traces", insertTracesQuery, items, r.traceRow)
}

func (r *Repository) traceRow(item model.Item) ([]any, error) {
	tr := item.Trace
	if tr == nil {
		return nil, fmt.Errorf("item %q is not a trace", item.ItemID)
	}
	txIndex, err := safe.Uint32(tr.TransactionIndex)
	if err != nil {
		return nil, fmt.Errorf("trace of %s transaction index: %w", tr.TransactionHash, err)
	}
	vinCount, err := safe.Uint32(tr.VinCount)
	if err != nil {
		return nil, fmt.Errorf("trace of %s vin count: %w", tr.TransactionHash, err)
	}
	vinIndex, err := optionalUint32(tr.VinIndex)
	if err != nil {
		return nil, fmt.Errorf("trace of %s vin index: %w", tr.TransactionHash, err)
	}
	voutCount, err := optionalUint32(tr.VoutCount)
	if err != nil {
		return nil, fmt.Errorf("trace of %s vout count: %w", tr.TransactionHash, err)
	}
	return []any{
		item.ItemID,
		string(r.network),
		tr.IsIn,
		tr.TransactionHash,
		txIndex,
		tr.BlockNumber,
		tr.BlockHash,
		time.Unix(tr.BlockTimestamp, 0).UTC(),
		tr.IsCoinbase,
		vinIndex,
		vinCount,
		tr.VoutIndex,
		voutCount,
		tr.PrevTransactionHash,
		tr.Value,
		tr.Address,
		tr.InputValue,
		tr.OutputValue,
	}, nil
}

func optionalUint32(v *int) (*uint32, error) {
	if v == nil {
		return nil, nil
	}
	u, err := safe.Uint32(*v)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

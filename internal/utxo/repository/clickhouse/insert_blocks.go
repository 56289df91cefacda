package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/safe"
)

const insertBlocksQuery = `
INSERT INTO utxo_blocks (
	item_id,
	network,
	number,
	hash,
	timestamp,
	size,
	stripped_size,
	weight,
	version,
	merkle_root,
	nonce,
	bits,
	difficulty,
	coinbase_param,
	transaction_count
) VALUES`

// InsertBlocks stores block items.
func (r *Repository) InsertBlocks(ctx context.Context, items []model.Item) error {
	return r.insert(ctx, "insert_blocks", insertBlocksQuery, items, r.blockRow)
}

func (r *Repository) blockRow(item model.Item) ([]any, error) {
	b := item.Block
	if b == nil {
		return nil, fmt.Errorf("item %q is not a block", item.ItemID)
	}
	txCount, err := safe.Uint32(b.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("block %s transaction count: %w", b.Hash, err)
	}
	return []any{
		item.ItemID,
		string(r.network),
		b.Number,
		b.Hash,
		time.Unix(b.Timestamp, 0).UTC(),
		b.Size,
		b.StrippedSize,
		b.Weight,
		b.Version,
		b.MerkleRoot,
		b.Nonce,
		b.Bits,
		b.Difficulty.String(),
		b.CoinbaseParam,
		txCount,
	}, nil
}

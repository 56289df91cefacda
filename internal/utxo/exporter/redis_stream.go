package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen bounds the stream length, trimmed approximately.
const DefaultStreamMaxLen = 100_000

// RedisStreamExporter appends every item to a Redis stream.
type RedisStreamExporter struct {
	client  StreamClient
	stream  string
	maxLen  int64
	closeFn func() error
}

// NewRedisStreamExporter connects to the server described by a redis:// URL.
func NewRedisStreamExporter(ctx context.Context, redisURL, stream string, maxLen int64) (*RedisStreamExporter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", opts.Addr, err)
	}
	e := newRedisStreamExporter(client, stream, maxLen)
	e.closeFn = client.Close
	return e, nil
}

func newRedisStreamExporter(client StreamClient, stream string, maxLen int64) *RedisStreamExporter {
	return &RedisStreamExporter{client: client, stream: stream, maxLen: maxLen}
}

// Open is a no-op; the connection is established by the constructor.
func (e *RedisStreamExporter) Open(context.Context) error { return nil }

// ExportItems adds one stream entry per item, in order.
func (e *RedisStreamExporter) ExportItems(ctx context.Context, items []model.Item) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s item %q: %w", item.Type, item.ItemID, err)
		}
		args := &redis.XAddArgs{
			Stream: e.stream,
			Values: map[string]any{
				"type":         string(item.Type),
				"item_id":      item.ItemID,
				"block_number": strconv.FormatUint(item.BlockNumber(), 10),
				"data":         string(data),
			},
		}
		if e.maxLen > 0 {
			args.MaxLen = e.maxLen
			args.Approx = true
		}
		if err := e.client.XAdd(ctx, args).Err(); err != nil {
			return fmt.Errorf("xadd %s: %w", e.stream, err)
		}
	}
	return nil
}

// Close closes the client.
func (e *RedisStreamExporter) Close(context.Context) error {
	if e.closeFn != nil {
		return e.closeFn()
	}
	return nil
}

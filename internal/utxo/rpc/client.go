package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/retry"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// BlockVerbosityFull asks getblock for full transaction bodies.
const BlockVerbosityFull = 2

// ErrMalformedResponse reports a batch response that cannot be matched to its requests.
var ErrMalformedResponse = errors.New("malformed rpc response")

// ErrUnauthorized means the node rejected the RPC credentials.
var ErrUnauthorized = errors.New("rpc credentials rejected")

// ResponseError is returned when a response in a batch carries no result.
type ResponseError struct {
	Command Command
	Err     *btcjson.RPCError
}

func (e *ResponseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rpc %s: response has no result", e.Command)
	}
	return fmt.Sprintf("rpc %s: response has no result: %d: %s", e.Command, e.Err.Code, e.Err.Message)
}

// Config holds connection settings for the node.
type Config struct {
	URL      string
	User     string
	Password string
	Timeout  time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithCache enables the response cache.
func WithCache(cache Cache) Option { return func(c *Client) { c.cache = cache } }

// WithRateLimiter paces outgoing HTTP requests. The limiter may be shared between clients.
func WithRateLimiter(rl ratelimit.Limiter) Option { return func(c *Client) { c.rl = rl } }

// WithMetrics sets the RPC metrics collector.
func WithMetrics(m RPCMetrics) Option { return func(c *Client) { c.metrics = m } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.logger = l } }

// WithHTTPClient overrides the HTTP client, e.g. to share a transport between clients.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// Client is a batched JSON-RPC client. Request ids come from a counter owned by the client.
type Client struct {
	cfg     Config
	http    *http.Client
	cache   Cache
	rl      ratelimit.Limiter
	metrics RPCMetrics
	logger  *zap.Logger
	nextID  atomic.Uint64
}

// NewClient constructs a Client for the node at cfg.URL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("rpc url is required")
	}
	if !strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
		return nil, fmt.Errorf("rpc url %q must use http or https", cfg.URL)
	}
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// Batch executes commands and returns their raw results in input order. Cached results are
// substituted without touching the network; all remaining commands go out in a single request.
func (c *Client) Batch(ctx context.Context, commands []Command) (results []json.RawMessage, err error) {
	return c.batch(ctx, commands, c.cache)
}

func (c *Client) batch(ctx context.Context, commands []Command, cache Cache) (results []json.RawMessage, err error) {
	if len(commands) == 0 {
		return nil, nil
	}

	results = make([]json.RawMessage, len(commands))
	keys := make([]string, len(commands))
	pending := make([]int, 0, len(commands))

	for i, cmd := range commands {
		if cache == nil {
			pending = append(pending, i)
			continue
		}
		key, err := Fingerprint(cmd)
		if err != nil {
			return nil, retry.Permanent(fmt.Errorf("fingerprint %s: %w", cmd, err))
		}
		keys[i] = key
		cached, ok, err := cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("rpc cache read failed", zap.String("method", cmd.Method), zap.Error(err))
		}
		if ok {
			results[i] = cached
			continue
		}
		pending = append(pending, i)
	}

	if len(pending) == 0 {
		return results, nil
	}

	requests := make([]request, len(pending))
	byID := make(map[uint64]int, len(pending))
	for n, i := range pending {
		id := c.nextID.Add(1)
		requests[n] = request{
			JSONRPC: "2.0",
			Method:  commands[i].Method,
			Params:  commands[i].Params,
			ID:      id,
		}
		byID[id] = i
	}

	responses, err := c.post(ctx, operationName(commands, pending), requests)
	if err != nil {
		return nil, err
	}
	if len(responses) != len(requests) {
		return nil, retry.Permanent(fmt.Errorf("%w: sent %d requests, got %d responses", ErrMalformedResponse, len(requests), len(responses)))
	}

	for _, resp := range responses {
		if resp.ID == nil {
			return nil, retry.Permanent(fmt.Errorf("%w: response without id", ErrMalformedResponse))
		}
		i, ok := byID[*resp.ID]
		if !ok {
			return nil, retry.Permanent(fmt.Errorf("%w: unexpected response id %d", ErrMalformedResponse, *resp.ID))
		}
		delete(byID, *resp.ID)
		if resp.Error != nil || len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
			return nil, classify(&ResponseError{Command: commands[i], Err: resp.Error})
		}
		results[i] = resp.Result
	}

	if cache != nil {
		for _, i := range pending {
			if err := cache.Set(ctx, keys[i], results[i]); err != nil {
				c.logger.Warn("rpc cache write failed", zap.String("method", commands[i].Method), zap.Error(err))
			}
		}
	}

	return results, nil
}

func (c *Client) post(ctx context.Context, operation string, requests []request) (responses []response, err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.Observe(operation, err, started)
		}
	}()

	body, err := json.Marshal(requests)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("encode rpc batch: %w", err))
	}

	if c.rl != nil {
		c.rl.Take()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("build rpc request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.User != "" || c.cfg.Password != "" {
		req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc %s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rpc %s read body: %w", operation, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, retry.Permanent(fmt.Errorf("%w: rpc %s: http status %d", ErrUnauthorized, operation, resp.StatusCode))
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		// The node answers a rejected batch with a single error object.
		var single response
		if err := decode(trimmed, &single); err == nil && single.Error != nil {
			return nil, classify(&ResponseError{Command: Command{Method: operation}, Err: single.Error})
		}
	}
	if resp.StatusCode/100 != 2 && (len(trimmed) == 0 || trimmed[0] != '[') {
		return nil, fmt.Errorf("rpc %s: http status %d", operation, resp.StatusCode)
	}

	if err := decode(trimmed, &responses); err != nil {
		return nil, retry.Permanent(fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err))
	}
	return responses, nil
}

// GetBlockCount returns the current tip height. It always bypasses the cache.
func (c *Client) GetBlockCount(ctx context.Context) (uint64, error) {
	results, err := c.batch(ctx, []Command{NewCommand("getblockcount")}, nil)
	if err != nil {
		return 0, err
	}
	var count uint64
	if err := decode(results[0], &count); err != nil {
		return 0, retry.Permanent(fmt.Errorf("decode getblockcount: %w", err))
	}
	return count, nil
}

// GetBlockHash returns the hash of the block at height.
func (c *Client) GetBlockHash(ctx context.Context, height uint64) (string, error) {
	hashes, err := c.GetBlockHashes(ctx, []uint64{height})
	if err != nil {
		return "", err
	}
	return hashes[0], nil
}

// GetBlockHashes returns block hashes for heights, in order.
func (c *Client) GetBlockHashes(ctx context.Context, heights []uint64) ([]string, error) {
	commands := make([]Command, len(heights))
	for i, h := range heights {
		commands[i] = NewCommand("getblockhash", h)
	}
	results, err := c.Batch(ctx, commands)
	if err != nil {
		return nil, err
	}
	hashes := make([]string, len(results))
	for i, raw := range results {
		if err := decode(raw, &hashes[i]); err != nil {
			return nil, retry.Permanent(fmt.Errorf("decode getblockhash %d: %w", heights[i], err))
		}
	}
	return hashes, nil
}

// GetBlock returns a verbose block with full transactions.
func (c *Client) GetBlock(ctx context.Context, hash string) (*Block, error) {
	blocks, err := c.GetBlocks(ctx, []string{hash})
	if err != nil {
		return nil, err
	}
	return &blocks[0], nil
}

// GetBlocks returns verbose blocks with full transactions, in order.
func (c *Client) GetBlocks(ctx context.Context, hashes []string) ([]Block, error) {
	commands := make([]Command, len(hashes))
	for i, h := range hashes {
		commands[i] = NewCommand("getblock", h, BlockVerbosityFull)
	}
	results, err := c.Batch(ctx, commands)
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, len(results))
	for i, raw := range results {
		if err := decode(raw, &blocks[i]); err != nil {
			return nil, retry.Permanent(fmt.Errorf("decode getblock %s: %w", hashes[i], err))
		}
	}
	return blocks, nil
}

// GetRawTransactions returns verbose transactions, in order.
func (c *Client) GetRawTransactions(ctx context.Context, hashes []string) ([]Transaction, error) {
	commands := make([]Command, len(hashes))
	for i, h := range hashes {
		commands[i] = NewCommand("getrawtransaction", h, 1)
	}
	results, err := c.Batch(ctx, commands)
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, len(results))
	for i, raw := range results {
		if err := decode(raw, &txs[i]); err != nil {
			return nil, retry.Permanent(fmt.Errorf("decode getrawtransaction %s: %w", hashes[i], err))
		}
	}
	return txs, nil
}

func decode(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(out)
}

// classify keeps node warm-up errors retryable; every other node error is permanent.
func classify(err *ResponseError) error {
	if err.Err != nil && err.Err.Code == btcjson.ErrRPCInWarmup {
		return err
	}
	return retry.Permanent(err)
}

func operationName(commands []Command, pending []int) string {
	method := commands[pending[0]].Method
	for _, i := range pending[1:] {
		if commands[i].Method != method {
			return "batch"
		}
	}
	return method
}

// Package identity derives deterministic item identifiers used by sinks for deduplication.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"go.uber.org/zap"
)

const fieldSeparator = "\x1f"

// Calculator computes item identities. It performs no I/O.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator constructs a Calculator.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger.Named("identity")}
}

// Calculate returns the identity of item, or "" if the item type is unknown or an
// identifying field is missing.
func (c *Calculator) Calculate(item model.Item) string {
	fields, ok := identifyingFields(item)
	if !ok {
		c.logger.Warn("cannot derive item identity", zap.String("type", string(item.Type)))
		return ""
	}

	h := sha256.New()
	h.Write([]byte(item.Type))
	for _, f := range fields {
		h.Write([]byte(fieldSeparator))
		h.Write([]byte(f))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Assign stamps the identity of every item in place.
func (c *Calculator) Assign(items []model.Item) {
	for i := range items {
		items[i].ItemID = c.Calculate(items[i])
	}
}

func identifyingFields(item model.Item) ([]string, bool) {
	switch item.Type {
	case model.ItemTypeBlock:
		if item.Block == nil || item.Block.Hash == "" {
			return nil, false
		}
		return []string{item.Block.Hash}, true
	case model.ItemTypeTransaction:
		if item.Transaction == nil || item.Transaction.Hash == "" {
			return nil, false
		}
		return []string{item.Transaction.Hash}, true
	case model.ItemTypeTrace:
		tr := item.Trace
		if tr == nil || tr.TransactionHash == "" {
			return nil, false
		}
		if (tr.IsIn && tr.VinIndex == nil) || (!tr.IsIn && tr.VoutIndex == nil) {
			return nil, false
		}
		var voutIdx, vinIdx string
		if tr.VoutIndex != nil {
			voutIdx = strconv.FormatUint(uint64(*tr.VoutIndex), 10)
		}
		if tr.VinIndex != nil {
			vinIdx = strconv.Itoa(*tr.VinIndex)
		}
		return []string{tr.TransactionHash, voutIdx, tr.PrevTransactionHash, vinIdx}, true
	default:
		return nil, false
	}
}

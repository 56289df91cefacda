package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ItemType discriminates the entity carried by an Item.
type ItemType string

const (
	ItemTypeBlock       ItemType = "block"
	ItemTypeTransaction ItemType = "transaction"
	ItemTypeTrace       ItemType = "trace"
)

// AllItemTypes lists every exportable item type in pipeline order.
var AllItemTypes = []ItemType{ItemTypeBlock, ItemTypeTransaction, ItemTypeTrace}

// Item is the unit handed to exporters. Exactly one of Block, Transaction or Trace is set,
// matching Type. ItemID is empty when no identity could be derived.
type Item struct {
	Type        ItemType
	ItemID      string
	Block       *Block
	Transaction *Transaction
	Trace       *Trace
}

// NewBlockItem wraps a block.
func NewBlockItem(b Block) Item { return Item{Type: ItemTypeBlock, Block: &b} }

// NewTransactionItem wraps a transaction.
func NewTransactionItem(tx Transaction) Item { return Item{Type: ItemTypeTransaction, Transaction: &tx} }

// NewTraceItem wraps a trace.
func NewTraceItem(tr Trace) Item { return Item{Type: ItemTypeTrace, Trace: &tr} }

// Entity returns the wrapped record, or nil when the item is empty or inconsistent.
func (i Item) Entity() any {
	switch i.Type {
	case ItemTypeBlock:
		if i.Block != nil {
			return i.Block
		}
	case ItemTypeTransaction:
		if i.Transaction != nil {
			return i.Transaction
		}
	case ItemTypeTrace:
		if i.Trace != nil {
			return i.Trace
		}
	}
	return nil
}

// BlockNumber returns the block the item belongs to.
func (i Item) BlockNumber() uint64 {
	switch {
	case i.Block != nil:
		return i.Block.Number
	case i.Transaction != nil:
		return i.Transaction.BlockNumber
	case i.Trace != nil:
		return i.Trace.BlockNumber
	default:
		return 0
	}
}

// MarshalJSON flattens the entity fields next to the "type" and "item_id" keys.
func (i Item) MarshalJSON() ([]byte, error) {
	entity := i.Entity()
	if entity == nil {
		return nil, fmt.Errorf("item of type %q has no entity", i.Type)
	}
	body, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("item of type %q does not encode to an object", i.Type)
	}

	var itemID any
	if i.ItemID != "" {
		itemID = i.ItemID
	}
	head, err := json.Marshal(struct {
		Type   ItemType `json:"type"`
		ItemID any      `json:"item_id"`
	}{Type: i.Type, ItemID: itemID})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(head) + len(body))
	buf.Write(head[:len(head)-1])
	if rest := body[1:]; len(bytes.TrimSpace(rest)) > 1 {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// ParseItemTypes parses a comma separated list such as "block,transaction".
func ParseItemTypes(raw string) ([]ItemType, error) {
	seen := make(map[ItemType]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		t := ItemType(part)
		switch t {
		case ItemTypeBlock, ItemTypeTransaction, ItemTypeTrace:
			seen[t] = struct{}{}
		default:
			return nil, fmt.Errorf("unknown entity type %q", part)
		}
	}

	result := make([]ItemType, 0, len(seen))
	for _, t := range AllItemTypes {
		if _, ok := seen[t]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

// ContainsItemType reports whether t is in types.
func ContainsItemType(types []ItemType, t ItemType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// SortItems orders items deterministically by block, transaction position and movement.
func SortItems(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return itemLess(items[a], items[b])
	})
}

func typeRank(t ItemType) int {
	for i, candidate := range AllItemTypes {
		if candidate == t {
			return i
		}
	}
	return len(AllItemTypes)
}

func itemLess(a, b Item) bool {
	if an, bn := a.BlockNumber(), b.BlockNumber(); an != bn {
		return an < bn
	}
	if ar, br := typeRank(a.Type), typeRank(b.Type); ar != br {
		return ar < br
	}
	switch a.Type {
	case ItemTypeTransaction:
		return a.Transaction.Index < b.Transaction.Index
	case ItemTypeTrace:
		ta, tb := a.Trace, b.Trace
		if ta.TransactionIndex != tb.TransactionIndex {
			return ta.TransactionIndex < tb.TransactionIndex
		}
		if ta.IsIn != tb.IsIn {
			return ta.IsIn
		}
		return traceOrdinal(ta) < traceOrdinal(tb)
	}
	return false
}

func traceOrdinal(t *Trace) int64 {
	if t.IsIn {
		if t.VinIndex != nil {
			return int64(*t.VinIndex)
		}
		return -1
	}
	if t.VoutIndex != nil {
		return int64(*t.VoutIndex)
	}
	return -1
}

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/retry"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrPreviousTransactionNotFound means the node did not return a transaction spent by an input.
	ErrPreviousTransactionNotFound = errors.New("previous transaction not found")
	// ErrPreviousOutputOutOfRange means an input spends an output index the previous transaction does not have.
	ErrPreviousOutputOutOfRange = errors.New("previous output index out of range")
)

// EnrichTransactionsJob resolves the outputs spent by transaction inputs and copies their
// script type, addresses, value and required signatures onto the inputs.
type EnrichTransactionsJob struct {
	transactions []model.Transaction
	executor     *Executor
	mapper       *bitcoin.Mapper
	exporter     ItemExporter
	logger       *zap.Logger
}

// NewEnrichTransactionsJob builds the job over transactions. The input slice is not modified.
func NewEnrichTransactionsJob(transactions []model.Transaction, executor *Executor, mapper *bitcoin.Mapper, exporter ItemExporter, logger *zap.Logger) *EnrichTransactionsJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichTransactionsJob{
		transactions: transactions,
		executor:     executor,
		mapper:       mapper,
		exporter:     exporter,
		logger:       logger.Named("enrich_transactions"),
	}
}

// Run fetches every distinct previous transaction and exports the enriched transactions.
func (j *EnrichTransactionsJob) Run(ctx context.Context) (err error) {
	if err := j.exporter.Open(ctx); err != nil {
		return fmt.Errorf("open exporter: %w", err)
	}
	defer func() {
		if closeErr := j.exporter.Close(ctx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close exporter: %w", closeErr))
		}
	}()

	hashes := spentTransactionHashes(j.transactions)

	var mu sync.Mutex
	previous := make(map[string][]model.TransactionOutput, len(hashes))
	err = workerpool.Execute(ctx, j.executor, hashes, func(ctx context.Context, client RPCClient, batch []string) error {
		payloads, err := client.GetRawTransactions(ctx, batch)
		if err != nil {
			return fmt.Errorf("get raw transactions: %w", err)
		}
		if len(payloads) != len(batch) {
			return retry.Permanent(fmt.Errorf("requested %d transactions, got %d", len(batch), len(payloads)))
		}
		fetched := make(map[string][]model.TransactionOutput, len(payloads))
		for i, payload := range payloads {
			if payload.TxID != batch[i] {
				return retry.Permanent(fmt.Errorf("requested transaction %s, got %s", batch[i], payload.TxID))
			}
			outputs, err := j.mapper.MapOutputs(payload)
			if err != nil {
				return retry.Permanent(fmt.Errorf("map previous transaction: %w", err))
			}
			fetched[payload.TxID] = outputs
		}

		mu.Lock()
		defer mu.Unlock()
		for hash, outputs := range fetched {
			previous[hash] = outputs
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetch previous transactions: %w", err)
	}

	items := make([]model.Item, 0, len(j.transactions))
	for _, tx := range j.transactions {
		enriched, err := enrichTransaction(tx, previous)
		if err != nil {
			return err
		}
		items = append(items, model.NewTransactionItem(enriched))
	}

	j.logger.Debug("enriched transactions",
		zap.Int("transactions", len(items)),
		zap.Int("previous_transactions", len(hashes)),
	)

	if err := j.exporter.ExportItems(ctx, items); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	return nil
}

// spentTransactionHashes returns the distinct spent transaction hashes in first-seen order.
func spentTransactionHashes(transactions []model.Transaction) []string {
	seen := make(map[string]struct{})
	hashes := make([]string, 0)
	for _, tx := range transactions {
		for _, in := range tx.Inputs {
			if in.IsCoinbase() {
				continue
			}
			if _, ok := seen[in.SpentTransactionHash]; ok {
				continue
			}
			seen[in.SpentTransactionHash] = struct{}{}
			hashes = append(hashes, in.SpentTransactionHash)
		}
	}
	return hashes
}

func enrichTransaction(tx model.Transaction, previous map[string][]model.TransactionOutput) (model.Transaction, error) {
	inputs := make([]model.TransactionInput, len(tx.Inputs))
	copy(inputs, tx.Inputs)

	for i := range inputs {
		in := &inputs[i]
		if in.IsCoinbase() {
			continue
		}
		outputs, ok := previous[in.SpentTransactionHash]
		if !ok {
			return model.Transaction{}, fmt.Errorf("%w: %s spent by tx %s input %d",
				ErrPreviousTransactionNotFound, in.SpentTransactionHash, tx.Hash, in.Index)
		}
		if in.SpentOutputIndex == nil {
			return model.Transaction{}, fmt.Errorf("%w: tx %s input %d has no spent output index",
				ErrPreviousOutputOutOfRange, tx.Hash, in.Index)
		}
		if int(*in.SpentOutputIndex) >= len(outputs) {
			return model.Transaction{}, fmt.Errorf("%w: tx %s input %d spends %s:%d of %d outputs",
				ErrPreviousOutputOutOfRange, tx.Hash, in.Index, in.SpentTransactionHash, *in.SpentOutputIndex, len(outputs))
		}

		out := outputs[*in.SpentOutputIndex]
		value := out.Value
		outputCount := len(outputs)
		in.Type = out.Type
		in.Addresses = out.Addresses
		in.Value = &value
		in.RequiredSignatures = out.RequiredSignatures
		in.PrevOutputCount = &outputCount
	}

	tx.Inputs = inputs
	return tx, nil
}

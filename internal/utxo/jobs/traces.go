package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// AddressSeparator joins multiple owning addresses into a single trace address.
const AddressSeparator = ";"

// ExtractTracesJob flattens transactions into one trace per input and one per output.
// It makes no RPC calls.
type ExtractTracesJob struct {
	transactions []model.Transaction
	exporter     ItemExporter
}

// NewExtractTracesJob builds the job over transactions.
func NewExtractTracesJob(transactions []model.Transaction, exporter ItemExporter) *ExtractTracesJob {
	return &ExtractTracesJob{transactions: transactions, exporter: exporter}
}

// Run derives and exports the traces.
func (j *ExtractTracesJob) Run(ctx context.Context) (err error) {
	if err := j.exporter.Open(ctx); err != nil {
		return fmt.Errorf("open exporter: %w", err)
	}
	defer func() {
		if closeErr := j.exporter.Close(ctx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close exporter: %w", closeErr))
		}
	}()

	items := make([]model.Item, 0)
	for _, tx := range j.transactions {
		for _, trace := range TransactionTraces(tx) {
			items = append(items, model.NewTraceItem(trace))
		}
	}
	if err := j.exporter.ExportItems(ctx, items); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	return nil
}

// TransactionTraces returns the input traces followed by the output traces of tx.
func TransactionTraces(tx model.Transaction) []model.Trace {
	inputValue := tx.InputValue()
	if tx.IsCoinbase {
		inputValue = nil
	}
	outputValue := tx.OutputValue()
	inputCount := tx.InputCount()
	outputCount := tx.OutputCount()

	base := model.Trace{
		TransactionHash:  tx.Hash,
		TransactionIndex: tx.Index,
		BlockNumber:      tx.BlockNumber,
		BlockHash:        tx.BlockHash,
		BlockTimestamp:   tx.BlockTimestamp,
		IsCoinbase:       tx.IsCoinbase,
		VinCount:         inputCount,
		InputValue:       inputValue,
		OutputValue:      outputValue,
	}

	traces := make([]model.Trace, 0, inputCount+outputCount)
	for _, in := range tx.Inputs {
		vinIndex := in.Index
		trace := base
		trace.IsIn = true
		trace.VinIndex = &vinIndex
		trace.VoutIndex = in.SpentOutputIndex
		trace.VoutCount = in.PrevOutputCount
		trace.PrevTransactionHash = in.SpentTransactionHash
		trace.Value = in.Value
		trace.Address = joinAddresses(in.Addresses)
		trace.Type = in.Type
		trace.RequiredSignatures = in.RequiredSignatures
		traces = append(traces, trace)
	}
	for _, out := range tx.Outputs {
		voutIndex := out.Index
		value := out.Value
		trace := base
		trace.VoutIndex = &voutIndex
		trace.VoutCount = &outputCount
		trace.Value = &value
		trace.Address = joinAddresses(out.Addresses)
		trace.Type = out.Type
		trace.RequiredSignatures = out.RequiredSignatures
		traces = append(traces, trace)
	}
	return traces
}

func joinAddresses(addresses []string) *string {
	if len(addresses) == 0 {
		return nil
	}
	joined := strings.Join(addresses, AddressSeparator)
	return &joined
}

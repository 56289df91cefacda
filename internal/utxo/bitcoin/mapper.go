package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/rpc"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/safe"
)

// Mapper converts verbose node payloads into model records for one network.
type Mapper struct {
	network model.Network
	decoder ScriptDecoder
}

// NewMapper constructs a Mapper with a script decoder for network.
func NewMapper(network model.Network) (*Mapper, error) {
	decoder, err := NewScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return newMapper(network, decoder), nil
}

func newMapper(network model.Network, decoder ScriptDecoder) *Mapper {
	return &Mapper{network: network, decoder: decoder}
}

// Network returns the network the mapper decodes addresses for.
func (m *Mapper) Network() model.Network {
	return m.network
}

// MapBlock maps a verbosity-2 block including all of its transactions.
func (m *Mapper) MapBlock(src rpc.Block) (model.Block, error) {
	if err := validateHash(src.Hash); err != nil {
		return model.Block{}, fmt.Errorf("block %d hash: %w", src.Height, err)
	}
	number, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height: %w", src.Hash, err)
	}
	if _, err := ParseBits(src.Bits); err != nil {
		return model.Block{}, fmt.Errorf("block %d bits parse: %w", number, err)
	}

	block := model.Block{
		Hash:             src.Hash,
		Number:           number,
		Size:             src.Size,
		StrippedSize:     src.StrippedSize,
		Weight:           src.Weight,
		Version:          src.Version,
		MerkleRoot:       src.MerkleRoot,
		Timestamp:        src.Time,
		Nonce:            fmt.Sprintf("%08x", src.Nonce),
		Bits:             src.Bits,
		Difficulty:       src.Difficulty,
		TransactionCount: len(src.Tx),
		Transactions:     make([]model.Transaction, 0, len(src.Tx)),
	}

	for i, rawTx := range src.Tx {
		tx, err := m.MapTransaction(rawTx)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d: %w", number, err)
		}
		tx.BlockNumber = number
		tx.BlockHash = src.Hash
		tx.BlockTimestamp = src.Time
		tx.Index = i
		if i == 0 && tx.IsCoinbase {
			block.CoinbaseParam = tx.Inputs[0].CoinbaseParam
		}
		block.Transactions = append(block.Transactions, tx)
	}
	return block, nil
}

// MapTransaction maps a verbose transaction. Block linkage is left to the caller.
func (m *Mapper) MapTransaction(src rpc.Transaction) (model.Transaction, error) {
	if err := validateHash(src.TxID); err != nil {
		return model.Transaction{}, fmt.Errorf("tx hash: %w", err)
	}

	tx := model.Transaction{
		Hash:        src.TxID,
		Size:        src.Size,
		VirtualSize: src.VSize,
		Weight:      src.Weight,
		Version:     src.Version,
		LockTime:    src.LockTime,
		Hex:         src.Hex,
		IsCoinbase:  len(src.Vin) > 0 && src.Vin[0].IsCoinBase(),
		Inputs:      make([]model.TransactionInput, 0, len(src.Vin)),
	}

	for _, vin := range src.Vin {
		in := model.TransactionInput{
			Sequence: vin.Sequence,
			Witness:  vin.Witness,
		}
		if vin.ScriptSig != nil {
			in.ScriptAsm = vin.ScriptSig.Asm
			in.ScriptHex = vin.ScriptSig.Hex
		}
		if vin.IsCoinBase() {
			in.CoinbaseParam = vin.Coinbase
		} else {
			if err := validateHash(vin.TxID); err != nil {
				return model.Transaction{}, fmt.Errorf("tx %s input %d spent hash: %w", src.TxID, len(tx.Inputs), err)
			}
			spentIndex := vin.Vout
			in.SpentTransactionHash = vin.TxID
			in.SpentOutputIndex = &spentIndex
		}
		tx.AddInput(in)
	}

	outputs, err := m.MapOutputs(src)
	if err != nil {
		return model.Transaction{}, err
	}
	tx.Outputs = outputs
	return tx, nil
}

// MapOutputs maps the outputs of src, keeping the node-provided output positions.
func (m *Mapper) MapOutputs(src rpc.Transaction) ([]model.TransactionOutput, error) {
	outputs := make([]model.TransactionOutput, 0, len(src.Vout))
	for idx, vout := range src.Vout {
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", src.TxID, idx, err)
		}
		decoded, err := m.decoder.decodeScript(vout.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("decode addresses for tx %s output %d: %w", src.TxID, idx, err)
		}
		outputs = append(outputs, model.TransactionOutput{
			Index:              vout.N,
			ScriptAsm:          vout.ScriptPubKey.Asm,
			ScriptHex:          vout.ScriptPubKey.Hex,
			RequiredSignatures: decoded.RequiredSignatures,
			Type:               vout.ScriptPubKey.Type,
			Addresses:          decoded.Addresses,
			Value:              value,
		})
	}
	return outputs, nil
}

var errEmptyHash = errors.New("empty hash")

func validateHash(hash string) error {
	if hash == "" {
		return errEmptyHash
	}
	if len(hash) != chainhash.MaxHashStringSize {
		return fmt.Errorf("hash %q has length %d", hash, len(hash))
	}
	_, err := chainhash.NewHashFromStr(hash)
	return err
}

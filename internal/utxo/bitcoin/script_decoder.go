package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/rpc"
)

// scriptDecoder extracts human-readable addresses from scriptPubKey payloads.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for extracting addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// decodeScript prefers what the node reported and falls back to parsing the script hex.
// Recent nodes dropped reqSigs and addresses, so both may need to come from the script.
func (d *scriptDecoder) decodeScript(pk rpc.ScriptPubKey) (DecodedScript, error) {
	var addresses []string
	switch {
	case len(pk.Addresses) > 0:
		addresses = append([]string(nil), pk.Addresses...)
	case pk.Address != "":
		addresses = []string{pk.Address}
	}
	if (addresses != nil && pk.ReqSigs != nil) || pk.Hex == "" {
		return DecodedScript{Addresses: addresses, RequiredSignatures: pk.ReqSigs}, nil
	}

	scriptBytes, err := hex.DecodeString(pk.Hex)
	if err != nil {
		return DecodedScript{}, err
	}
	class, addrs, reqSigs, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return DecodedScript{}, err
	}

	decoded := DecodedScript{Addresses: addresses, RequiredSignatures: pk.ReqSigs}
	if decoded.Addresses == nil && len(addrs) > 0 {
		decoded.Addresses = make([]string, 0, len(addrs))
		for _, addr := range addrs {
			decoded.Addresses = append(decoded.Addresses, addr.EncodeAddress())
		}
	}
	if decoded.RequiredSignatures == nil && class != txscript.NonStandardTy && class != txscript.NullDataTy {
		decoded.RequiredSignatures = &reqSigs
	}
	return decoded, nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

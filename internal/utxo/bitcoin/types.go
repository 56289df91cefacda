package bitcoin

import (
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScriptDecoder resolves owning addresses and the required signature count of a locking script.
	ScriptDecoder interface {
		decodeScript(pk rpc.ScriptPubKey) (DecodedScript, error)
	}
)

// DecodedScript is the address view of a locking script.
type DecodedScript struct {
	Addresses          []string
	RequiredSignatures *int
}

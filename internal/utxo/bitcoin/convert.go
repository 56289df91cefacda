// Package bitcoin maps Bitcoin node payloads onto the export model.
package bitcoin

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

var maxSatoshi = decimal.NewFromInt(btcutil.MaxSatoshi)

// BtcToSatoshis converts an exact coin amount to satoshis. The amount must be non-negative,
// carry at most eight fractional digits and not exceed the total supply.
func BtcToSatoshis(value decimal.Decimal) (int64, error) {
	if value.IsNegative() {
		return 0, fmt.Errorf("negative amount: %s", value)
	}
	sat := value.Shift(8)
	if !sat.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-satoshi precision", value)
	}
	if sat.GreaterThan(maxSatoshi) {
		return 0, fmt.Errorf("amount %s exceeds max supply", value)
	}
	return sat.IntPart(), nil
}

// ParseBits parses a bits string into a 32-bit value.
func ParseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

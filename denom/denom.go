package denom

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Mega is the number of base units (upass) in one PASS.
const Mega = 1000000

var unitSuffixes = []struct {
	symbol string
	unit   int64
}{
	{"PASS", Mega},
	{"upass", 1},
	{"u", 1},
}

// ToBase converts a human price input to its equivalent value in base
// denomination. A bare number is interpreted as whole PASS, e.g.
// "1.5" and "1.5PASS" both give 1500000. Fractions below one base unit
// are truncated.
func ToBase(sval string) (uint64, error) {
	unit := int64(Mega)

	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(sval, suffix.symbol) {
			sval = strings.TrimSuffix(sval, suffix.symbol)
			unit = suffix.unit
			break
		}
	}

	val, err := sdkmath.LegacyNewDecFromStr(sval)
	if err != nil {
		return 0, fmt.Errorf("unrecognized denomination %s", sval)
	}

	if val.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", sval)
	}

	amount := val.MulInt64(unit).TruncateInt()
	if !amount.BigInt().IsUint64() {
		return 0, fmt.Errorf("amount out of range %s", sval)
	}

	return amount.Uint64(), nil
}

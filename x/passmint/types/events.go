package types

import (
	"strings"
)

// CurrencyLabelUSD is the currency label recorded for either recognized USD
// token.
const CurrencyLabelUSD = "USD"

// NativeCurrencyLabel derives the display label recorded for a native
// currency payment from its base denom, e.g. "upass" -> "PASS".
func NativeCurrencyLabel(denom string) string {
	return strings.ToUpper(strings.TrimPrefix(denom, "u"))
}

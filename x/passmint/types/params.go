package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultNativeDenom is the chain's native payment denom.
	DefaultNativeDenom = "upass"

	// DefaultMaxIssuance caps the collection size. Zero disables the cap.
	DefaultMaxIssuance uint64 = 10000
)

var (
	// DefaultUSDDenoms are the two stable token denoms recognized as
	// USD-equivalent payment.
	DefaultUSDDenoms = []string{"uusdc", "uusdt"}

	// DefaultUnitPriceUSD is the price of one pass in USD token base units
	// (155 USD at 6 decimals).
	DefaultUnitPriceUSD = sdkmath.NewInt(155000000)

	// DefaultUnitPriceNative is the price of one pass in native base units
	// (0.5 at 6 decimals).
	DefaultUnitPriceNative = sdkmath.NewInt(500000)
)

// DefaultParams returns default parameters for the passmint module
func DefaultParams() Params {
	return Params{
		UsdDenoms:       append([]string{}, DefaultUSDDenoms...),
		UnitPriceUsd:    DefaultUnitPriceUSD,
		UnitPriceNative: DefaultUnitPriceNative,
		NativeDenom:     DefaultNativeDenom,
		MaxIssuance:     DefaultMaxIssuance,
	}
}

// Validate performs sanity checks on the params set. The two USD denoms are
// not required to be distinct; a duplicate entry is a configuration concern,
// the recognizer accepts any match.
func (p Params) Validate() error {
	if len(p.UsdDenoms) != 2 {
		return fmt.Errorf("%s: exactly two usd denoms required, got %d", ModuleName, len(p.UsdDenoms))
	}

	for _, denom := range p.UsdDenoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return fmt.Errorf("%s: invalid usd denom %q: %w", ModuleName, denom, err)
		}
	}

	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("%s: invalid native denom %q: %w", ModuleName, p.NativeDenom, err)
	}

	if p.UnitPriceUsd.IsNil() || !p.UnitPriceUsd.IsPositive() {
		return fmt.Errorf("%s: usd unit price must be positive", ModuleName)
	}

	if p.UnitPriceNative.IsNil() || !p.UnitPriceNative.IsPositive() {
		return fmt.Errorf("%s: native unit price must be positive", ModuleName)
	}

	return nil
}

// RecognizeUSDDenom reports whether the presented denom matches one of the
// configured USD token denoms. Pure function of the params, order
// independent.
func (p Params) RecognizeUSDDenom(denom string) bool {
	for _, usd := range p.UsdDenoms {
		if denom == usd {
			return true
		}
	}

	return false
}

// String implements the Stringer interface for the Params type
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

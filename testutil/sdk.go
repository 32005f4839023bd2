package testutil

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func Coin(t testing.TB) sdk.Coin {
	t.Helper()
	return sdk.NewCoin("testcoin", sdkmath.NewInt(int64(RandRangeInt(1, 1000)))) // nolint: gosec
}

func DecCoin(t testing.TB) sdk.DecCoin {
	t.Helper()
	return sdk.NewDecCoin("testcoin", sdkmath.NewInt(int64(RandRangeInt(1, 1000)))) // nolint: gosec
}

// PassCoin provides simple interface to the native sdk.Coin type.
func PassCoin(t testing.TB, amount int64) sdk.Coin {
	t.Helper()
	amt := sdkmath.NewInt(amount)
	return sdk.NewCoin(CoinDenom, amt)
}

// USDCoin provides a coin in the given recognized USD denom.
func USDCoin(t testing.TB, denom string, amount int64) sdk.Coin {
	t.Helper()
	amt := sdkmath.NewInt(amount)
	return sdk.NewCoin(denom, amt)
}

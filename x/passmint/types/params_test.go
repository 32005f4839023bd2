package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/passmint-network/node/x/passmint/types"
)

func TestParamsValidate(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())

	params = types.DefaultParams()
	params.UsdDenoms = []string{"uusdc"}
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.UsdDenoms = []string{"uusdc", "uusdt", "udai"}
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.UsdDenoms = []string{"uusdc", "!"}
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.NativeDenom = ""
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.UnitPriceUsd = sdkmath.ZeroInt()
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.UnitPriceNative = sdkmath.NewInt(-1)
	require.Error(t, params.Validate())

	// duplicate usd denoms are accepted
	params = types.DefaultParams()
	params.UsdDenoms = []string{"uusdc", "uusdc"}
	require.NoError(t, params.Validate())

	// zero max issuance disables the cap
	params = types.DefaultParams()
	params.MaxIssuance = 0
	require.NoError(t, params.Validate())
}

func TestParamsRecognizeUSDDenom(t *testing.T) {
	params := types.DefaultParams()

	require.True(t, params.RecognizeUSDDenom("uusdc"))
	require.True(t, params.RecognizeUSDDenom("uusdt"))
	require.False(t, params.RecognizeUSDDenom("udai"))
	require.False(t, params.RecognizeUSDDenom(params.NativeDenom))
	require.False(t, params.RecognizeUSDDenom(""))
}

func TestNativeCurrencyLabel(t *testing.T) {
	require.Equal(t, "PASS", types.NativeCurrencyLabel("upass"))
	require.Equal(t, "ATOM", types.NativeCurrencyLabel("uatom"))
	require.Equal(t, "STAKE", types.NativeCurrencyLabel("stake"))
}

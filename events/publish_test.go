package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/passmint-network/node/testutil"
	types "github.com/passmint-network/node/x/passmint/types"
)

func Test_processEvent(t *testing.T) {
	tests := []types.EventReferralMint{
		{
			ReferralCode:  testutil.ReferralCode(t),
			CurrencyLabel: types.CurrencyLabelUSD,
			AmountPaid:    sdkmath.NewInt(465000000),
			Owner:         testutil.AccAddress(t).String(),
			Quantity:      3,
			FirstID:       1,
		},
		{
			CurrencyLabel: "PASS",
			AmountPaid:    sdkmath.NewInt(500000),
			Owner:         testutil.AccAddress(t).String(),
			Quantity:      1,
			FirstID:       4,
		},
	}

	for _, test := range tests {
		test := test
		sdkev, err := sdk.TypedEventToEvent(&test)
		require.NoError(t, err)

		ev, ok := processEvent(abci.Event(sdkev))
		assert.True(t, ok, test)
		assert.Equal(t, test, ev, test)
	}
}

func Test_processEventIgnoresForeign(t *testing.T) {
	ev := sdk.NewEvent("transfer",
		sdk.NewAttribute("recipient", testutil.AccAddress(t).String()),
		sdk.NewAttribute("amount", "100upass"),
	)

	_, ok := processEvent(abci.Event(ev))
	assert.False(t, ok)
}

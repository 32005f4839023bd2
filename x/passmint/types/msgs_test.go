package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/passmint-network/node/testutil"
	"github.com/passmint-network/node/x/passmint/types"
)

type validateBasicMsg interface {
	ValidateBasic() error
}

type testMsg struct {
	msg validateBasicMsg
	err error
}

func TestMintMsgValidation(t *testing.T) {
	sender := testutil.AccAddress(t)

	tests := []testMsg{
		{
			msg: &types.MsgUsdMint{
				Sender:       sender.String(),
				ReferralCode: testutil.ReferralCode(t),
				Payment:      testutil.USDCoin(t, "uusdc", 155000000),
			},
			err: nil,
		},
		{
			msg: &types.MsgUsdMint{
				Sender:  "notanaddress",
				Payment: testutil.USDCoin(t, "uusdc", 155000000),
			},
			err: sdkerrors.ErrInvalidAddress,
		},
		{
			msg: &types.MsgUsdMint{
				Sender:  sender.String(),
				Payment: sdk.Coin{Denom: "uusdc", Amount: sdkmath.NewInt(-1)},
			},
			err: sdkerrors.ErrInvalidCoins,
		},
		{
			msg: &types.MsgNativeMint{
				Sender:  sender.String(),
				Payment: testutil.PassCoin(t, 500000),
			},
			err: nil,
		},
		{
			msg: &types.MsgNativeMint{
				Sender:  "",
				Payment: testutil.PassCoin(t, 500000),
			},
			err: sdkerrors.ErrInvalidAddress,
		},
		{
			msg: &types.MsgNativeMint{
				Sender:  sender.String(),
				Payment: sdk.Coin{Denom: "u", Amount: sdkmath.NewInt(1)},
			},
			err: sdkerrors.ErrInvalidCoins,
		},
	}

	for _, test := range tests {
		err := test.msg.ValidateBasic()
		if test.err == nil {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, test.err)
		}
	}
}

func TestUpdateParamsMsgValidation(t *testing.T) {
	authority := testutil.AccAddress(t)

	msg := &types.MsgUpdateParams{
		Authority: authority.String(),
		Params:    types.DefaultParams(),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Authority = "notanaddress"
	require.ErrorIs(t, msg.ValidateBasic(), sdkerrors.ErrInvalidAddress)

	msg.Authority = authority.String()
	msg.Params.UnitPriceNative = sdkmath.ZeroInt()
	require.Error(t, msg.ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	sender := testutil.AccAddress(t)

	umsg := &types.MsgUsdMint{Sender: sender.String()}
	require.Equal(t, []sdk.AccAddress{sender}, umsg.GetSigners())

	nmsg := &types.MsgNativeMint{Sender: sender.String()}
	require.Equal(t, []sdk.AccAddress{sender}, nmsg.GetSigners())
}

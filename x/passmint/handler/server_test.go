package handler_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/passmint-network/node/testutil"
	"github.com/passmint-network/node/testutil/state"
	"github.com/passmint-network/node/x/passmint/handler"
	types "github.com/passmint-network/node/x/passmint/types"
)

type testSuite struct {
	*state.TestSuite
	t       *testing.T
	ctx     sdk.Context
	mserver types.MsgServer
}

func setupTestSuite(t *testing.T) *testSuite {
	ssuite := state.SetupTestSuite(t)

	suite := &testSuite{
		TestSuite: ssuite,
		t:         t,
		ctx:       ssuite.Context(),
		mserver:   handler.NewMsgServerImpl(ssuite.PassmintKeeper()),
	}

	return suite
}

func TestServerUsdMint(t *testing.T) {
	suite := setupTestSuite(t)

	sender := testutil.AccAddress(t)
	payment := testutil.USDCoin(t, "uusdc", 465000000)

	suite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	res, err := suite.mserver.UsdMint(suite.ctx, &types.MsgUsdMint{
		Sender:       sender.String(),
		ReferralCode: testutil.ReferralCode(t),
		Payment:      payment,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.FirstID)
	require.Equal(t, uint64(3), res.LastID)

	balance, err := suite.PassmintKeeper().GetBalanceOf(suite.ctx, sender)
	require.NoError(t, err)
	require.Equal(t, uint64(3), balance)
}

func TestServerUsdMintInvalidSender(t *testing.T) {
	suite := setupTestSuite(t)

	_, err := suite.mserver.UsdMint(suite.ctx, &types.MsgUsdMint{
		Sender:  "notanaddress",
		Payment: testutil.USDCoin(t, "uusdc", 155000000),
	})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func TestServerUsdMintInvalidPayment(t *testing.T) {
	suite := setupTestSuite(t)

	payment := sdk.Coin{Denom: "uusdc", Amount: sdkmath.NewInt(-1)}

	_, err := suite.mserver.UsdMint(suite.ctx, &types.MsgUsdMint{
		Sender:  testutil.AccAddress(t).String(),
		Payment: payment,
	})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidCoins)
}

func TestServerUsdMintRejectedPayment(t *testing.T) {
	suite := setupTestSuite(t)

	_, err := suite.mserver.UsdMint(suite.ctx, &types.MsgUsdMint{
		Sender:  testutil.AccAddress(t).String(),
		Payment: testutil.PassCoin(t, 500000),
	})
	require.ErrorIs(t, err, types.ErrUnrecognizedUSDToken)
}

func TestServerNativeMint(t *testing.T) {
	suite := setupTestSuite(t)

	sender := testutil.AccAddress(t)
	payment := testutil.PassCoin(t, 1500000)

	suite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	res, err := suite.mserver.NativeMint(suite.ctx, &types.MsgNativeMint{
		Sender:       sender.String(),
		ReferralCode: testutil.ReferralCode(t),
		Payment:      payment,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.FirstID)
	require.Equal(t, uint64(3), res.LastID)
}

func TestServerNativeMintWrongDenom(t *testing.T) {
	suite := setupTestSuite(t)

	_, err := suite.mserver.NativeMint(suite.ctx, &types.MsgNativeMint{
		Sender:  testutil.AccAddress(t).String(),
		Payment: testutil.USDCoin(t, "uusdc", 155000000),
	})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestServerUpdateParams(t *testing.T) {
	suite := setupTestSuite(t)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	params := types.DefaultParams()
	params.UnitPriceUsd = sdkmath.NewInt(200000000)

	_, err := suite.mserver.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    params,
	})
	require.NoError(t, err)

	stored, err := suite.PassmintKeeper().GetParams(suite.ctx)
	require.NoError(t, err)
	require.Equal(t, params, stored)
}

func TestServerUpdateParamsBadAuthority(t *testing.T) {
	suite := setupTestSuite(t)

	_, err := suite.mserver.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: testutil.AccAddress(t).String(),
		Params:    types.DefaultParams(),
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)
}

func TestServerUpdateParamsInvalid(t *testing.T) {
	suite := setupTestSuite(t)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	params := types.DefaultParams()
	params.UnitPriceUsd = sdkmath.ZeroInt()

	_, err := suite.mserver.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    params,
	})
	require.Error(t, err)
}

package keeper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/passmint-network/node/testutil"
	cmocks "github.com/passmint-network/node/testutil/cosmos/mocks"
	"github.com/passmint-network/node/testutil/state"
	"github.com/passmint-network/node/x/passmint/keeper"
	types "github.com/passmint-network/node/x/passmint/types"
)

func setupKeeper(t testing.TB) (sdk.Context, keeper.Keeper, *cmocks.BankKeeper) {
	t.Helper()
	ssuite := state.SetupTestSuite(t)
	return ssuite.Context(), ssuite.PassmintKeeper(), ssuite.BankKeeper()
}

func usd(amount int64) sdk.Coin {
	return sdk.NewCoin("uusdc", sdkmath.NewInt(amount))
}

func native(amount int64) sdk.Coin {
	return sdk.NewCoin(types.DefaultNativeDenom, sdkmath.NewInt(amount))
}

func findMintEvents(t *testing.T, ctx sdk.Context) []types.EventReferralMint {
	t.Helper()

	var events []types.EventReferralMint

	for _, ev := range ctx.EventManager().Events() {
		if ev.Type != "passmint.v1.EventReferralMint" {
			continue
		}

		parsed := types.EventReferralMint{}
		for _, attr := range ev.Attributes {
			// typed event attribute values are JSON encoded
			val := attr.Value
			if len(val) >= 2 && val[0] == '"' {
				val = val[1 : len(val)-1]
			}

			switch attr.Key {
			case "referral_code":
				parsed.ReferralCode = val
			case "currency_label":
				parsed.CurrencyLabel = val
			case "amount_paid":
				amount, ok := sdkmath.NewIntFromString(val)
				require.True(t, ok, "bad amount_paid attribute %q", attr.Value)
				parsed.AmountPaid = amount
			case "owner":
				parsed.Owner = val
			case "quantity":
				_, err := fmt.Sscanf(val, "%d", &parsed.Quantity)
				require.NoError(t, err)
			case "first_id":
				_, err := fmt.Sscanf(val, "%d", &parsed.FirstID)
				require.NoError(t, err)
			}
		}

		events = append(events, parsed)
	}

	return events
}

func TestUsdMintExactMultiple(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)
	payment := usd(465000000) // 3 passes at 155 USD each

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	firstID, lastID, err := keeper.UsdMint(ctx, sender, "ref-1", payment)
	require.NoError(t, err)
	require.Equal(t, uint64(1), firstID)
	require.Equal(t, uint64(3), lastID)

	total, err := keeper.GetTotalIssued(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)

	for id := uint64(1); id <= 3; id++ {
		pass, err := keeper.GetPass(ctx, id)
		require.NoError(t, err)
		require.Equal(t, id, pass.ID)
		require.Equal(t, sender.String(), pass.Owner)
	}

	balance, err := keeper.GetBalanceOf(ctx, sender)
	require.NoError(t, err)
	require.Equal(t, uint64(3), balance)

	bkeeper.AssertExpectations(t)
}

func TestUsdMintEmitsReferralEvent(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)
	payment := usd(155000000)

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	_, _, err := keeper.UsdMint(ctx, sender, "promo", payment)
	require.NoError(t, err)

	events := findMintEvents(t, ctx)
	require.Len(t, events, 1)
	require.Equal(t, "promo", events[0].ReferralCode)
	require.Equal(t, types.CurrencyLabelUSD, events[0].CurrencyLabel)
	require.Equal(t, payment.Amount, events[0].AmountPaid)
	require.Equal(t, sender.String(), events[0].Owner)
	require.Equal(t, uint64(1), events[0].Quantity)
	require.Equal(t, uint64(1), events[0].FirstID)
}

func TestUsdMintNotExactMultiple(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)

	_, _, err := keeper.UsdMint(ctx, sender, "", usd(154000000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.Contains(t, err.Error(), "Invalid USD amount!")

	// partial units buy nothing, even above one unit price
	_, _, err = keeper.UsdMint(ctx, sender, "", usd(155000001))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	total, err := keeper.GetTotalIssued(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), total)

	bkeeper.AssertNotCalled(t, "SendCoinsFromAccountToModule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	require.Empty(t, findMintEvents(t, ctx))
}

func TestUsdMintZeroAmount(t *testing.T) {
	ctx, keeper, _ := setupKeeper(t)

	_, _, err := keeper.UsdMint(ctx, testutil.AccAddress(t), "", usd(0))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestUsdMintUnrecognizedDenom(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	payment := sdk.NewCoin("udai", sdkmath.NewInt(155000000))

	_, _, err := keeper.UsdMint(ctx, testutil.AccAddress(t), "", payment)
	require.ErrorIs(t, err, types.ErrUnrecognizedUSDToken)

	bkeeper.AssertNotCalled(t, "SendCoinsFromAccountToModule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsdMintSecondDenomRecognized(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)
	payment := sdk.NewCoin("uusdt", sdkmath.NewInt(310000000))

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	firstID, lastID, err := keeper.UsdMint(ctx, sender, "", payment)
	require.NoError(t, err)
	require.Equal(t, uint64(1), firstID)
	require.Equal(t, uint64(2), lastID)
}

func TestUsdMintBankFailureLeavesNoState(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)
	payment := usd(155000000)

	bankErr := fmt.Errorf("spendable balance is smaller than %s", payment)
	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(bankErr)

	_, _, err := keeper.UsdMint(ctx, sender, "", payment)
	require.ErrorIs(t, err, bankErr)

	total, err := keeper.GetTotalIssued(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), total)

	_, err = keeper.GetPass(ctx, 1)
	require.ErrorIs(t, err, types.ErrPassNotFound)

	require.Empty(t, findMintEvents(t, ctx))
}

func TestNativeMintExactMultiple(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	sender := testutil.AccAddress(t)
	payment := native(1500000) // 3 passes at 0.5 PASS each

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, sdk.NewCoins(payment)).
		Return(nil)

	firstID, lastID, err := keeper.NativeMint(ctx, sender, "ref-native", payment)
	require.NoError(t, err)
	require.Equal(t, uint64(1), firstID)
	require.Equal(t, uint64(3), lastID)

	events := findMintEvents(t, ctx)
	require.Len(t, events, 1)
	require.Equal(t, "PASS", events[0].CurrencyLabel)
	require.Equal(t, payment.Amount, events[0].AmountPaid)
}

func TestNativeMintWrongDenom(t *testing.T) {
	ctx, keeper, _ := setupKeeper(t)

	_, _, err := keeper.NativeMint(ctx, testutil.AccAddress(t), "", usd(500000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.Contains(t, err.Error(), "Invalid Native Token amount!")
}

func TestNativeMintNotExactMultiple(t *testing.T) {
	ctx, keeper, _ := setupKeeper(t)

	_, _, err := keeper.NativeMint(ctx, testutil.AccAddress(t), "", native(600000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.Contains(t, err.Error(), "Invalid Native Token amount!")

	total, err := keeper.GetTotalIssued(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), total)
}

func TestMintSequentialIDsAcrossSenders(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	alice := testutil.AccAddress(t)
	bob := testutil.AccAddress(t)

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, mock.Anything, types.ModuleName, mock.Anything).
		Return(nil)

	firstID, lastID, err := keeper.UsdMint(ctx, alice, "", usd(310000000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), firstID)
	require.Equal(t, uint64(2), lastID)

	firstID, lastID, err = keeper.NativeMint(ctx, bob, "", native(500000))
	require.NoError(t, err)
	require.Equal(t, uint64(3), firstID)
	require.Equal(t, uint64(3), lastID)

	firstID, lastID, err = keeper.UsdMint(ctx, alice, "", usd(155000000))
	require.NoError(t, err)
	require.Equal(t, uint64(4), firstID)
	require.Equal(t, uint64(4), lastID)

	aliceBalance, err := keeper.GetBalanceOf(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(3), aliceBalance)

	bobBalance, err := keeper.GetBalanceOf(ctx, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), bobBalance)

	pass, err := keeper.GetPass(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, bob.String(), pass.Owner)
}

func TestMintMaxIssuance(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	params, err := keeper.GetParams(ctx)
	require.NoError(t, err)

	params.MaxIssuance = 2
	require.NoError(t, keeper.SetParams(ctx, params))

	sender := testutil.AccAddress(t)

	_, _, err = keeper.UsdMint(ctx, sender, "", usd(465000000))
	require.ErrorIs(t, err, types.ErrMaxIssuanceExceeded)

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, mock.Anything).
		Return(nil)

	// exactly reaching the cap is allowed
	_, lastID, err := keeper.UsdMint(ctx, sender, "", usd(310000000))
	require.NoError(t, err)
	require.Equal(t, uint64(2), lastID)

	_, _, err = keeper.UsdMint(ctx, sender, "", usd(155000000))
	require.ErrorIs(t, err, types.ErrMaxIssuanceExceeded)
}

func TestMintMaxIssuanceDisabled(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	params, err := keeper.GetParams(ctx)
	require.NoError(t, err)

	params.MaxIssuance = 0
	require.NoError(t, keeper.SetParams(ctx, params))

	sender := testutil.AccAddress(t)

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, mock.Anything).
		Return(nil)

	_, lastID, err := keeper.UsdMint(ctx, sender, "", usd(155000000*100000))
	require.NoError(t, err)
	require.Equal(t, uint64(100000), lastID)
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, keeper, bkeeper := setupKeeper(t)

	alice := testutil.AccAddress(t)
	bob := testutil.AccAddress(t)

	bkeeper.
		On("SendCoinsFromAccountToModule", mock.Anything, mock.Anything, types.ModuleName, mock.Anything).
		Return(nil)

	_, _, err := keeper.UsdMint(ctx, alice, "", usd(310000000))
	require.NoError(t, err)

	_, _, err = keeper.NativeMint(ctx, bob, "", native(500000))
	require.NoError(t, err)

	exported := keeper.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Passes, 3)

	fctx, fresh, _ := setupKeeper(t)
	fresh.InitGenesis(fctx, exported)

	total, err := fresh.GetTotalIssued(fctx)
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)

	balance, err := fresh.GetBalanceOf(fctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(2), balance)

	reexported := fresh.ExportGenesis(fctx)
	require.Equal(t, exported, reexported)
}

func TestStoragePrefixesUnique(t *testing.T) {
	prefixes := [][]byte{
		keeper.TotalIssuedKey,
		keeper.PassesKey,
		keeper.PassesByOwnerKey,
		keeper.BalancesKey,
		keeper.ParamsKey,
	}

	seen := make(map[string]bool)
	for _, prefix := range prefixes {
		key := string(prefix)
		require.False(t, seen[key], "duplicate storage prefix %x", prefix)
		seen[key] = true
	}
}

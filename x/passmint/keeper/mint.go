package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	cerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "github.com/passmint-network/node/x/passmint/types"
)

// UsdMint issues passes against a payment in one of the recognized stable
// denominations. The payment must be an exact positive multiple of the USD
// unit price. It returns the contiguous id range issued.
func (k *keeper) UsdMint(sctx sdk.Context, sender sdk.AccAddress, referral string, payment sdk.Coin) (uint64, uint64, error) {
	params, err := k.GetParams(sctx)
	if err != nil {
		return 0, 0, err
	}

	if !params.RecognizeUSDDenom(payment.Denom) {
		return 0, 0, types.ErrUnrecognizedUSDToken
	}

	qty, ok := quantityFor(payment.Amount, params.UnitPriceUsd)
	if !ok {
		return 0, 0, cerrors.Wrap(types.ErrInvalidAmount, "Invalid USD amount!")
	}

	return k.mint(sctx, params, sender, referral, payment, qty, types.CurrencyLabelUSD)
}

// NativeMint issues passes against a payment in the native denomination.
// The payment must be an exact positive multiple of the native unit price.
// It returns the contiguous id range issued.
func (k *keeper) NativeMint(sctx sdk.Context, sender sdk.AccAddress, referral string, payment sdk.Coin) (uint64, uint64, error) {
	params, err := k.GetParams(sctx)
	if err != nil {
		return 0, 0, err
	}

	if payment.Denom != params.NativeDenom {
		return 0, 0, cerrors.Wrap(types.ErrInvalidAmount, "Invalid Native Token amount!")
	}

	qty, ok := quantityFor(payment.Amount, params.UnitPriceNative)
	if !ok {
		return 0, 0, cerrors.Wrap(types.ErrInvalidAmount, "Invalid Native Token amount!")
	}

	return k.mint(sctx, params, sender, referral, payment, qty, types.NativeCurrencyLabel(params.NativeDenom))
}

// quantityFor derives the pass quantity from a payment amount. Partial
// units are rejected, not truncated, so an amount that is not a positive
// exact multiple of the unit price yields no quantity at all.
func quantityFor(amount sdkmath.Int, unitPrice sdkmath.Int) (uint64, bool) {
	if !amount.IsPositive() {
		return 0, false
	}

	if !amount.Mod(unitPrice).IsZero() {
		return 0, false
	}

	qty := amount.Quo(unitPrice)
	if !qty.IsUint64() {
		return 0, false
	}

	return qty.Uint64(), true
}

// mint performs the actual payment collection and pass issuance.
// It runs on a cache context so a failed bank transfer or store write
// leaves no partial state behind. Only a fully successful mint commits.
func (k *keeper) mint(
	sctx sdk.Context,
	params types.Params,
	sender sdk.AccAddress,
	referral string,
	payment sdk.Coin,
	qty uint64,
	currencyLabel string,
) (uint64, uint64, error) {
	total, err := k.GetTotalIssued(sctx)
	if err != nil {
		return 0, 0, err
	}

	if params.MaxIssuance > 0 && total+qty > params.MaxIssuance {
		return 0, 0, types.ErrMaxIssuanceExceeded.Wrapf("requested %d, %d of %d already issued", qty, total, params.MaxIssuance)
	}

	cctx, writeFn := sctx.CacheContext()

	if err = k.bankKeeper.SendCoinsFromAccountToModule(cctx, sender, types.ModuleName, sdk.NewCoins(payment)); err != nil {
		return 0, 0, err
	}

	owner := sender.String()
	firstID := total + 1
	lastID := total + qty

	for id := firstID; id <= lastID; id++ {
		if err = k.passes.Set(cctx, id, owner); err != nil {
			return 0, 0, err
		}
		if err = k.passesByOwner.Set(cctx, collections.Join(owner, id)); err != nil {
			return 0, 0, err
		}
	}

	balance, err := k.balances.Get(cctx, owner)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return 0, 0, err
	}

	if err = k.balances.Set(cctx, owner, balance+qty); err != nil {
		return 0, 0, err
	}

	if err = k.totalIssued.Set(cctx, lastID); err != nil {
		return 0, 0, err
	}

	err = cctx.EventManager().EmitTypedEvent(&types.EventReferralMint{
		ReferralCode:  referral,
		CurrencyLabel: currencyLabel,
		AmountPaid:    payment.Amount,
		Owner:         owner,
		Quantity:      qty,
		FirstID:       firstID,
	})
	if err != nil {
		return 0, 0, err
	}

	writeFn()

	k.Logger(sctx).Info("minted passes", "owner", owner, "quantity", qty, "first_id", firstID, "payment", payment.String())

	return firstID, lastID, nil
}

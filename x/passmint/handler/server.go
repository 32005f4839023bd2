package handler

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/passmint-network/node/x/passmint/keeper"
	types "github.com/passmint-network/node/x/passmint/types"
)

type msgServer struct {
	passmint keeper.Keeper
}

func NewMsgServerImpl(keeper keeper.Keeper) types.MsgServer {
	return &msgServer{
		passmint: keeper,
	}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) UsdMint(ctx context.Context, msg *types.MsgUsdMint) (*types.MsgUsdMintResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err = msg.Payment.Validate(); err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid payment: %s", err)
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	firstID, lastID, err := ms.passmint.UsdMint(sctx, sender, msg.ReferralCode, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &types.MsgUsdMintResponse{
		FirstID: firstID,
		LastID:  lastID,
	}, nil
}

func (ms msgServer) NativeMint(ctx context.Context, msg *types.MsgNativeMint) (*types.MsgNativeMintResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err = msg.Payment.Validate(); err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid payment: %s", err)
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	firstID, lastID, err := ms.passmint.NativeMint(sctx, sender, msg.ReferralCode, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &types.MsgNativeMintResponse{
		FirstID: firstID,
		LastID:  lastID,
	}, nil
}

func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if ms.passmint.GetAuthority() != msg.Authority {
		return nil, errors.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.passmint.GetAuthority(), msg.Authority)
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := ms.passmint.SetParams(sctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

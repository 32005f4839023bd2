package types

import (
	cerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	MsgTypeUsdMint      = "usd-mint"
	MsgTypeNativeMint   = "native-mint"
	MsgTypeUpdateParams = "update-params"
)

var (
	_ sdk.Msg = &MsgUsdMint{}
	_ sdk.Msg = &MsgNativeMint{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// ValidateBasic does stateless validation. Denom recognition and amount
// shape checks are stateful (they depend on params) and happen in the
// keeper.
func (m MsgUsdMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return cerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err := m.Payment.Validate(); err != nil {
		return cerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid payment: %s", err)
	}

	return nil
}

// GetSigners defines whose signature is required
func (m MsgUsdMint) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{sender}
}

// ValidateBasic does stateless validation
func (m MsgNativeMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return cerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err := m.Payment.Validate(); err != nil {
		return cerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid payment: %s", err)
	}

	return nil
}

// GetSigners defines whose signature is required
func (m MsgNativeMint) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{sender}
}

// ValidateBasic does stateless validation
func (m MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return cerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}

	return m.Params.Validate()
}

// GetSigners defines whose signature is required
func (m MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(m.Authority)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{authority}
}

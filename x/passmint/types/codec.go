package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global x/passmint module codec.
	ModuleCdc = codec.NewAminoCodec(amino) // nolint: staticcheck
)

func init() {
	RegisterLegacyAminoCodec(amino)
}

// RegisterLegacyAminoCodec registers the passmint types on the provided
// LegacyAmino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgUsdMint{}, ModuleName+"/"+MsgTypeUsdMint, nil)
	cdc.RegisterConcrete(&MsgNativeMint{}, ModuleName+"/"+MsgTypeNativeMint, nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, ModuleName+"/"+MsgTypeUpdateParams, nil)
}

// RegisterInterfaces registers the passmint message implementations on the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgUsdMint{},
		&MsgNativeMint{},
		&MsgUpdateParams{},
	)
}

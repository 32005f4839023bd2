package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	pmimports "github.com/passmint-network/node/x/passmint/imports"
	types "github.com/passmint-network/node/x/passmint/types"
)

type Keeper interface {
	StoreKey() storetypes.StoreKey
	Codec() codec.BinaryCodec
	Schema() collections.Schema

	GetParams(sdk.Context) (types.Params, error)
	SetParams(sdk.Context, types.Params) error

	GetTotalIssued(sdk.Context) (uint64, error)
	GetPass(sdk.Context, uint64) (types.Pass, error)
	GetBalanceOf(sdk.Context, sdk.AccAddress) (uint64, error)

	UsdMint(sdk.Context, sdk.AccAddress, string, sdk.Coin) (uint64, uint64, error)
	NativeMint(sdk.Context, sdk.AccAddress, string, sdk.Coin) (uint64, uint64, error)

	InitGenesis(sdk.Context, *types.GenesisState)
	ExportGenesis(sdk.Context) *types.GenesisState

	NewQuerier() Querier
	GetAuthority() string
}

// keeper
//
//	passes are issued against payments held in the module account.
//	ids are assigned sequentially starting from 1, and an issued pass
//	is never reassigned or burned, so totalIssued doubles as the
//	highest assigned id.
type keeper struct {
	cdc  codec.BinaryCodec
	skey *storetypes.KVStoreKey
	ssvc store.KVStoreService

	authority string

	schema        collections.Schema
	params        collections.Item[types.Params]
	totalIssued   collections.Item[uint64]
	passes        collections.Map[uint64, string]
	passesByOwner collections.KeySet[collections.Pair[string, uint64]]
	balances      collections.Map[string, uint64]

	accKeeper  pmimports.AccountKeeper
	bankKeeper pmimports.BankKeeper
}

func NewKeeper(
	cdc codec.BinaryCodec,
	skey *storetypes.KVStoreKey,
	authority string,
	accKeeper pmimports.AccountKeeper,
	bankKeeper pmimports.BankKeeper,
) Keeper {
	ssvc := runtime.NewKVStoreService(skey)
	sb := collections.NewSchemaBuilder(ssvc)

	k := &keeper{
		cdc:           cdc,
		skey:          skey,
		ssvc:          ssvc,
		authority:     authority,
		accKeeper:     accKeeper,
		bankKeeper:    bankKeeper,
		params:        collections.NewItem(sb, ParamsKey, "params", codec.CollValue[types.Params](cdc)),
		totalIssued:   collections.NewItem(sb, TotalIssuedKey, "total_issued", collections.Uint64Value),
		passes:        collections.NewMap(sb, PassesKey, "passes", collections.Uint64Key, collections.StringValue),
		passesByOwner: collections.NewKeySet(sb, PassesByOwnerKey, "passes_by_owner", collections.PairKeyCodec(collections.StringKey, collections.Uint64Key)),
		balances:      collections.NewMap(sb, BalancesKey, "balances", collections.StringKey, collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

// Codec returns keeper codec
func (k *keeper) Codec() codec.BinaryCodec {
	return k.cdc
}

// StoreKey returns store key
func (k *keeper) StoreKey() storetypes.StoreKey {
	return k.skey
}

func (k *keeper) Schema() collections.Schema {
	return k.schema
}

func (k *keeper) NewQuerier() Querier {
	return Querier{k}
}

func (k *keeper) GetAuthority() string {
	return k.authority
}

func (k *keeper) Logger(sctx sdk.Context) log.Logger {
	return sctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k *keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	return k.params.Get(ctx)
}

func (k *keeper) SetParams(ctx sdk.Context, params types.Params) error {
	return k.params.Set(ctx, params)
}

// GetTotalIssued returns the number of passes issued so far. An unset
// counter reads as zero so queries work on a chain that has never minted.
func (k *keeper) GetTotalIssued(ctx sdk.Context) (uint64, error) {
	total, err := k.totalIssued.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return total, nil
}

func (k *keeper) GetPass(ctx sdk.Context, id uint64) (types.Pass, error) {
	owner, err := k.passes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Pass{}, types.ErrPassNotFound.Wrapf("id %d", id)
		}
		return types.Pass{}, err
	}

	return types.Pass{ID: id, Owner: owner}, nil
}

func (k *keeper) GetBalanceOf(ctx sdk.Context, owner sdk.AccAddress) (uint64, error) {
	balance, err := k.balances.Get(ctx, owner.String())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return balance, nil
}

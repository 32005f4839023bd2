package state

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	cmocks "github.com/passmint-network/node/testutil/cosmos/mocks"
	pkeeper "github.com/passmint-network/node/x/passmint/keeper"
	ptypes "github.com/passmint-network/node/x/passmint/types"
)

// TestSuite encapsulates an ephemeral passmint data store for testing.
type TestSuite struct {
	t       testing.TB
	ms      storetypes.CommitMultiStore
	ctx     sdk.Context
	cdc     codec.Codec
	keepers Keepers
}

type Keepers struct {
	Account  *cmocks.AccountKeeper
	Bank     *cmocks.BankKeeper
	Passmint pkeeper.Keeper
}

// SetupTestSuite provides toolkit for accessing stores and keepers
// for data interactions.
func SetupTestSuite(t testing.TB) *TestSuite {
	return SetupTestSuiteWithKeepers(t, Keepers{})
}

func SetupTestSuiteWithKeepers(t testing.TB, keepers Keepers) *TestSuite {
	t.Helper()

	if keepers.Bank == nil {
		// do not set bank expectations during suite setup, each test must
		// set them manually to make sure transfers are tracked correctly
		keepers.Bank = &cmocks.BankKeeper{}
	}

	if keepers.Account == nil {
		akeeper := &cmocks.AccountKeeper{}

		akeeper.
			On("GetModuleAddress", mock.Anything).
			Return(func(moduleName string) sdk.AccAddress {
				return authtypes.NewModuleAddress(moduleName)
			})

		keepers.Account = akeeper
	}

	cdc := codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())

	skey := storetypes.NewKVStoreKey(ptypes.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), storemetrics.NewNoOpMetrics())
	ms.MountStoreWithDB(skey, storetypes.StoreTypeIAVL, db)

	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{}, true, log.NewTestLogger(t))

	if keepers.Passmint == nil {
		authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
		keepers.Passmint = pkeeper.NewKeeper(cdc, skey, authority, keepers.Account, keepers.Bank)
		keepers.Passmint.InitGenesis(ctx, ptypes.DefaultGenesisState())
	}

	return &TestSuite{
		t:       t,
		ms:      ms,
		ctx:     ctx,
		cdc:     cdc,
		keepers: keepers,
	}
}

func (ts *TestSuite) PrepareMocks(fn func(ts *TestSuite)) {
	fn(ts)
}

// SetBlockHeight provides arbitrarily setting the chain's block height.
func (ts *TestSuite) SetBlockHeight(height int64) {
	ts.ctx = ts.ctx.WithBlockHeight(height)
}

// Store provides access to the underlying KVStore
func (ts *TestSuite) Store() storetypes.CommitMultiStore {
	return ts.ms
}

// Context of the current mempool
func (ts *TestSuite) Context() sdk.Context {
	return ts.ctx
}

func (ts *TestSuite) Codec() codec.Codec {
	return ts.cdc
}

// PassmintKeeper key store
func (ts *TestSuite) PassmintKeeper() pkeeper.Keeper {
	return ts.keepers.Passmint
}

// BankKeeper mock
func (ts *TestSuite) BankKeeper() *cmocks.BankKeeper {
	return ts.keepers.Bank
}

// AccountKeeper mock
func (ts *TestSuite) AccountKeeper() *cmocks.AccountKeeper {
	return ts.keepers.Account
}

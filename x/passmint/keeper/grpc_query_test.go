package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkquery "github.com/cosmos/cosmos-sdk/types/query"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/passmint-network/node/testutil"
	"github.com/passmint-network/node/testutil/state"
	"github.com/passmint-network/node/x/passmint/keeper"
	types "github.com/passmint-network/node/x/passmint/types"
)

func setupQuerier(t testing.TB) (*state.TestSuite, sdk.Context, keeper.Querier) {
	t.Helper()
	ssuite := state.SetupTestSuite(t)
	return ssuite, ssuite.Context(), ssuite.PassmintKeeper().NewQuerier()
}

func TestQueryParams(t *testing.T) {
	_, ctx, querier := setupQuerier(t)

	res, err := querier.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), res.Params)
}

func TestQueryTotalIssued(t *testing.T) {
	ssuite, ctx, querier := setupQuerier(t)

	res, err := querier.TotalIssued(ctx, &types.QueryTotalIssuedRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.TotalIssued)

	ssuite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, mock.Anything, types.ModuleName, mock.Anything).
		Return(nil)

	_, _, err = ssuite.PassmintKeeper().UsdMint(ctx, testutil.AccAddress(t), "", usd(310000000))
	require.NoError(t, err)

	res, err = querier.TotalIssued(ctx, &types.QueryTotalIssuedRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.TotalIssued)
}

func TestQueryPass(t *testing.T) {
	ssuite, ctx, querier := setupQuerier(t)

	_, err := querier.Pass(ctx, &types.QueryPassRequest{ID: 1})
	require.ErrorIs(t, err, types.ErrPassNotFound)

	owner := testutil.AccAddress(t)

	ssuite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, owner, types.ModuleName, mock.Anything).
		Return(nil)

	_, _, err = ssuite.PassmintKeeper().UsdMint(ctx, owner, "", usd(155000000))
	require.NoError(t, err)

	res, err := querier.Pass(ctx, &types.QueryPassRequest{ID: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Pass.ID)
	require.Equal(t, owner.String(), res.Pass.Owner)
}

func TestQueryPasses(t *testing.T) {
	ssuite, ctx, querier := setupQuerier(t)

	alice := testutil.AccAddress(t)
	bob := testutil.AccAddress(t)

	ssuite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, mock.Anything, types.ModuleName, mock.Anything).
		Return(nil)

	// alice owns ids 1-3, bob owns id 4
	_, _, err := ssuite.PassmintKeeper().UsdMint(ctx, alice, "", usd(465000000))
	require.NoError(t, err)

	_, _, err = ssuite.PassmintKeeper().UsdMint(ctx, bob, "", usd(155000000))
	require.NoError(t, err)

	res, err := querier.Passes(ctx, &types.QueryPassesRequest{})
	require.NoError(t, err)
	require.Len(t, res.Passes, 4)
	require.Equal(t, uint64(4), res.Pagination.Total)

	res, err = querier.Passes(ctx, &types.QueryPassesRequest{Owner: alice.String()})
	require.NoError(t, err)
	require.Len(t, res.Passes, 3)
	for _, pass := range res.Passes {
		require.Equal(t, alice.String(), pass.Owner)
	}

	res, err = querier.Passes(ctx, &types.QueryPassesRequest{
		Pagination: &sdkquery.PageRequest{Limit: 2, Offset: 1},
	})
	require.NoError(t, err)
	require.Len(t, res.Passes, 2)
	require.Equal(t, uint64(2), res.Passes[0].ID)
	require.Equal(t, uint64(3), res.Passes[1].ID)

	// once the page fills the walk stops, so Total reflects entries
	// visited rather than all 4 stored passes
	res, err = querier.Passes(ctx, &types.QueryPassesRequest{
		Pagination: &sdkquery.PageRequest{Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, res.Passes, 2)
	require.Equal(t, uint64(3), res.Pagination.Total)
}

func TestQueryPassesInvalidOwner(t *testing.T) {
	_, ctx, querier := setupQuerier(t)

	_, err := querier.Passes(ctx, &types.QueryPassesRequest{Owner: "notanaddress"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryBalanceOf(t *testing.T) {
	ssuite, ctx, querier := setupQuerier(t)

	owner := testutil.AccAddress(t)

	res, err := querier.BalanceOf(ctx, &types.QueryBalanceOfRequest{Owner: owner.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.Balance)

	ssuite.BankKeeper().
		On("SendCoinsFromAccountToModule", mock.Anything, owner, types.ModuleName, mock.Anything).
		Return(nil)

	_, _, err = ssuite.PassmintKeeper().UsdMint(ctx, owner, "", usd(310000000))
	require.NoError(t, err)

	res, err = querier.BalanceOf(ctx, &types.QueryBalanceOfRequest{Owner: owner.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.Balance)

	_, err = querier.BalanceOf(ctx, &types.QueryBalanceOfRequest{Owner: "notanaddress"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryCustody(t *testing.T) {
	ssuite, ctx, querier := setupQuerier(t)

	macc := authtypes.NewModuleAddress(types.ModuleName)
	funds := sdk.NewCoins(
		sdk.NewCoin("uusdc", sdkmath.NewInt(465000000)),
		sdk.NewCoin(types.DefaultNativeDenom, sdkmath.NewInt(1500000)),
	)

	ssuite.BankKeeper().
		On("GetAllBalances", mock.Anything, macc).
		Return(funds)

	res, err := querier.Custody(ctx, &types.QueryCustodyRequest{})
	require.NoError(t, err)
	require.Equal(t, funds, res.Funds)
}

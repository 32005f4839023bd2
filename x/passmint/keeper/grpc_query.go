package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkquery "github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	types "github.com/passmint-network/node/x/passmint/types"
)

type Querier struct {
	*keeper
}

var _ types.QueryServer = Querier{}

func (qs Querier) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	sctx := sdk.UnwrapSDKContext(ctx)

	params, err := qs.GetParams(sctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

func (qs Querier) TotalIssued(ctx context.Context, _ *types.QueryTotalIssuedRequest) (*types.QueryTotalIssuedResponse, error) {
	sctx := sdk.UnwrapSDKContext(ctx)

	total, err := qs.GetTotalIssued(sctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryTotalIssuedResponse{TotalIssued: total}, nil
}

func (qs Querier) Pass(ctx context.Context, req *types.QueryPassRequest) (*types.QueryPassResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	pass, err := qs.GetPass(sctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &types.QueryPassResponse{Pass: pass}, nil
}

func (qs Querier) Passes(ctx context.Context, req *types.QueryPassesRequest) (*types.QueryPassesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	limit := req.Pagination.GetLimit()
	if limit == 0 {
		limit = sdkquery.DefaultLimit
	}
	offset := req.Pagination.GetOffset()

	var passes []types.Pass
	total := uint64(0)
	skipped := uint64(0)

	// the walk stops once the page fills, so total counts entries
	// visited up to that point, not the full result set
	collect := func(id uint64, owner string) bool {
		total++

		if skipped < offset {
			skipped++
			return false
		}

		if uint64(len(passes)) >= limit {
			return true
		}

		passes = append(passes, types.Pass{ID: id, Owner: owner})

		return false
	}

	if req.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(req.Owner); err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid owner address")
		}

		rng := collections.NewPrefixedPairRange[string, uint64](req.Owner)
		err := qs.passesByOwner.Walk(sctx, rng, func(key collections.Pair[string, uint64]) (bool, error) {
			return collect(key.K2(), key.K1()), nil
		})
		if err != nil {
			sctx.Logger().Error("iterating passes by owner", "error", err)
			return nil, status.Error(codes.Internal, "failed to query passes")
		}
	} else {
		err := qs.passes.Walk(sctx, nil, func(id uint64, owner string) (bool, error) {
			return collect(id, owner), nil
		})
		if err != nil {
			sctx.Logger().Error("iterating passes", "error", err)
			return nil, status.Error(codes.Internal, "failed to query passes")
		}
	}

	return &types.QueryPassesResponse{
		Passes: passes,
		Pagination: &sdkquery.PageResponse{
			Total: total,
		},
	}, nil
}

func (qs Querier) BalanceOf(ctx context.Context, req *types.QueryBalanceOfRequest) (*types.QueryBalanceOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid owner address")
	}

	balance, err := qs.GetBalanceOf(sctx, owner)
	if err != nil {
		return nil, err
	}

	return &types.QueryBalanceOfResponse{Balance: balance}, nil
}

func (qs Querier) Custody(ctx context.Context, _ *types.QueryCustodyRequest) (*types.QueryCustodyResponse, error) {
	sctx := sdk.UnwrapSDKContext(ctx)

	macc := qs.accKeeper.GetModuleAddress(types.ModuleName)

	return &types.QueryCustodyResponse{
		Funds: qs.bankKeeper.GetAllBalances(sctx, macc),
	}, nil
}

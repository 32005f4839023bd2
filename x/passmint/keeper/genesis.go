package keeper

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "github.com/passmint-network/node/x/passmint/types"
)

// InitGenesis initializes module state from the provided genesis state
func (k *keeper) InitGenesis(sctx sdk.Context, data *types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(err)
	}

	if err := k.SetParams(sctx, data.Params); err != nil {
		panic(err)
	}

	if err := k.totalIssued.Set(sctx, uint64(len(data.Passes))); err != nil {
		panic(err)
	}

	counts := make(map[string]uint64)

	for _, pass := range data.Passes {
		if err := k.passes.Set(sctx, pass.ID, pass.Owner); err != nil {
			panic(err)
		}

		if err := k.passesByOwner.Set(sctx, collections.Join(pass.Owner, pass.ID)); err != nil {
			panic(err)
		}

		counts[pass.Owner]++
		if err := k.balances.Set(sctx, pass.Owner, counts[pass.Owner]); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the current module state for the passmint module
func (k *keeper) ExportGenesis(sctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(sctx)
	if err != nil {
		panic(err)
	}

	var passes []types.Pass
	err = k.passes.Walk(sctx, nil, func(id uint64, owner string) (bool, error) {
		passes = append(passes, types.Pass{ID: id, Owner: owner})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params: params,
		Passes: passes,
	}
}

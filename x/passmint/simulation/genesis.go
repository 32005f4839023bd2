package simulation

import (
	"github.com/cosmos/cosmos-sdk/types/module"

	types "github.com/passmint-network/node/x/passmint/types"
)

// RandomizedGenState generates a random GenesisState for passmint
func RandomizedGenState(simState *module.SimulationState) {
	passmintGenesis := &types.GenesisState{
		Params: types.DefaultParams(),
	}

	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(passmintGenesis)
}

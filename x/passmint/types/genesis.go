package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesisState returns the default genesis state of the module
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate checks genesis consistency. Pass ids must be exactly the
// contiguous range 1..len(passes), in order, each with a valid owner; the
// issuance cap, when enabled, must not already be exceeded.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	for idx, pass := range gs.Passes {
		expected := uint64(idx) + 1 // nolint: gosec
		if pass.ID != expected {
			return fmt.Errorf("%s: non-contiguous pass id %d at position %d, expected %d", ModuleName, pass.ID, idx, expected)
		}

		if _, err := sdk.AccAddressFromBech32(pass.Owner); err != nil {
			return fmt.Errorf("%s: pass %d has invalid owner %q: %w", ModuleName, pass.ID, pass.Owner, err)
		}
	}

	if gs.Params.MaxIssuance > 0 && uint64(len(gs.Passes)) > gs.Params.MaxIssuance {
		return fmt.Errorf("%s: genesis passes (%d) exceed max issuance (%d)", ModuleName, len(gs.Passes), gs.Params.MaxIssuance)
	}

	return nil
}

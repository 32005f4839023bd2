package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/passmint-network/node/testutil"
	"github.com/passmint-network/node/x/passmint/types"
)

func TestGenesisValidateDefault(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())
}

func TestGenesisValidatePasses(t *testing.T) {
	alice := testutil.AccAddress(t).String()
	bob := testutil.AccAddress(t).String()

	gs := types.DefaultGenesisState()
	gs.Passes = []types.Pass{
		{ID: 1, Owner: alice},
		{ID: 2, Owner: bob},
		{ID: 3, Owner: alice},
	}
	require.NoError(t, gs.Validate())

	// ids must start at 1
	gs.Passes = []types.Pass{
		{ID: 2, Owner: alice},
	}
	require.Error(t, gs.Validate())

	// ids must be contiguous
	gs.Passes = []types.Pass{
		{ID: 1, Owner: alice},
		{ID: 3, Owner: bob},
	}
	require.Error(t, gs.Validate())

	gs.Passes = []types.Pass{
		{ID: 1, Owner: "notanaddress"},
	}
	require.Error(t, gs.Validate())
}

func TestGenesisValidateMaxIssuance(t *testing.T) {
	alice := testutil.AccAddress(t).String()

	gs := types.DefaultGenesisState()
	gs.Params.MaxIssuance = 2
	gs.Passes = []types.Pass{
		{ID: 1, Owner: alice},
		{ID: 2, Owner: alice},
		{ID: 3, Owner: alice},
	}
	require.Error(t, gs.Validate())

	gs.Params.MaxIssuance = 0
	require.NoError(t, gs.Validate())
}

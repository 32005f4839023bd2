package testutil

import (
	"testing"

	"github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func Keyring(t testing.TB, cdc codec.Codec) keyring.Keyring {
	t.Helper()
	obj := keyring.NewInMemory(cdc)
	return obj
}

// AccAddress provides an Account's Address bytes from a ed25519 generated
// private key.
func AccAddress(t testing.TB) sdk.AccAddress {
	t.Helper()
	privKey := ed25519.GenPrivKey()
	return sdk.AccAddress(privKey.PubKey().Address())
}

func Key(t testing.TB) ed25519.PrivKey {
	t.Helper()
	return ed25519.GenPrivKey()
}

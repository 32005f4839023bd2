package keeper

import (
	"cosmossdk.io/collections"
)

var (
	TotalIssuedKey   = collections.NewPrefix([]byte{0x01, 0x00})
	PassesKey        = collections.NewPrefix([]byte{0x02, 0x00})
	PassesByOwnerKey = collections.NewPrefix([]byte{0x02, 0x01})
	BalancesKey      = collections.NewPrefix([]byte{0x03, 0x00})
	ParamsKey        = collections.NewPrefix([]byte{0x09, 0x00}) // key for passmint module params
)

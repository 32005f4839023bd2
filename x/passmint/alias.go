package passmint

import (
	types "github.com/passmint-network/node/x/passmint/types"
)

const (
	// StoreKey represents storekey of passmint module
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)

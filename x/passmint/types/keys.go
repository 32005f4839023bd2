package types

const (
	// ModuleName is the name of the passmint module
	ModuleName = "passmint"

	// StoreKey is the store key for the passmint module
	StoreKey = ModuleName

	// RouterKey is the message route for the passmint module
	RouterKey = ModuleName
)

package types

import (
	cerrors "cosmossdk.io/errors"
)

const (
	errUnrecognizedUSDToken uint32 = iota + 1
	errInvalidAmount
	errMaxIssuanceExceeded
	errPassNotFound
)

var (
	// ErrUnrecognizedUSDToken is returned when the payment denom matches
	// neither of the configured USD token denoms.
	ErrUnrecognizedUSDToken = cerrors.Register(ModuleName, errUnrecognizedUSDToken, "Unrecognized USD token contract!")

	// ErrInvalidAmount is returned when the paid amount is zero or not an
	// exact multiple of the relevant unit price.
	ErrInvalidAmount = cerrors.Register(ModuleName, errInvalidAmount, "invalid payment amount")

	// ErrMaxIssuanceExceeded is returned when a mint would push total
	// issuance past the configured cap.
	ErrMaxIssuanceExceeded = cerrors.Register(ModuleName, errMaxIssuanceExceeded, "max issuance exceeded")

	// ErrPassNotFound is returned when querying a pass id that has not
	// been issued.
	ErrPassNotFound = cerrors.Register(ModuleName, errPassNotFound, "pass not found")
)

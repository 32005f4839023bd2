package testutil

import (
	"testing"

	"cosmossdk.io/log"
)

func Logger(t testing.TB) log.Logger {
	t.Helper()
	return log.NewTestLogger(t)
}

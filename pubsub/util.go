package pubsub

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const defaultSettleDelay = time.Millisecond * 6

// AfterSettle returns a channel that fires once bus goroutines spawned
// by the test have had time to start. Override the delay with
// PASSMINT_TEST_SETTLE_DELAY on slow machines.
func AfterSettle(t *testing.T) <-chan time.Time {
	return time.After(settleDelay(t))
}

// SleepForSettle blocks the test for the settle delay.
func SleepForSettle(t *testing.T) {
	time.Sleep(settleDelay(t))
}

func settleDelay(t *testing.T) time.Duration {
	if val := os.Getenv("PASSMINT_TEST_SETTLE_DELAY"); val != "" {
		d, err := time.ParseDuration(val)
		require.NoError(t, err)

		return d
	}

	return defaultSettleDelay
}

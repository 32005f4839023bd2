package pubsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/passmint-network/node/pubsub"
	"github.com/passmint-network/node/testutil"
	types "github.com/passmint-network/node/x/passmint/types"
)

func newEvent(t *testing.T, firstID uint64) types.EventReferralMint {
	t.Helper()

	return types.EventReferralMint{
		ReferralCode:  testutil.ReferralCode(t),
		CurrencyLabel: types.CurrencyLabelUSD,
		AmountPaid:    sdkmath.NewInt(155000000),
		Owner:         testutil.AccAddress(t).String(),
		Quantity:      1,
		FirstID:       firstID,
	}
}

func TestBus(t *testing.T) {
	bus := pubsub.NewBus()
	defer bus.Close()

	ev := newEvent(t, 1)

	assert.NoError(t, bus.Publish(ev))

	sub1, err := bus.Subscribe()
	require.NoError(t, err)

	sub2, err := bus.Subscribe()
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ev))

	select {
	case got := <-sub1.Events():
		assert.Equal(t, ev, got)
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out")
	}

	select {
	case got := <-sub2.Events():
		assert.Equal(t, ev, got)
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out")
	}

	sub2.Close()

	select {
	case <-sub2.Done():
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out")
	}

	require.NoError(t, bus.Publish(ev))

	select {
	case got := <-sub1.Events():
		assert.Equal(t, ev, got)
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out")
	}

	select {
	case <-sub2.Events():
		require.Fail(t, "spurious event")
	case <-pubsub.AfterSettle(t):
	}

	bus.Close()

	select {
	case <-sub1.Done():
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out")
	}

	assert.Equal(t, pubsub.ErrNotRunning, bus.Publish(ev))
}

func TestClone(t *testing.T) {
	bus := pubsub.NewBus()
	defer bus.Close()

	ev1 := newEvent(t, 1)
	ev2 := newEvent(t, 2)

	assert.NoError(t, bus.Publish(ev1))

	sub1, err := bus.Subscribe()
	require.NoError(t, err)

	select {
	case <-sub1.Events():
		require.Fail(t, "spurious event")
	case <-pubsub.AfterSettle(t):
	}

	assert.NoError(t, bus.Publish(ev1))
	assert.NoError(t, bus.Publish(ev2))

	// allow event propagation
	pubsub.SleepForSettle(t)

	// clone subscription
	sub2, err := sub1.Clone()
	require.NoError(t, err)

	// both subscriptions should receive both events

	for i, pev := range []pubsub.Event{ev1, ev2} {
		select {
		case ev := <-sub1.Events():
			assert.Equal(t, pev, ev, "sub1 event %v", i+1)
		case <-pubsub.AfterSettle(t):
			require.Fail(t, "timeout sub1 event %v", i+1)
		}

		select {
		case ev := <-sub2.Events():
			assert.Equal(t, pev, ev, "sub2 event %v", i+1)
		case <-pubsub.AfterSettle(t):
			require.Fail(t, "timeout sub2 event %v", i+1)
		}
	}

	// sub1 should close sub2
	sub1.Close()

	select {
	case <-sub2.Done():
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out closing sub2")
	}

	select {
	case <-sub1.Done():
	case <-pubsub.AfterSettle(t):
		require.Fail(t, "time out closing sub1")
	}
}

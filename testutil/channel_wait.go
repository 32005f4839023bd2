package testutil

import (
	"testing"
	"time"
)

func ChannelWaitForValueUpTo[T any](t *testing.T, waitOn <-chan T, waitFor time.Duration) T {
	t.Helper()

	select {
	case val, ok := <-waitOn:
		if !ok {
			t.Fatal("channel has been closed")
		}
		return val
	case <-time.After(waitFor):
		t.Fatalf("no message after waiting %v", waitFor)
	}

	var zero T
	return zero
}

func ChannelWaitForValue[T any](t *testing.T, waitOn <-chan T) T {
	t.Helper()

	const waitForDefault = 10 * time.Second
	return ChannelWaitForValueUpTo(t, waitOn, waitForDefault)
}

func ChannelWaitForClose[T any](t *testing.T, waitOn <-chan T) {
	t.Helper()

	const waitForDefault = 10 * time.Second

	select {
	case _, ok := <-waitOn:
		if !ok {
			return
		}
	case <-time.After(waitForDefault):
		t.Fatalf("channel not closed after waiting %v", waitForDefault)
	}
}

package testutil

import (
	"fmt"
	"math/rand"
	"testing"
)

const CoinDenom = "upass"

// Name generates a random name with the given prefix
func Name(_ testing.TB, prefix string) string {
	return fmt.Sprintf("%s-%v", prefix, rand.Uint64()) // nolint: gosec
}

// ReferralCode generates a random referral code for simulating mints.
func ReferralCode(t testing.TB) string {
	t.Helper()
	return Name(t, "ref")
}

func RandRangeInt(min, max int) int {
	return rand.Intn(max-min) + min // nolint: gosec
}

func RandRangeUint64(min, max uint64) uint64 {
	val := rand.Uint64() // nolint: gosec
	val %= max - min
	val += min
	return val
}

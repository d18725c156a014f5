package tachyon

import (
	"crypto/subtle"
	"fmt"
)

// Verify reports whether data hashes (domain=0, seed=0, no key) to want,
// using a constant-time comparison so matching and mismatching inputs are
// statistically indistinguishable in latency (spec §5, §8 property 9).
func Verify(data []byte, want [Size]byte) bool {
	got := Hash(data)
	return subtle.ConstantTimeCompare(got[:], want[:]) == 1
}

// VerifyMAC reports whether data authenticates to want under key (domain
// =DomainMessageAuth, seed=0), constant-time.
func VerifyMAC(data, key []byte, want [Size]byte) (bool, error) {
	got, err := HashKeyed(data, key)
	if err != nil {
		return false, fmt.Errorf("tachyon: VerifyMAC: %w", err)
	}
	return subtle.ConstantTimeCompare(got[:], want[:]) == 1, nil
}

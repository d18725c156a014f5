// Package tachyon implements the Tachyon 256-bit keyed/seeded/domain-
// separated hash function: wide parallel AES-round permutations with
// Davies-Meyer feed-forward, a CLMUL hardening stage, and a bitmap-stack
// Merkle tree over large inputs.
package tachyon

import (
	"fmt"

	"github.com/byt3forg3/tachyon/internal/core"
)

// Size is the digest length in bytes.
const Size = 32

// Domain tags select the finalization's domain-separation constant.
// Generic/FileChecksum/KeyDerivation/MessageAuth/DatabaseIndex/
// ContentAddressed are named reserved values (the C binding's
// TACHYON_DOMAIN_* constants); callers may also supply any other 64-bit
// value via HashWithDomain as long as it does not fall in the range
// ReservedDomainMask marks off for the Merkle driver's own internal tags
// (spec §3).
type Domain uint64

// ReservedDomainMask is the high-32-bits pattern the Merkle tree driver
// reserves for its own internal leaf/node domain tags (spec §3,
// internal/core.DomainReservedMask); a Domain value with
// d&ReservedDomainMask == ReservedDomainMask is reserved and should not be
// passed to HashWithDomain/HashWithParams/streaming's WithDomain.
const ReservedDomainMask Domain = 0xFFFFFFFF00000000

const (
	DomainGeneric          Domain = 0
	DomainFileChecksum     Domain = 1
	DomainKeyDerivation    Domain = 2
	DomainMessageAuth      Domain = 3
	DomainDatabaseIndex    Domain = 4
	DomainContentAddressed Domain = 5
)

// Hash computes the plain digest of data: domain=0, seed=0, no key.
func Hash(data []byte) [Size]byte {
	var out [Size]byte
	_ = core.OneShot(&out, data, uint64(DomainGeneric), 0, nil)
	return out
}

// HashSeeded computes the digest of data under a 64-bit seed: domain=0,
// no key.
func HashSeeded(data []byte, seed uint64) [Size]byte {
	var out [Size]byte
	_ = core.OneShot(&out, data, uint64(DomainGeneric), seed, nil)
	return out
}

// HashWithDomain computes the digest of data tagged with domain: seed=0,
// no key.
func HashWithDomain(data []byte, domain Domain) [Size]byte {
	var out [Size]byte
	_ = core.OneShot(&out, data, uint64(domain), 0, nil)
	return out
}

// HashWithParams computes the digest of data under an explicit domain and
// seed, with no key — the general case the convenience entries above each
// fix one parameter of.
func HashWithParams(data []byte, domain Domain, seed uint64) [Size]byte {
	var out [Size]byte
	_ = core.OneShot(&out, data, uint64(domain), seed, nil)
	return out
}

// HashKeyed computes a keyed MAC of data: domain=DomainMessageAuth, seed=0,
// key must be exactly 32 bytes.
func HashKeyed(data, key []byte) ([Size]byte, error) {
	var out [Size]byte
	if len(key) != 32 {
		return out, fmt.Errorf("tachyon: HashKeyed: %w", ErrKeyLength)
	}
	_ = core.OneShot(&out, data, uint64(DomainMessageAuth), 0, key)
	return out, nil
}

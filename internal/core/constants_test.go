package core

import "testing"

// TestRoundKeyChainRegenerable is testable property 7 (spec §8): an
// independent recomputation of RKChain from (Phi,Phi) must match the
// hardcoded table.
func TestRoundKeyChainRegenerable(t *testing.T) {
	got := RecomputeRoundKeyChain()
	for i := range RKChain {
		if got[i] != RKChain[i] {
			t.Fatalf("RKChain[%d] mismatch: got %+v, want %+v", i, got[i], RKChain[i])
		}
	}
}

// TestShortInitRegenerable is testable property 8 (spec §8): running the
// scalar kernel's init with seed=0, key=absent must match ShortInit on
// lane 0, vecs 0..3.
func TestShortInitRegenerable(t *testing.T) {
	got := RecomputeShortInit()
	for i := range ShortInit {
		if got[i] != ShortInit[i] {
			t.Fatalf("ShortInit[%d] mismatch: got %+v, want %+v", i, got[i], ShortInit[i])
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	v := Vec128{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	b := v.Bytes()
	got := VectorFromBytes(b)
	if got != v {
		t.Fatalf("vector round-trip mismatch: got %+v, want %+v", got, v)
	}
}

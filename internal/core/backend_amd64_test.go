//go:build amd64

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestThreeBackendsAgree is testable property 1 (spec §8): scalar, AES-NI,
// and AVX-512 backends must produce bitwise-identical output.
func TestThreeBackendsAgree(t *testing.T) {
	scalar := ScalarBackend{}
	aesni := AESNIBackend{}
	avx512 := AVX512Backend{}

	vectors := []struct{ a, k Vec128 }{
		{Vec128{0, 0}, Vec128{0, 0}},
		{Splat(Phi), Splat(Phi)},
		{Vec128{Lo: 0xdeadbeefcafebabe, Hi: 0x0123456789abcdef}, Vec128{Lo: LaneOffsets[0], Hi: LaneOffsets[31]}},
		{Vec128{Lo: ^uint64(0), Hi: ^uint64(0)}, Vec128{Lo: 1, Hi: 2}},
	}

	for _, v := range vectors {
		want := scalar.AESRound(v.a, v.k)
		require.Equal(t, want, aesni.AESRound(v.a, v.k))
		require.Equal(t, want, avx512.AESRound(v.a, v.k))
	}

	for _, sel := range []CLMULSelector{SelLoLo, SelLoHi, SelHiLo, SelHiHi} {
		a := Vec128{Lo: 0x1111111111111111, Hi: 0x2222222222222222}
		b := Vec128{Lo: 0x3333333333333333, Hi: 0x4444444444444444}
		want := scalar.CLMUL(a, b, sel)
		require.Equal(t, want, aesni.CLMUL(a, b, sel))
		require.Equal(t, want, avx512.CLMUL(a, b, sel))
	}
}

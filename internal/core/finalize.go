package core

// absorbRemainder consumes 64-byte chunks of the tail of input that did not
// fill a full 512-byte block, one per lane, per spec §4.4 step 1. It
// returns the still-unconsumed tail (strictly fewer than 64 bytes).
//
// Deliberately, this loop does NOT apply the full 8-lane rotateLanesLeft
// that the compression path uses; only a within-4-vector rotate runs each
// round. This matches the canonical scalar reference (spec §9 Design
// Notes).
func absorbRemainder(b Backend, k *KernelState, remainder []byte) []byte {
	for c := 0; 4*c < 32 && len(remainder) >= 64; c++ {
		base := 4 * c
		chunk := remainder[:64]
		remainder = remainder[64:]

		var d [4]Vec128
		wk := Vec128{Whitening0, Whitening1}
		for j := 0; j < 4; j++ {
			d[j] = b.AESRound(LoadVector(chunk[j*16:j*16+16]), wk)
		}

		var saves [4]Vec128
		for j := 0; j < 4; j++ {
			saves[j] = k.V[base+j]
		}

		for r := 0; r < 10; r++ {
			var next [4]Vec128
			for j := 0; j < 4; j++ {
				mix := d[j].Add(RKChain[r]).Add(Splat(LaneOffsets[base+j]))
				next[j] = b.AESRound(k.V[base+j], mix)
			}
			for j := 0; j < 4; j++ {
				k.V[base+j] = next[j]
			}

			var dNext [4]Vec128
			for kk := 0; kk < 4; kk++ {
				dNext[kk] = d[kk].XOR(k.V[base+(kk+1)%4])
			}
			d = dNext

			var rotated [4]Vec128
			for j := 0; j < 4; j++ {
				rotated[j] = k.V[base+(j+1)%4]
			}
			for j := 0; j < 4; j++ {
				k.V[base+j] = rotated[j]
			}
		}

		for j := 0; j < 4; j++ {
			k.V[base+j] = k.V[base+j].XOR(saves[j])
		}
	}
	return remainder
}

// padBlock builds the 64-byte padded tail (leftover bytes, a single 0x80,
// zero-padding) and pre-whitens it into 4 vectors.
func padBlock(b Backend, leftover []byte) [4]Vec128 {
	var block [64]byte
	n := copy(block[:], leftover)
	block[n] = 0x80

	var d [4]Vec128
	wk := Vec128{Whitening0, Whitening1}
	for j := 0; j < 4; j++ {
		d[j] = b.AESRound(LoadVector(block[j*16:j*16+16]), wk)
	}
	return d
}

// treeMerge folds the 32-vector state down to 4 vectors (state[0..3]) in
// three AES-round levels (spec §4.4 step 3).
func treeMerge(b Backend, v *[32]Vec128) {
	m0 := Vec128{C[5], C[5]}
	m1 := Vec128{C[6], C[6]}
	m2 := Vec128{C[7], C[7]}

	for i := 0; i < 16; i++ {
		v[i] = b.AESRound(v[i], v[i+16].XOR(m0))
		v[i] = b.AESRound(v[i], v[i].XOR(m0))
	}
	for i := 0; i < 8; i++ {
		v[i] = b.AESRound(v[i], v[i+8].XOR(m1))
		v[i] = b.AESRound(v[i], v[i].XOR(m1))
	}
	for i := 0; i < 4; i++ {
		v[i] = b.AESRound(v[i], v[i+4].XOR(m2))
		v[i] = b.AESRound(v[i], v[i].XOR(m2))
	}
}

// clmulHarden applies the CLMUL hardening stage of spec §4.4 step 4 to
// state[0..3].
func clmulHarden(b Backend, v *[32]Vec128) {
	kc := Vec128{CLMULConstant, CLMULConstant2}
	for i := 0; i < 4; i++ {
		cl1 := b.CLMUL(v[i], kc, SelLoLo).XOR(b.CLMUL(v[i], kc, SelHiHi))
		mid := b.AESRound(v[i], cl1)
		cl2 := b.CLMUL(mid, mid, SelLoHi)
		v[i] = b.AESRound(v[i], cl1.XOR(cl2))
	}
}

// finalBlock injects the padded tail and domain/length metadata into
// state[0..3] over 10 AES rounds (spec §4.4 step 5).
func finalBlock(b Backend, v *[32]Vec128, dPad [4]Vec128, domain, length uint64) {
	var saves [4]Vec128
	copy(saves[:], v[0:4])

	meta := [4]Vec128{
		{domain ^ length, Phi},
		{length, domain},
		{Phi, length},
		{domain, Phi},
	}

	for i := 0; i < 4; i++ {
		v[i] = v[i].XOR(dPad[i]).XOR(meta[i])
	}

	d := dPad
	for r := 0; r < 10; r++ {
		var next [4]Vec128
		for i := 0; i < 4; i++ {
			next[i] = b.AESRound(v[i], d[i].Add(RKChain[r]))
		}
		for i := 0; i < 4; i++ {
			v[i] = next[(i+1)%4]
		}
		if r%2 == 1 {
			for k := 0; k < 4; k++ {
				d[k] = d[k].XOR(v[k])
			}
		}
	}

	for i := 0; i < 4; i++ {
		v[i] = v[i].XOR(saves[i])
	}
}

// keyPattern lists, per re-absorption round, which of k0/k1 (index 0 or 1)
// feeds each of the four AES rounds (spec §4.4 step 6).
var keyPattern = [4][4]int{
	{0, 1, 1, 0},
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
}

// keyReabsorb re-mixes the 32-byte key into state[0..3], only when a key
// is present (spec §4.4 step 6).
func keyReabsorb(b Backend, v *[32]Vec128, key []byte) {
	if len(key) != 32 {
		return
	}
	k := [2]Vec128{LoadVector(key[0:16]), LoadVector(key[16:32])}
	for _, round := range keyPattern {
		for j := 0; j < 4; j++ {
			v[j] = b.AESRound(v[j], k[round[j]])
		}
	}
}

// laneReduce collapses state[0..3] to the final 32-byte digest (spec §4.4
// step 7).
func laneReduce(b Backend, v *[32]Vec128) [32]byte {
	zero := Vec128{}
	m0 := Vec128{C[5], C[5]}
	m1 := Vec128{C[6], C[6]}
	m2 := Vec128{C[7], C[7]}

	var a [4]Vec128
	for i := 0; i < 4; i++ {
		a[i] = b.AESRound(v[i], v[i])
	}

	bb := [4]Vec128{
		b.AESRound(a[0], a[2]),
		b.AESRound(a[1], a[3]),
		b.AESRound(a[2], a[0]),
		b.AESRound(a[3], a[1]),
	}

	c := [4]Vec128{
		b.AESRound(bb[0], bb[1].XOR(zero)),
		b.AESRound(bb[1], bb[0].XOR(m2)),
		b.AESRound(bb[2], bb[3].XOR(m1)),
		b.AESRound(bb[3], bb[2].XOR(m0)),
	}

	dd := [4]Vec128{
		b.AESRound(c[0], c[2]),
		b.AESRound(c[1], c[3]),
		b.AESRound(c[2], c[0]),
		b.AESRound(c[3], c[1]),
	}

	e := [4]Vec128{
		b.AESRound(dd[0], dd[1].XOR(zero)),
		b.AESRound(dd[1], dd[0].XOR(m2)),
		b.AESRound(dd[2], dd[3].XOR(m1)),
		b.AESRound(dd[3], dd[2].XOR(m0)),
	}

	var out [32]byte
	StoreVector(out[0:16], e[0])
	StoreVector(out[16:32], e[1])
	return out
}

// Finalize runs the full finalization pipeline of spec §4.4 and returns the
// 32-byte digest.
func Finalize(b Backend, k *KernelState, remainder []byte, domain, length uint64, key []byte) [32]byte {
	leftover := absorbRemainder(b, k, remainder)
	dPad := padBlock(b, leftover)
	treeMerge(b, &k.V)
	clmulHarden(b, &k.V)
	finalBlock(b, &k.V, dPad, domain, length)
	keyReabsorb(b, &k.V, key)
	return laneReduce(b, &k.V)
}

package core

// ShortHash implements the short-input fast path of spec §4.5: a single-
// block specialization for inputs strictly under 64 bytes with seed=0 and
// no key, starting from the precomputed ShortInit state instead of running
// full kernel initialization.
//
// Callers must only invoke this when len(data) < 64; seed/key preconditions
// are enforced by oneshot.go's dispatch, not here.
func ShortHash(b Backend, data []byte, domain uint64) [32]byte {
	var acc [4]Vec128
	copy(acc[:], ShortInit[:])

	var block [64]byte
	n := copy(block[:], data)
	block[n] = 0x80

	var d [4]Vec128
	wk := Vec128{Whitening0, Whitening1}
	for j := 0; j < 4; j++ {
		d[j] = b.AESRound(LoadVector(block[j*16:j*16+16]), wk)
	}

	var saves [4]Vec128
	copy(saves[:], acc[:])

	length := uint64(len(data))
	meta := [4]Vec128{
		{domain ^ length, Phi},
		{length, domain},
		{Phi, length},
		{domain, Phi},
	}
	for i := 0; i < 4; i++ {
		acc[i] = acc[i].XOR(d[i]).XOR(meta[i])
	}

	for r := 0; r < 10; r++ {
		var next [4]Vec128
		for i := 0; i < 4; i++ {
			mix := d[i].Add(RKChain[r]).Add(Splat(LaneOffsets[i]))
			next[i] = b.AESRound(acc[i], mix)
		}
		for i := 0; i < 4; i++ {
			acc[i] = next[(i+1)%4]
		}
		if r%2 == 1 {
			for k := 0; k < 4; k++ {
				d[k] = d[k].XOR(acc[k])
			}
		}
	}

	for i := 0; i < 4; i++ {
		acc[i] = acc[i].XOR(saves[i])
	}

	return laneReduce4(b, acc)
}

// laneReduce4 runs the spec §4.4 step 7 lane reduction directly over a
// standalone 4-vector accumulator, as used by the short path.
func laneReduce4(b Backend, acc [4]Vec128) [32]byte {
	var v [32]Vec128
	copy(v[0:4], acc[:])
	return laneReduce(b, &v)
}

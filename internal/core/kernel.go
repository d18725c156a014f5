package core

// KernelState is the 512-byte permutation state: 8 lanes of 4 vectors each
// (spec §3), stored flat under the convention idx(lane,vec) = lane*4+vec.
type KernelState struct {
	V          [32]Vec128
	BlockCount uint64
}

func idx(lane, vec int) int { return lane*4 + vec }

// Lane returns a copy of lane i's four vectors.
func (k *KernelState) Lane(i int) [4]Vec128 {
	return [4]Vec128{k.V[idx(i, 0)], k.V[idx(i, 1)], k.V[idx(i, 2)], k.V[idx(i, 3)]}
}

// Init initializes the kernel state from an optional seed (0 meaning
// absent) and an optional 32-byte key (nil meaning absent), per spec §4.2.
func (k *KernelState) Init(b Backend, seed uint64, key []byte) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 4; j++ {
			lo := C[i] + uint64(2*j)
			hi := C[i] + uint64(2*j) + 1
			k.V[idx(i, j)] = Vec128{lo, hi}
		}
	}

	s := seed
	if s == 0 {
		s = C[5]
	}
	sv := Splat(s)
	for i := range k.V {
		k.V[i] = b.AESRound(k.V[i], sv)
	}

	if len(key) == 32 {
		k0 := LoadVector(key[0:16])
		k1 := LoadVector(key[16:32])
		phi := Splat(Phi)
		k2 := k0.XOR(phi)
		k3 := k1.XOR(phi)
		ks := [4]Vec128{k0, k1, k2, k3}
		for i := 0; i < 8; i++ {
			lo := Splat(LaneOffsets[i])
			for j := 0; j < 4; j++ {
				kj := ks[j]
				v := k.V[idx(i, j)]
				v = b.AESRound(v, kj.Add(lo))
				v = b.AESRound(v, kj)
				k.V[idx(i, j)] = v
			}
		}
	}

	k.BlockCount = 0
}

// rotateLanesLeft rotates whole lanes: lane i receives the former lane
// (i+1)%8, entirely (all 4 of its vectors).
func rotateLanesLeft(v *[32]Vec128) {
	var out [32]Vec128
	for i := 0; i < 8; i++ {
		src := (i + 1) % 8
		out[idx(i, 0)] = v[idx(src, 0)]
		out[idx(i, 1)] = v[idx(src, 1)]
		out[idx(i, 2)] = v[idx(src, 2)]
		out[idx(i, 3)] = v[idx(src, 3)]
	}
	*v = out
}

// rotateVecsWithinLanes rotates each lane's 4 vectors left by one: vec j
// receives the former vec (j+1)%4.
func rotateVecsWithinLanes(v *[32]Vec128) {
	var out [32]Vec128
	for i := 0; i < 8; i++ {
		for j := 0; j < 4; j++ {
			out[idx(i, j)] = v[idx(i, (j+1)%4)]
		}
	}
	*v = out
}

// preWhiten applies AES_ROUND(B[i,j], (Whitening0,Whitening1)) to every
// vector of a 512-byte block.
func preWhiten(b Backend, block *[512]byte) [32]Vec128 {
	var d [32]Vec128
	wk := Vec128{Whitening0, Whitening1}
	for i := 0; i < 32; i++ {
		v := LoadVector(block[i*16 : i*16+16])
		d[i] = b.AESRound(v, wk)
	}
	return d
}

// compressionRound runs one AES round of the compression schedule: all 32
// state vectors are mixed with the round key, lane offset, block counter,
// and their assigned data vector; then the data feedback and lane rotation
// of spec §4.3 are applied. phase2 selects the "offset mapping" data index
// used for rounds 5..9.
func compressionRound(b Backend, state *[32]Vec128, d *[32]Vec128, rk Vec128, blockCount uint64, phase2 bool) {
	blk := Splat(blockCount)
	for i := 0; i < 32; i++ {
		lane := i / 4
		vec := i % 4
		var dIdx int
		if phase2 {
			dIdx = idx((lane+4)%8, vec)
		} else {
			dIdx = i
		}
		mix := d[dIdx].Add(rk).Add(Splat(LaneOffsets[i])).Add(blk)
		state[i] = b.AESRound(state[i], mix)
	}

	for lane := 0; lane < 8; lane++ {
		for vec := 0; vec < 4; vec++ {
			d[idx(lane, vec)] = d[idx(lane, vec)].XOR(state[idx((lane+3)%8, vec)])
		}
	}

	rotateLanesLeft(state)
}

// midBlockDiffusion runs the intra-lane rotation and two cross-lane
// diffusion stages between compression phases 1 and 2 (spec §4.3).
func midBlockDiffusion(state *[32]Vec128) {
	rotateVecsWithinLanes(state)

	for l := 0; l < 4; l++ {
		for i := 0; i < 4; i++ {
			lo := state[idx(i, l)]
			hi := state[idx(i+4, l)]
			state[idx(i, l)] = lo.XOR(hi)
			state[idx(i+4, l)] = hi.Add(lo)
		}
	}

	pairs := [4][2]int{{0, 2}, {1, 3}, {4, 6}, {5, 7}}
	for l := 0; l < 4; l++ {
		for _, p := range pairs {
			a, bIdx := idx(p[0], l), idx(p[1], l)
			lo := state[a]
			hi := state[bIdx]
			state[a] = lo.XOR(hi)
			state[bIdx] = hi.Add(lo)
		}
	}
}

// Compress absorbs one 512-byte block into the kernel state (spec §4.3).
func (k *KernelState) Compress(b Backend, block *[512]byte) {
	d := preWhiten(b, block)

	var saves [32]Vec128
	copy(saves[:], k.V[:])

	for r := 0; r < 5; r++ {
		compressionRound(b, &k.V, &d, RKChain[r], k.BlockCount, false)
	}

	midBlockDiffusion(&k.V)

	for r := 5; r < 10; r++ {
		compressionRound(b, &k.V, &d, RKChain[r], k.BlockCount, true)
	}

	rotateVecsWithinLanes(&k.V)
	for i := range k.V {
		k.V[i] = k.V[i].XOR(saves[i])
	}

	k.BlockCount++
}

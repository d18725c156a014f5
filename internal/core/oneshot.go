package core

// runCore runs the general kernel pipeline directly over data: full
// 512-byte blocks through Compress, the tail through Finalize. This is the
// primitive the Merkle driver (merkle.go) calls per leaf/node/commit step,
// and the direct path OneShot takes for inputs that need neither the
// short path nor the Merkle tree.
func runCore(b Backend, data []byte, domain, seed uint64, key []byte) [32]byte {
	var state KernelState
	state.Init(b, seed, key)

	n := len(data)
	full := n / 512
	for i := 0; i < full; i++ {
		var block [512]byte
		copy(block[:], data[i*512:i*512+512])
		state.Compress(b, &block)
	}

	remainder := data[full*512:]
	return Finalize(b, &state, remainder, domain, uint64(n), key)
}

// OneShot is the primitive one-shot contract of spec §6: byte slice,
// domain, seed, optional 32-byte key, 32-byte output slot. It dispatches
// between the short path (inputs under 64 bytes with default seed/key),
// the Merkle tree driver (inputs at or above ChunkSize), and the direct
// kernel pipeline otherwise (spec §2 "Data flow").
func OneShot(out *[32]byte, data []byte, domain, seed uint64, key []byte) error {
	if out == nil {
		return ErrNilOutput
	}

	b := SelectBackend()

	var digest [32]byte
	switch {
	case len(data) < 64 && seed == 0 && len(key) == 0:
		digest = ShortHash(b, data, domain)
	case len(data) >= ChunkSize:
		digest = MerkleHash(b, data, domain, seed, key)
	default:
		digest = runCore(b, data, domain, seed, key)
	}

	*out = digest
	return nil
}

package core

// Phi is the 64-bit golden-ratio constant floor(2^64/phi), reused in place
// of C4, KEY_SCHEDULE_BASE and CHAOS_BASE throughout the reference (spec
// §9 Design Notes: "the names are retained ... but are the same 64-bit
// value").
const Phi uint64 = 0x9E3779B97F4A7C15

// C holds the eight kernel initialization constants C0..C7: the fractional
// part of ln(p) for the first eight primes, with C4 replaced by Phi.
var C = [8]uint64{
	0xb17217f7d1cf79ab, // ln(2)
	0x193ea7aad030a976, // ln(3)
	0x9c041f7ed8d336af, // ln(5)
	0xf2272ae325a57546, // ln(7)
	Phi,                // ln(11), replaced by Phi per spec
	0x90a08566318a1fd0, // ln(13)
	0xd54d783f4fef39df, // ln(17)
	0xf1c6c0c096658e40, // ln(19)
}

// Whitening0/1 are the pre-whitening round key halves, from ln(19)/ln(23).
// (C[7] and Whitening0 coincide: both are floor(frac(ln(19)) * 2^64).)
const (
	Whitening0 uint64 = 0xf1c6c0c096658e40
	Whitening1 uint64 = 0x22afbfba367e0122
)

// KeyScheduleMult is ln(29); reused below as CLMULConstant2 since the
// header that introduces it has no other consumer for it in this spec
// (DESIGN.md, Open Questions #2).
const KeyScheduleMult uint64 = 0x5e071979bfc3d7ac

// CLMULConstant/CLMULConstant2 form the CLMUL hardening key K of spec §4.4
// step 4.
const (
	CLMULConstant  uint64 = 0x6f19c912256b3e22 // ln(31)
	CLMULConstant2 uint64 = KeyScheduleMult
)

// LaneOffsets holds the 32 unique lane-diversification constants, one per
// kernel vector index, from the fractional part of ln(p) for the 32 primes
// from 37 to 191.
var LaneOffsets = [32]uint64{
	0x9c651dc758f7a6f2, 0xb6aca8b1d589b575, 0xc2de02c29d8222cb, 0xd9a345f21e16cb31,
	0xf8650d044795568f, 0x13d97e71ca5e2da9, 0x1c623ac49b03386c, 0x3466bc4a044b5829,
	0x433efd0935b23d6b, 0x4a5b8cc88bf98cd3, 0x5e94226bec5cbfb8, 0x6b392358b9206784,
	0x7d1745eba2bd8e2d, 0x9320423952fe003b, 0x9d7889c6ee8c2f8e, 0xa27d995644faf994,
	0xac3e82afd1d6dc79, 0xb0fc2cc0554191f5, 0xba36168ce0d6ee1d, 0xd81ca5180b90858d,
	0xe00cee88b2189a5c, 0xeb83deb56027349a, 0xef39af05c2c4931b, 0x0102a006f9cb3c2a,
	0x046c738e0014c2f8, 0x0e662006821719e4, 0x1800035e755ec056, 0x1e34d7ad75d7a815,
	0x273e1e311ea1a70b, 0x2ff88423d2160504, 0x32d0b391a3caa870, 0x4094fdcb1c2e7ee1,
}

// RKChain is the precomputed 10-round round-key chain: the trajectory of
// iterating AES_ROUND on (Phi,Phi) with itself as the round key (spec §3,
// §4.1). RecomputeRoundKeyChain reproduces this table from scratch.
var RKChain = [10]Vec128{
	{0x5133686de20f38bb, 0x5133686de20f38bb},
	{0xfa269c474d24131c, 0xfa269c474d24131c},
	{0x5630278f407d5f5d, 0x5630278f407d5f5d},
	{0x1a9fd42eded03bc4, 0x1a9fd42eded03bc4},
	{0x4ac651b79d9985f6, 0x4ac651b79d9985f6},
	{0x356954b6d3ac8122, 0x356954b6d3ac8122},
	{0xde6874a1fb876c78, 0xde6874a1fb876c78},
	{0x8391267f9ba0cbbc, 0x8391267f9ba0cbbc},
	{0x58794674e0c68c78, 0x58794674e0c68c78},
	{0xfec03cb005ed292b, 0xfec03cb005ed292b},
}

// RecomputeRoundKeyChain independently rederives RKChain using only the
// scalar AES round, satisfying spec §4.1's "must expose a verification
// routine" requirement and testable property 7 (spec §8).
func RecomputeRoundKeyChain() [10]Vec128 {
	var out [10]Vec128
	v := Splat(Phi)
	for r := 0; r < 10; r++ {
		v = ScalarAESRound(v, v)
		out[r] = v
	}
	return out
}

// ShortInit is the kernel's lane-0 state (vecs 0..3) immediately after
// initialization with seed=0, key=absent (spec §3, §4.1).
var ShortInit = [4]Vec128{
	{0xa2bc64096654cb5d, 0xa2bc640968a738a0},
	{0xa2bc640964a33ca8, 0xa2bc6409f7d24d4a},
	{0xa2bc64094b4fd06b, 0xa2bc6409f2d14e4c},
	{0xa2bc640983fe6112, 0xa2bc640999019ef7},
}

// RecomputeShortInit independently rederives ShortInit by running the
// scalar kernel's init routine for seed=0, key=absent, matching spec §4.1
// / testable property 8 (spec §8).
func RecomputeShortInit() [4]Vec128 {
	var st KernelState
	st.Init(ScalarBackend{}, 0, nil)
	return st.Lane(0)
}

// Reserved domain tags for internal Merkle-tree node typing (spec §3).
const (
	DomainReservedMask uint64 = 0xFFFFFFFF00000000
	DomainMerkleLeaf   uint64 = 0xFFFFFFFF00000000
	DomainMerkleNode   uint64 = 0xFFFFFFFF00000001
)

// ChunkSize is the Merkle driver's leaf chunk size, 256 KiB (spec §4.6).
const ChunkSize = 256 * 1024

package core

// Hasher is the internal engine behind the public opaque streaming handle
// (spec §6 "Streaming façade"). It defers committing to short/direct/
// Merkle path until enough is known: inputs that never reach 64 bytes can
// still take the short path, matching OneShot's dispatch exactly, so
// streaming finalize is bit-compatible with one-shot for any chunk split
// (spec §8 testable property 2).
type Hasher struct {
	backend Backend
	domain  uint64
	seed    uint64
	key     []byte

	pending []byte
	driver  *MerkleDriver

	progress func(processed uint64)
}

// NewHasher builds a streaming hasher for the given domain/seed/key.
func NewHasher(domain, seed uint64, key []byte) *Hasher {
	return &Hasher{
		backend: SelectBackend(),
		domain:  domain,
		seed:    seed,
		key:     key,
	}
}

// SetProgress registers a callback invoked with the cumulative number of
// bytes absorbed each time a Merkle leaf chunk completes. It has no effect
// for inputs that never reach the Merkle driver (short/direct paths).
func (h *Hasher) SetProgress(fn func(processed uint64)) {
	h.progress = fn
	if h.driver != nil {
		h.driver.SetProgress(fn)
	}
}

// Update absorbs more input. It may be called any number of times.
func (h *Hasher) Update(data []byte) {
	if h.driver != nil {
		h.driver.Update(data)
		return
	}

	h.pending = append(h.pending, data...)
	if len(h.pending) >= 64 {
		h.driver = NewMerkleDriver(h.backend, h.domain, h.seed, h.key)
		if h.progress != nil {
			h.driver.SetProgress(h.progress)
		}
		h.driver.Update(h.pending)
		h.pending = nil
	}
}

// Finalize writes the digest. The Hasher must not be reused afterwards
// (spec §6: "finalize... consumes the handle").
func (h *Hasher) Finalize() [32]byte {
	if h.driver != nil {
		return h.driver.Finalize()
	}
	if h.seed == 0 && len(h.key) == 0 {
		return ShortHash(h.backend, h.pending, h.domain)
	}
	return runCore(h.backend, h.pending, h.domain, h.seed, h.key)
}

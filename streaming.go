package tachyon

import "github.com/byt3forg3/tachyon/internal/core"

// Option configures a Hasher built with New.
type Option func(*hasherConfig)

type hasherConfig struct {
	domain   uint64
	seed     uint64
	key      []byte
	progress func(processed uint64)
}

// WithSeed sets the 64-bit seed.
func WithSeed(seed uint64) Option {
	return func(c *hasherConfig) { c.seed = seed }
}

// WithDomain sets the domain tag.
func WithDomain(domain Domain) Option {
	return func(c *hasherConfig) { c.domain = uint64(domain) }
}

// WithKey sets the 32-byte MAC key. Panics if key is not 32 bytes, since
// Option application has no error return; validate with HashKeyed/VerifyMAC
// first if the key length is untrusted.
func WithKey(key []byte) Option {
	return func(c *hasherConfig) {
		if len(key) != 32 {
			panic("tachyon: WithKey: key must be exactly 32 bytes")
		}
		c.key = append([]byte(nil), key...)
	}
}

// WithProgress registers a callback invoked with the cumulative number of
// bytes absorbed each time a 256 KiB Merkle leaf chunk completes. It only
// fires once the input has grown large enough to take the Merkle path.
func WithProgress(fn func(processed uint64)) Option {
	return func(c *hasherConfig) { c.progress = fn }
}

// Hasher is the opaque streaming handle of spec §6: Update may be called
// any number of times; Finalize writes the digest and must be called at
// most once. For any split of the same bytes into consecutive Update
// calls, Finalize equals the one-shot digest of the full input (spec §8
// property 2).
type Hasher struct {
	h *core.Hasher
}

// New builds a streaming Hasher. Defaults: domain=0, seed=0, no key.
func New(opts ...Option) *Hasher {
	cfg := hasherConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	h := core.NewHasher(cfg.domain, cfg.seed, cfg.key)
	if cfg.progress != nil {
		h.SetProgress(cfg.progress)
	}
	return &Hasher{h: h}
}

// Update absorbs more input.
func (h *Hasher) Update(data []byte) {
	h.h.Update(data)
}

// Finalize writes the digest. The Hasher must not be reused afterwards.
func (h *Hasher) Finalize() [Size]byte {
	return h.h.Finalize()
}

package tachyon

import "github.com/byt3forg3/tachyon/internal/core"

// BackendName reports the CPU-dispatched backend tier currently selected
// ("scalar", "aesni", or "avx512"), mirroring the C binding's
// tachyon_get_backend_name (SPEC_FULL.md §10).
func BackendName() string {
	return core.SelectBackend().Name()
}

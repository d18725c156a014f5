package core

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Backend override forced at build/init time for testing or diagnostics.
type BackendOverride string

const (
	OverrideNone   BackendOverride = ""
	OverrideScalar BackendOverride = "scalar"
	OverrideAESNI  BackendOverride = "aesni"
)

var (
	dispatchOnce sync.Once
	selected     Backend
	override     BackendOverride
)

// SetOverride forces scalar or AES-NI selection regardless of detected CPU
// features (spec §4.7: "Build-time overrides force scalar or AES-NI").
// Must be called before the first SelectBackend; intended for tests and
// the CLI's --backend flag.
func SetOverride(o BackendOverride) {
	override = o
}

// SelectBackend runs the CPU-feature probe once, lazily, and caches the
// chosen Backend behind a sync.Once (spec §5: "initialized once under a
// benign race"; klauspost/cpuid/v2 itself detects features once at
// package init, so the cache here only decides among them).
func SelectBackend() Backend {
	dispatchOnce.Do(func() {
		selected = detectBackend()
	})
	return selected
}

func detectBackend() Backend {
	switch override {
	case OverrideScalar:
		return ScalarBackend{}
	case OverrideAESNI:
		return newAESNIOrScalar()
	}

	if !cpuid.CPU.Has(cpuid.AESNI) {
		return ScalarBackend{}
	}

	if cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512BW) &&
		cpuid.CPU.Has(cpuid.VAES) && cpuid.CPU.Has(cpuid.VPCLMULQDQ) {
		return newAVX512OrAESNI()
	}

	return newAESNIOrScalar()
}

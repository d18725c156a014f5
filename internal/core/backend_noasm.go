//go:build !amd64

package core

// Non-amd64 platforms have no hardware-accelerated tier; dispatch.go
// always selects ScalarBackend here, mirroring
// internal/sha1/sha1_generic.go's non-amd64 fallback.

func newAESNIOrScalar() Backend { return ScalarBackend{} }

func newAVX512OrAESNI() Backend { return ScalarBackend{} }

package core

import "errors"

// ErrNilOutput is returned when a required output slot is absent (spec
// §7, status -1).
var ErrNilOutput = errors.New("tachyon: nil output")

// ErrInternal is reserved for internal-state failures (spec §7, status
// -2). The reference never emits it; kept so the contract stays available.
var ErrInternal = errors.New("tachyon: internal error")

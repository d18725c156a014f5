package tachyon

import "errors"

// ErrKeyLength is returned by HashKeyed/VerifyMAC when key is not exactly
// 32 bytes.
var ErrKeyLength = errors.New("key must be exactly 32 bytes")

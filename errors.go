package keccak

import "errors"

// ErrFinalized is returned by Write and Finalize on a Hasher that has already
// been finalized and not Reset since.
var ErrFinalized = errors.New("keccak: hasher already finalized")

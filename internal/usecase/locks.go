package usecase

import "sync"

// WriteLocks serialises read-modify-write cycles per collection inside one
// process. Writers in other processes are not covered.
type WriteLocks struct {
	orders  sync.Mutex
	reviews sync.Mutex
}

// NewWriteLocks constructs WriteLocks.
func NewWriteLocks() *WriteLocks {
	return &WriteLocks{}
}

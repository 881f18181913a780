package services

import (
	"sync"

	"github.com/google/uuid"
)

// ownerMutexMap hands out one mutex per owner identity. Every ledger or pool
// position mutation for an owner must run under that owner's mutex, whichever
// service drives it, so concurrent writers cannot lose an update.
type ownerMutexMap struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newOwnerMutexMap() *ownerMutexMap {
	return &ownerMutexMap{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// lock acquires the owner's mutex and returns its release func
func (m *ownerMutexMap) lock(ownerID uuid.UUID) func() {
	m.mu.Lock()
	l, ok := m.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[ownerID] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

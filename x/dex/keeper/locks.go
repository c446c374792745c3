package keeper

import (
	"sync"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// pairLocks serializes operations on the same pair. Disjoint pairs take
// different mutexes, but the stores under them are not safe for concurrent
// writers: running disjoint pairs concurrently on one store relies on the
// host's single writer (internal/app App.mu).
type pairLocks struct {
	mu    sync.Mutex
	locks map[types.AssetPair]*sync.Mutex
}

func newPairLocks() *pairLocks {
	return &pairLocks{locks: make(map[types.AssetPair]*sync.Mutex)}
}

// lock acquires the pair's mutex and returns its release func.
func (l *pairLocks) lock(pair types.AssetPair) func() {
	l.mu.Lock()
	m, ok := l.locks[pair]
	if !ok {
		m = &sync.Mutex{}
		l.locks[pair] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

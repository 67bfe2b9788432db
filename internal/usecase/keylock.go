package usecase

import (
	"fmt"
	"sync"
)

// keyLock serializes compound read-then-write sequences per (user, book)
// pair. Entries are refcounted and removed once the last holder unlocks,
// so the map does not grow with the key space.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

func (kl *keyLock) lock(key string) {
	kl.mu.Lock()
	entry, ok := kl.locks[key]
	if !ok {
		entry = &keyLockEntry{}
		kl.locks[key] = entry
	}
	entry.refs++
	kl.mu.Unlock()

	entry.mu.Lock()
}

func (kl *keyLock) unlock(key string) {
	kl.mu.Lock()
	entry := kl.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()

	entry.mu.Unlock()
}

func pairKey(userID, bookID int64) string {
	return fmt.Sprintf("%d:%d", userID, bookID)
}

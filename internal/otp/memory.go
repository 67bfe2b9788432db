package otp

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	code   string
	expiry time.Time
}

// MemoryStore is the default process-local store. Expiry is passive:
// records are checked (and dropped) on Take, no background sweeper.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord

	// now is swappable for tests
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
		now:     time.Now,
	}
}

func (ms *MemoryStore) Put(_ context.Context, identity, code string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.records[identity] = memoryRecord{
		code:   code,
		expiry: ms.now().Add(ttl),
	}
	return nil
}

func (ms *MemoryStore) Take(_ context.Context, identity string) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	record, ok := ms.records[identity]
	if !ok {
		return "", false, nil
	}

	// single-use: removed regardless of expiry outcome
	delete(ms.records, identity)

	if ms.now().After(record.expiry) {
		return "", false, nil
	}

	return record.code, true, nil
}

func (ms *MemoryStore) Delete(_ context.Context, identity string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.records, identity)
	return nil
}

package otp

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIssuer(store Store) *Issuer {
	return NewIssuer(store, 5*time.Minute, zap.NewNop())
}

func TestGenerate_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestIssue_StoresCode(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	code, err := issuer.Issue(ctx, "reader@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	ok, err := issuer.Validate(ctx, "reader@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_SingleUse(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reader@example.com", "123456", 5*time.Minute))

	ok, err := issuer.Validate(ctx, "reader@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok, "first validation must succeed")

	ok, err = issuer.Validate(ctx, "reader@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "second validation must fail")
}

func TestValidate_WrongCodeConsumesRecord(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reader@example.com", "123456", 5*time.Minute))

	ok, err := issuer.Validate(ctx, "reader@example.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// the record is gone even after a failed attempt
	ok, err = issuer.Validate(ctx, "reader@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, "reader@example.com", "123456", 5*time.Minute))

	current = current.Add(5*time.Minute + time.Second)

	ok, err := issuer.Validate(ctx, "reader@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "expired code must not validate")
}

func TestIssue_OverwritesPreviousCode(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reader@example.com", "111111", 5*time.Minute))

	code, err := issuer.Issue(ctx, "reader@example.com")
	require.NoError(t, err)

	ok, err := issuer.Validate(ctx, "reader@example.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok || code == "111111", "stale code must not survive reissue")
}

func TestRemove(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reader@example.com", "123456", 5*time.Minute))
	require.NoError(t, issuer.Remove(ctx, "reader@example.com"))

	ok, err := issuer.Validate(ctx, "reader@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidate_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reader@example.com", "123456", 5*time.Minute))

	var successes int64
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := issuer.Validate(ctx, "reader@example.com", "123456")
			require.NoError(t, err)
			if ok {
				atomic.AddInt64(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), successes, "exactly one concurrent validation may succeed")
}

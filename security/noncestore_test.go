package security

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryNonceStoreCheckAndSet(t *testing.T) {
	store := NewMemoryNonceStore(time.Minute, time.Minute)
	defer store.Close()

	assert.True(t, store.CheckAndSet("nonce-1"))
	assert.False(t, store.CheckAndSet("nonce-1"))
	assert.True(t, store.CheckAndSet("nonce-2"))
	assert.Equal(t, 2, store.Len())
}

func TestMemoryNonceStoreTTLExpiry(t *testing.T) {
	store := NewMemoryNonceStore(20*time.Millisecond, 5*time.Millisecond)
	defer store.Close()

	assert.True(t, store.CheckAndSet("short-lived"))
	assert.False(t, store.CheckAndSet("short-lived"))

	// After the TTL the nonce counts as unseen again and the sweeper
	// eventually drops the old entry.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, store.CheckAndSet("short-lived"))
}

func TestMemoryNonceStoreSweeperEvicts(t *testing.T) {
	store := NewMemoryNonceStore(10*time.Millisecond, 5*time.Millisecond)
	defer store.Close()

	for i := 0; i < 10; i++ {
		store.CheckAndSet(fmt.Sprintf("nonce-%d", i))
	}
	assert.Eventually(t, func() bool { return store.Len() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestMemoryNonceStoreConcurrent(t *testing.T) {
	store := NewMemoryNonceStore(time.Minute, time.Minute)
	defer store.Close()

	const goroutines = 32
	var wg sync.WaitGroup
	admitted := make(chan struct{}, goroutines)

	// All goroutines race on the same nonce; exactly one may win.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.CheckAndSet("contested") {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestMemoryNonceStoreCloseIdempotent(t *testing.T) {
	store := NewMemoryNonceStore(time.Minute, time.Minute)
	store.Close()
	store.Close()

	// Still usable after Close, just without background eviction.
	assert.True(t, store.CheckAndSet("post-close"))
	assert.False(t, store.CheckAndSet("post-close"))
}

func TestMemoryNonceStoreDefaults(t *testing.T) {
	store := NewMemoryNonceStore(0, 0)
	defer store.Close()
	assert.True(t, store.CheckAndSet("n"))
	assert.False(t, store.CheckAndSet("n"))
}

package security

import (
	"sync"
	"time"
)

// NonceStore records seen nonces for replay detection.
type NonceStore interface {
	// CheckAndSet atomically records the nonce and reports whether it
	// was unseen. The check and the insertion are a single operation so
	// two concurrent deliveries of the same message cannot both pass.
	CheckAndSet(nonce string) bool
}

// MemoryNonceStore is an in-process NonceStore with time-boxed
// retention. Nonces older than the TTL are forgotten, which bounds
// memory; the TTL must therefore be at least as long as the replay
// check's maximum message age, or an attacker could replay a message
// whose nonce has already been evicted while its timestamp is still
// fresh.
type MemoryNonceStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time

	shutdown chan struct{}
	done     chan struct{}
}

// NewMemoryNonceStore creates a store retaining nonces for ttl, with a
// background goroutine sweeping expired entries every cleanupInterval.
// Non-positive arguments fall back to 10 minutes and 1 minute. Call
// Close to stop the sweeper.
func NewMemoryNonceStore(ttl, cleanupInterval time.Duration) *MemoryNonceStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	s := &MemoryNonceStore{
		ttl:      ttl,
		seen:     make(map[string]time.Time),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.sweep(cleanupInterval)
	return s
}

// CheckAndSet implements NonceStore. A nonce whose previous sighting
// has expired counts as unseen again.
func (s *MemoryNonceStore) CheckAndSet(nonce string) bool {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if seenAt, exists := s.seen[nonce]; exists && now.Sub(seenAt) < s.ttl {
		return false
	}
	s.seen[nonce] = now
	return true
}

// Len returns the number of retained nonces, including any expired
// entries the sweeper has not reached yet.
func (s *MemoryNonceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// Close stops the background sweeper. The store stays usable after
// Close; only eviction stops.
func (s *MemoryNonceStore) Close() {
	select {
	case <-s.shutdown:
		// already closed
	default:
		close(s.shutdown)
		<-s.done
	}
}

func (s *MemoryNonceStore) sweep(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.shutdown:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for nonce, seenAt := range s.seen {
				if seenAt.Before(cutoff) {
					delete(s.seen, nonce)
				}
			}
			s.mu.Unlock()
		}
	}
}

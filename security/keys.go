package security

import (
	"sort"
	"sync"
)

// KeyManager stores per-agent signing keys. It is a plain in-process
// registry for development and testing; production deployments should
// load keys from a real secrets backend and feed them in via StoreKey.
type KeyManager struct {
	mu   sync.RWMutex
	keys map[string]string
}

// NewKeyManager creates an empty key registry.
func NewKeyManager() *KeyManager {
	return &KeyManager{keys: make(map[string]string)}
}

// GenerateAndStore creates a fresh random key for the agent, replacing
// any existing one, and returns it.
func (km *KeyManager) GenerateAndStore(agentID string) string {
	key := GenerateKey()
	km.StoreKey(agentID, key)
	return key
}

// StoreKey records a key for the agent, replacing any existing one.
func (km *KeyManager) StoreKey(agentID, key string) {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.keys[agentID] = key
}

// GetKey returns the agent's key and whether one is stored.
func (km *KeyManager) GetKey(agentID string) (string, bool) {
	km.mu.RLock()
	defer km.mu.RUnlock()
	key, ok := km.keys[agentID]
	return key, ok
}

// RemoveKey deletes the agent's key, reporting whether one existed.
func (km *KeyManager) RemoveKey(agentID string) bool {
	km.mu.Lock()
	defer km.mu.Unlock()
	_, ok := km.keys[agentID]
	delete(km.keys, agentID)
	return ok
}

// ListAgents returns the agent IDs with stored keys, sorted.
func (km *KeyManager) ListAgents() []string {
	km.mu.RLock()
	defer km.mu.RUnlock()

	agents := make([]string, 0, len(km.keys))
	for agentID := range km.keys {
		agents = append(agents, agentID)
	}
	sort.Strings(agents)
	return agents
}

// ManagerFor returns a signing Manager bound to the agent's stored
// key, or false when no key is registered.
func (km *KeyManager) ManagerFor(agentID string) (*Manager, bool) {
	key, ok := km.GetKey(agentID)
	if !ok {
		return nil, false
	}
	return NewManager(key), true
}

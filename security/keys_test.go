package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyManagerStoreAndGet(t *testing.T) {
	km := NewKeyManager()

	_, ok := km.GetKey("agent-a")
	assert.False(t, ok)

	km.StoreKey("agent-a", "key-a")
	key, ok := km.GetKey("agent-a")
	require.True(t, ok)
	assert.Equal(t, "key-a", key)

	// Storing again replaces.
	km.StoreKey("agent-a", "key-a2")
	key, _ = km.GetKey("agent-a")
	assert.Equal(t, "key-a2", key)
}

func TestKeyManagerGenerateAndStore(t *testing.T) {
	km := NewKeyManager()

	generated := km.GenerateAndStore("agent-b")
	assert.NotEmpty(t, generated)

	stored, ok := km.GetKey("agent-b")
	require.True(t, ok)
	assert.Equal(t, generated, stored)

	assert.NotEqual(t, generated, km.GenerateAndStore("agent-c"))
}

func TestKeyManagerRemoveKey(t *testing.T) {
	km := NewKeyManager()
	km.StoreKey("agent-a", "key-a")

	assert.True(t, km.RemoveKey("agent-a"))
	assert.False(t, km.RemoveKey("agent-a"))
	_, ok := km.GetKey("agent-a")
	assert.False(t, ok)
}

func TestKeyManagerListAgents(t *testing.T) {
	km := NewKeyManager()
	assert.Empty(t, km.ListAgents())

	km.StoreKey("zeta", "k1")
	km.StoreKey("alpha", "k2")
	km.StoreKey("mid", "k3")
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, km.ListAgents())
}

func TestKeyManagerManagerFor(t *testing.T) {
	km := NewKeyManager()
	km.GenerateAndStore("signer")

	signer, ok := km.ManagerFor("signer")
	require.True(t, ok)

	msg := newTestMessage(t)
	_, err := signer.Sign(msg)
	require.NoError(t, err)

	// A second manager built from the same stored key verifies.
	verifier, ok := km.ManagerFor("signer")
	require.True(t, ok)
	valid, err := verifier.Verify(msg)
	require.NoError(t, err)
	assert.True(t, valid)

	_, ok = km.ManagerFor("stranger")
	assert.False(t, ok)
}

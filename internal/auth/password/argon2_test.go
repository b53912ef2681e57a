package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewDefault()

	encoded, err := h.Hash("Sup3rSecret")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	ok, err := h.Verify("Sup3rSecret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong-password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := NewDefault()
	a, err := h.Hash("Sup3rSecret")
	require.NoError(t, err)
	b, err := h.Hash("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

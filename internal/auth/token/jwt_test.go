package token

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := New("test-secret", "contacts-api", time.Hour)
	uid := uuid.New()

	raw, issued, err := m.Issue(context.Background(), uid, "egor")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.NotEmpty(t, issued.JTI)
	assert.Equal(t, uid, issued.UserID)
	assert.Equal(t, "egor", issued.Username)
	assert.True(t, issued.ExpiresAt.After(issued.IssuedAt))

	parsed, err := m.Parse(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, issued.JTI, parsed.JTI)
	assert.Equal(t, uid, parsed.UserID)
	assert.Equal(t, "egor", parsed.Username)
}

func TestParseWrongSecret(t *testing.T) {
	m := New("secret-a", "contacts-api", time.Hour)
	raw, _, err := m.Issue(context.Background(), uuid.New(), "egor")
	require.NoError(t, err)

	other := New("secret-b", "contacts-api", time.Hour)
	_, err = other.Parse(context.Background(), raw)
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	m := New("test-secret", "contacts-api", -time.Minute)
	raw, _, err := m.Issue(context.Background(), uuid.New(), "egor")
	require.NoError(t, err)

	_, err = m.Parse(context.Background(), raw)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	m := New("test-secret", "contacts-api", time.Hour)
	_, err := m.Parse(context.Background(), "not.a.token")
	require.Error(t, err)
}

func TestUniqueJTI(t *testing.T) {
	m := New("test-secret", "contacts-api", time.Hour)
	_, a, err := m.Issue(context.Background(), uuid.New(), "egor")
	require.NoError(t, err)
	_, b, err := m.Issue(context.Background(), uuid.New(), "egor")
	require.NoError(t, err)
	assert.NotEqual(t, a.JTI, b.JTI)
}

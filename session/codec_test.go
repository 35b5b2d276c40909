package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, ttl time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("test-secret"), ttl, "panel-test")
	require.NoError(t, err)
	return c
}

func TestCodecRoundTrip(t *testing.T) {
	c := newTestCodec(t, time.Minute)

	id := Identity{UserID: 42, Username: "staff1", Role: "staff"}
	token, err := c.Mint(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := c.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, *got)
}

func TestCodecRejectsEmptyToken(t *testing.T) {
	c := newTestCodec(t, time.Minute)

	_, err := c.Verify("")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCodecRejectsGarbage(t *testing.T) {
	c := newTestCodec(t, time.Minute)

	_, err := c.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	c := newTestCodec(t, time.Minute)
	other, err := NewCodec([]byte("other-secret"), time.Minute, "panel-test")
	require.NoError(t, err)

	token, err := c.Mint(Identity{UserID: 1, Username: "staff1", Role: "staff"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCodecRejectsExpiredToken(t *testing.T) {
	c := newTestCodec(t, -time.Minute)

	token, err := c.Mint(Identity{UserID: 1, Username: "staff1", Role: "staff"})
	require.NoError(t, err)

	_, err = c.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec(nil, time.Minute, "panel-test")
	assert.Error(t, err)
}

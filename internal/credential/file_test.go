package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	backend := NewFileBackend(t.TempDir(), testLogger())

	require.NoError(t, backend.Set("auth_token", "tok-1"))

	value, ok := backend.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "tok-1", value)
}

func TestFileBackend_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first := NewFileBackend(dir, testLogger())
	require.NoError(t, first.Set("auth_token", "tok-1"))

	// A fresh backend over the same directory sees the value, like a new
	// client run reading the credentials of a remembered session.
	second := NewFileBackend(dir, testLogger())
	value, ok := second.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "tok-1", value)
}

func TestFileBackend_Get_Missing(t *testing.T) {
	backend := NewFileBackend(t.TempDir(), testLogger())

	_, ok := backend.Get("auth_token")
	assert.False(t, ok)
}

func TestFileBackend_Delete(t *testing.T) {
	backend := NewFileBackend(t.TempDir(), testLogger())

	require.NoError(t, backend.Set("auth_token", "tok-1"))
	require.NoError(t, backend.Delete("auth_token"))

	_, ok := backend.Get("auth_token")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, backend.Delete("auth_token"))
}

func TestFileBackend_Expiry(t *testing.T) {
	backend := NewFileBackend(t.TempDir(), testLogger())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	backend.now = func() time.Time { return now }

	require.NoError(t, backend.Set("auth_token", "tok-1"))

	// Just inside the horizon the value is still there.
	now = now.Add(29 * 24 * time.Hour)
	_, ok := backend.Get("auth_token")
	assert.True(t, ok)

	// Past the 30-day horizon it reads as absent.
	now = now.Add(2 * 24 * time.Hour)
	_, ok = backend.Get("auth_token")
	assert.False(t, ok)
}

func TestFileBackend_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir, testLogger())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{truncated"), 0o600))

	_, ok := backend.Get("auth_token")
	assert.False(t, ok)

	// The backend recovers: a write replaces the corrupt file.
	require.NoError(t, backend.Set("auth_token", "tok-1"))
	value, ok := backend.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "tok-1", value)
}

func TestFileBackend_ChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir, testLogger())

	require.NoError(t, backend.Set("auth_token", "tok-1"))

	// Tamper with the stored value without updating the checksum.
	path := filepath.Join(dir, "credentials.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload filePayload
	require.NoError(t, json.Unmarshal(data, &payload))
	entry := payload.Entries["auth_token"]
	entry.Value = "tok-tampered"
	payload.Entries["auth_token"] = entry

	tampered, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0o600))

	_, ok := backend.Get("auth_token")
	assert.False(t, ok)
}

func TestFileBackend_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir, testLogger())

	require.NoError(t, backend.Set("auth_token", "tok-1"))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetClients(t *testing.T) {
	path := writeProfiles(t, `
[acme-corp]
id = 1
name = Acme Corp
framework = NIST CSF

[globex]
id = 2
framework = ISO 27001
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	clients, err := registry.GetClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, domain.Client{ID: 1, Name: "Acme Corp", Framework: "NIST CSF"}, clients[0])
	// Name falls back to the section name.
	assert.Equal(t, domain.Client{ID: 2, Name: "globex", Framework: "ISO 27001"}, clients[1])
}

func TestGetClient(t *testing.T) {
	path := writeProfiles(t, `
[acme-corp]
id = 1
name = Acme Corp
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	client, err := registry.GetClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", client.Name)

	_, err = registry.GetClient(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetClients_InvalidID(t *testing.T) {
	path := writeProfiles(t, `
[broken]
id = not-a-number
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetClients(context.Background())
	assert.ErrorContains(t, err, "invalid id")
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	assert.Error(t, err)
}

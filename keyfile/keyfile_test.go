package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/vach/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPair_RoundTrip(t *testing.T) {
	secret, public, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "archive.kp")
	require.NoError(t, WriteKeyPair(path, secret, public))

	gotSecret, gotPublic, err := ReadKeyPair(path)
	require.NoError(t, err)
	assert.Equal(t, secret, gotSecret)
	assert.Equal(t, public, gotPublic)
}

func TestSecretAndPublic_RoundTrip(t *testing.T) {
	secret, public, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	dir := t.TempDir()
	skPath := filepath.Join(dir, "archive.sk")
	pkPath := filepath.Join(dir, "archive.pk")

	require.NoError(t, WriteSecret(skPath, secret))
	require.NoError(t, WritePublic(pkPath, public))

	gotSecret, err := ReadSecret(skPath)
	require.NoError(t, err)
	assert.Equal(t, secret, gotSecret)

	gotPublic, err := ReadPublic(pkPath)
	require.NoError(t, err)
	assert.Equal(t, public, gotPublic)
}

func TestReadSecret_WrongSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.sk")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o600))

	_, err := ReadSecret(path)
	require.Error(t, err)
}

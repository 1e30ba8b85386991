package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pemEncode(t *testing.T, blockType string, der []byte) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

func TestLoadPKCS1(t *testing.T) {

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	loaded, err := LoadPrivateKeyFromPEM(pemEncode(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key)), nil)
	require.NoError(t, err)
	assert.True(t, key.Equal(loaded))
}

func TestLoadPKCS8(t *testing.T) {

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	loaded, err := LoadPrivateKeyFromPEM(pemEncode(t, "PRIVATE KEY", der), nil)
	require.NoError(t, err)
	assert.True(t, key.Equal(loaded))
}

func TestEncryptedKeyNeedsPassword(t *testing.T) {

	_, err := LoadPrivateKeyFromPEM(pemEncode(t, "ENCRYPTED PRIVATE KEY", []byte{0x30, 0x00}), nil)
	assert.ErrorContains(t, err, "password")
}

func TestLoadFromFile(t *testing.T) {

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "device.pem")
	require.NoError(t, os.WriteFile(path, pemEncode(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key)), 0o600))

	loaded, err := LoadPrivateKeyFromFile(path, nil)
	require.NoError(t, err)
	assert.True(t, key.Equal(loaded))
}

func TestNoKeyBlock(t *testing.T) {

	_, err := LoadPrivateKeyFromPEM([]byte("garbage"), nil)
	assert.Error(t, err)
}

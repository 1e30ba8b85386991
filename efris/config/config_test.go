package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "efris.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {

	path := writeConfig(t, `
env = "test"

[device]
app_id = "AP04"
tin = "1000023456"
device_no = "TCS5a2ce23146217466"
device_mac = "TCS1a2b3c"
brn = "80010000123456"

[keys]
private_key_file = "keys/device.pem"
server_public_key_file = "keys/ura.pem"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, efris.Test, cfg.Env)
	assert.Equal(t, "1000023456", cfg.Device.Tin)
	assert.Equal(t, "keys/device.pem", cfg.Keys.PrivateKeyFile)

	device := cfg.APIDevice()
	assert.Equal(t, "AP04", device.AppID)
	assert.Equal(t, "TCS5a2ce23146217466", device.DeviceNo)
}

func TestLoadRejectsMissingTin(t *testing.T) {

	path := writeConfig(t, `
env = "test"

[device]
device_no = "TCS5a2ce23146217466"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {

	path := writeConfig(t, `
env = "staging"

[device]
tin = "1000023456"
device_no = "TCS5a2ce23146217466"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// Package config loads client settings from a TOML file. Key material is
// referenced by path, never inlined.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/api"
)

type Config struct {
	// Env selects the endpoint: test, sandbox or prod.
	Env    efris.Environment `toml:"env"`
	Device Device            `toml:"device"`
	Keys   Keys              `toml:"keys"`
}

type Device struct {
	AppID     string `toml:"app_id"`
	Tin       string `toml:"tin"`
	DeviceNo  string `toml:"device_no"`
	DeviceMAC string `toml:"device_mac"`
	Brn       string `toml:"brn"`
}

type Keys struct {
	PrivateKeyFile      string `toml:"private_key_file"`
	PrivateKeyPassword  string `toml:"private_key_password"`
	ServerPublicKeyFile string `toml:"server_public_key_file"`
}

func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot load config %s", path)
	}
	if cfg.Device.Tin == "" {
		return nil, errors.New("device.tin is required")
	}
	if cfg.Device.DeviceNo == "" {
		return nil, errors.New("device.device_no is required")
	}
	return &cfg, nil
}

// APIDevice maps the config onto the identification block every request
// carries.
func (c *Config) APIDevice() api.Device {
	return api.Device{
		AppID:     c.Device.AppID,
		Tin:       c.Device.Tin,
		DeviceNo:  c.Device.DeviceNo,
		DeviceMAC: c.Device.DeviceMAC,
		Brn:       c.Device.Brn,
	}
}

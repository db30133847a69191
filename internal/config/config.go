// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package config assembles the passvault client configuration from
// environment variables, command-line flags and an optional JSON file.
// Sources are merged in that order through a builder; later sources fill
// only fields the earlier ones left empty.
package config

import (
	"fmt"
	"time"
)

// Storage backends accepted by [Storage.Backend].
const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ClientConfig is the top-level configuration container for the passvault
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as the device secret used
	// for saved-password encryption.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the remote vault API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds credential-cache backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds session-lifecycle tuning.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceSecret is the device-fixed key material used to encrypt the
	// saved login password for biometric re-entry. It must be stable for
	// the lifetime of the device installation and kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the remote vault API
	// (e.g. "https://api.example.com").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Storage holds credential-cache backend settings.
type Storage struct {
	// Backend selects the credential-cache implementation:
	// "sqlite", "keyring" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND" envDefault:"sqlite"`

	// DSN is the SQLite file path used when Backend is "sqlite".
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// KeyringService is the OS-keyring service name used when Backend is
	// "keyring".
	// Env: STORAGE_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE" envDefault:"passvault"`
}

// Session holds session-lifecycle tuning.
type Session struct {
	// TickInterval is the countdown driver tick period. One second in
	// production; tests shorten it to drive expiry quickly.
	// Env: SESSION_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
}

// GetClientConfig builds the merged client configuration from environment
// variables, flags and the optional JSON file, then validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	return cfg, nil
}

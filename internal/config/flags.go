package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote API base address
//	-request-timeout outbound request timeout (e.g., "15s")
//	-storage-backend credential cache backend (sqlite|keyring|memory)
//	-d credential cache SQLite file path
//	-keyring-service OS keyring service name
//	-device-secret device-fixed secret for saved-password encryption
//	-tick-interval countdown tick interval (e.g., "1s")
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var apiAddress string
	var requestTimeout time.Duration
	var storageBackend string
	var storageDSN string
	var keyringService string
	var deviceSecret string
	var tickInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Remote API base address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&storageBackend, "storage-backend", "", "Credential cache backend (sqlite|keyring|memory)")
	flag.StringVar(&storageDSN, "d", "", "Credential cache SQLite file path")
	flag.StringVar(&keyringService, "keyring-service", "", "OS keyring service name")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device secret for saved-password encryption")
	flag.DurationVar(&tickInterval, "tick-interval", 0, "Countdown tick interval (e.g., 1s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		App: App{
			DeviceSecret: deviceSecret,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend:        storageBackend,
			DSN:            storageDSN,
			KeyringService: keyringService,
		},
		Session: Session{
			TickInterval: tickInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

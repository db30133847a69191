package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONClientConfig mirrors [ClientConfig] with JSON tags and string-friendly
// duration fields for the optional config file.
type JSONClientConfig struct {
	App struct {
		DeviceSecret string `json:"device_secret"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Backend        string `json:"backend"`
		DSN            string `json:"dsn"`
		KeyringService string `json:"keyring_service"`
	} `json:"storage,omitempty"`

	Session struct {
		TickInterval Duration `json:"tick_interval"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONClientConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		App: App{
			DeviceSecret: jsonCfg.App.DeviceSecret,
			Version:      jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Backend:        jsonCfg.Storage.Backend,
			DSN:            jsonCfg.Storage.DSN,
			KeyringService: jsonCfg.Storage.KeyringService,
		},
		Session: Session{
			TickInterval: time.Duration(jsonCfg.Session.TickInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DraftID is the draft opened by the editor; empty means "new draft".
	DraftID string
	// LogFile is the rotating client log file.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the draft-save server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local draft queue.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientAutosave carries the autosave engine timings.
type ClientAutosave struct {
	Debounce  time.Duration
	RetryBase time.Duration
	RetryMax  time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Autosave ClientAutosave
	Workers  ClientWorkers
}

// ServerConfig is the configuration view of the reference draft-save server.
type ServerConfig struct {
	Version string
	Server  Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Version: cfg.App.Version, Server: cfg.Server}
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DraftID: cfg.App.DraftID,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Autosave: ClientAutosave{
			Debounce:  cfg.Autosave.Debounce,
			RetryBase: cfg.Autosave.RetryBase,
			RetryMax:  cfg.Autosave.RetryMax,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}
}

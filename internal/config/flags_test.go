package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-s", "http://drafts.local",
		"-d", "./drafts.db",
		"-c", "/etc/drafts.json",
		"-draft", "d1",
		"-log-file", "/tmp/c.log",
		"-version", "0.1.0",
		"-request-timeout", "7s",
		"-debounce", "500ms",
		"-retry-base", "2s",
		"-retry-max", "20s",
		"-probe-interval", "4s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://drafts.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "./drafts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/drafts.json", cfg.JSONFilePath)
	assert.Equal(t, "d1", cfg.App.DraftID)
	assert.Equal(t, "/tmp/c.log", cfg.App.LogFile)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Autosave.Debounce)
	assert.Equal(t, 2*time.Second, cfg.Autosave.RetryBase)
	assert.Equal(t, 20*time.Second, cfg.Autosave.RetryMax)
	assert.Equal(t, 4*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
}

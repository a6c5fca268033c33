// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvKeys = []string{
	"CONFIG",
	"APP_VERSION", "APP_DRAFT_ID", "APP_LOG_FILE",
	"STORAGE_DB_DATABASE_URI",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
	"AUTOSAVE_DEBOUNCE", "AUTOSAVE_RETRY_BASE", "AUTOSAVE_RETRY_MAX",
	"WORKERS_PROBE_INTERVAL",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":  "1.2.3",
		"APP_DRAFT_ID": "d1",
		"APP_LOG_FILE": "/tmp/client.log",

		"STORAGE_DB_DATABASE_URI": "/var/lib/drafts.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"AUTOSAVE_DEBOUNCE":   "750ms",
		"AUTOSAVE_RETRY_BASE": "2s",
		"AUTOSAVE_RETRY_MAX":  "1m",

		"WORKERS_PROBE_INTERVAL": "3s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "d1", cfg.App.DraftID)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "/var/lib/drafts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Autosave.Debounce)
	assert.Equal(t, 2*time.Second, cfg.Autosave.RetryBase)
	assert.Equal(t, time.Minute, cfg.Autosave.RetryMax)
	assert.Equal(t, 3*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"AUTOSAVE_DEBOUNCE": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range allEnvKeys {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

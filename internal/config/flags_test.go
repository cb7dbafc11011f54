package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid ip", input: "0.0.0.0:80", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":3000", expectedAddr: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname is not an ip", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-api-url", "http://flag:1",
		"-a", "127.0.0.1:8080",
		"-request-timeout", "10s",
		"-log-level", "warn",
		"-log-file", "tui.log",
		"-c", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://flag:1", cfg.Runtime.APIURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "tui.log", cfg.Log.File)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "other.json"})

	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

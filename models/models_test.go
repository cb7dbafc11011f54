package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-19", "abc1234", "https://api.example.com")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc1234", info.BuildCommit())
	assert.Equal(t, "https://api.example.com", info.APIURL())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Empty(t, info.BuildVersion())
	assert.Empty(t, info.APIURL())
}

func TestRuntimeEnv_Values(t *testing.T) {
	tests := []struct {
		name string
		env  RuntimeEnv
		want map[string]string
	}{
		{
			name: "configured api url",
			env:  RuntimeEnv{APIURL: "http://backend:8080"},
			want: map[string]string{"API_URL": "http://backend:8080"},
		},
		{
			name: "empty api url is omitted",
			env:  RuntimeEnv{},
			want: map[string]string{},
		},
		{
			name: "whitespace is kept verbatim",
			env:  RuntimeEnv{APIURL: "  "},
			want: map[string]string{"API_URL": "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.Values())
		})
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  map[string]string{"ENV": ""},
			want: Config{Env: "DEV", AppName: "Gradebook", Build: "dev", DataFile: "students.json", LogLevel: "warn"},
		},
		{
			name: "test mode",
			env:  map[string]string{"ENV": "test"},
			want: Config{Env: "TEST", AppName: "Gradebook", Build: "dev", TestMode: true, DataFile: "students.json", LogLevel: "warn"},
		},
		{
			name: "prefixed overrides",
			env: map[string]string{
				"ENV":           "PROD",
				"PROD_DATAFILE": "/var/lib/roster.json",
				"PROD_LOGLEVEL": "info",
				"PROD_DEBUG":    "true",
				"DEV_DATAFILE":  "ignored.json",
			},
			want: Config{Env: "PROD", AppName: "Gradebook", Build: "dev", Debug: true, DataFile: "/var/lib/roster.json", LogLevel: "info"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := NewConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

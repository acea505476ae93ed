package logging

import (
	"path/filepath"
	"testing"

	"github.com/happyhipo/propcost/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		conf      config.LoggingConfig
		override  string
		expectErr bool
	}{
		{name: "Defaults", conf: config.LoggingConfig{}, expectErr: false},
		{name: "Console debug", conf: config.LoggingConfig{Level: "debug", Format: "console"}, expectErr: false},
		{name: "Warning alias", conf: config.LoggingConfig{Level: "warning"}, expectErr: false},
		{name: "Override wins", conf: config.LoggingConfig{Level: "bogus"}, override: "error", expectErr: false},
		{name: "Invalid level", conf: config.LoggingConfig{Level: "loud"}, expectErr: true},
		{name: "Invalid format", conf: config.LoggingConfig{Format: "xml"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.conf, tt.override)
			if (err != nil) != tt.expectErr {
				t.Fatalf("NewLogger() error = %v, expectErr = %v", err, tt.expectErr)
			}
			if !tt.expectErr && logger == nil {
				t.Error("NewLogger() returned nil logger without error")
			}
		})
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "propcost.log")
	logger, err := NewLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("NewLogger() unexpected error: %v", err)
	}
	logger.Info("test entry")
	_ = logger.Sync()
}

//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	rotating := func(mutate func(s *LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/rsa/app.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		if mutate != nil {
			mutate(s)
		}
		return s
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"valid console logger", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"valid file logger with rotation", rotating(nil), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"missing log type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"invalid log type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file logger missing file path", rotating(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger max size too small", rotating(func(s *LoggerSettings) { s.MaxSize = 0 }), true},
		{"file logger max size too large", rotating(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger too many backups", rotating(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"file logger max age out of range", rotating(func(s *LoggerSettings) { s.MaxAge = 400 }), true},
		{"console logger ignores rotation settings", rotating(func(s *LoggerSettings) { s.LogType = LogTypeConsole; s.MaxSize = 0 }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}

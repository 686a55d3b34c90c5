package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 3, cfg.Scenario.Defaults)
	assert.Equal(t, RecordConfig{T: 3.15, X: 2, Y: "moo"}, cfg.Scenario.Extra)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "normal", cfg.Logging.ConsoleLogger.Level)
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
scenario:
  extra:
    y: zoo
output:
  format: yaml
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "zoo", cfg.Scenario.Extra.Y)
	// untouched values keep their defaults
	assert.Equal(t, 3.15, cfg.Scenario.Extra.T)
	assert.Equal(t, 2, cfg.Scenario.Extra.X)
	assert.Equal(t, 3, cfg.Scenario.Defaults)
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\noutput:\n  format: text\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad format", "output:\n  format: json\n"},
		{"bad level", "logging:\n  console:\n    level: loud\n"},
		{"negative defaults", "scenario:\n  defaults: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: text")

	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	out, err := Dump(cfg)
	require.NoError(t, err)

	// a dump must load back to the same configuration
	reloaded, err := LoadConfiguration(writeConfig(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugFlag bool
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"none", false, false, false, false},
		{"normal", false, false, true, true},
		{"debug", false, true, true, true},
		{"none", true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: tt.level}}
			log := conf.build(zapcore.AddSync(io.Discard), zapcore.AddSync(io.Discard), tt.debugFlag)

			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantInfo, log.Core().Enabled(zapcore.InfoLevel))
			assert.Equal(t, tt.wantError, log.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestLoggerSplitsStreams(t *testing.T) {
	var out, errOut strings.Builder
	conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: "normal"}}
	log := conf.build(zapcore.AddSync(&out), zapcore.AddSync(&errOut), false)

	log.Info("to stdout")
	log.Error("to stderr")

	assert.Contains(t, out.String(), "to stdout")
	assert.NotContains(t, out.String(), "to stderr")
	assert.Contains(t, errOut.String(), "to stderr")
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ModePrompt, cfg.Mode)
	assert.Equal(t, "shallow", cfg.Join)
	assert.True(t, cfg.AutoExpand)
	assert.Equal(t, "A", cfg.ExpandAllToken)
	assert.Equal(t, "q", cfg.QuitToken)
	assert.Empty(t, cfg.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFileKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
mode: tui
join: recursive
auto_expand: false
expand_all_token: E
log_file: /tmp/treefy.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeTUI, cfg.Mode)
	assert.Equal(t, "recursive", cfg.Join)
	assert.False(t, cfg.AutoExpand)
	assert.Equal(t, "E", cfg.ExpandAllToken)
	assert.Equal(t, "q", cfg.QuitToken)
	assert.Equal(t, "/tmp/treefy.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mode: tui\njoin: none\n")
	t.Setenv("TREEFY_MODE", "prompt")
	t.Setenv("TREEFY_AUTO_EXPAND", "false")
	t.Setenv("TREEFY_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModePrompt, cfg.Mode)
	assert.Equal(t, "none", cfg.Join)
	assert.False(t, cfg.AutoExpand)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open config file")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("too large", func(t *testing.T) {
		path := writeConfig(t, "mode: prompt\n#"+strings.Repeat("x", maxConfigFileSize))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "mode: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "tui", mutate: func(c *Config) { c.Mode = ModeTUI }},
		{name: "upper level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "word tokens", mutate: func(c *Config) { c.ExpandAllToken = "all"; c.QuitToken = "quit" }},
		{name: "bad mode", mutate: func(c *Config) { c.Mode = "gui" }, wantErr: "invalid mode"},
		{name: "bad join", mutate: func(c *Config) { c.Join = "deep" }, wantErr: "invalid join"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log_level"},
		{name: "empty token", mutate: func(c *Config) { c.ExpandAllToken = "" }, wantErr: "must not be empty"},
		{name: "spaced token", mutate: func(c *Config) { c.QuitToken = " q" }, wantErr: "surrounding spaces"},
		{name: "numeric token", mutate: func(c *Config) { c.ExpandAllToken = "0" }, wantErr: "node number"},
		{name: "same tokens", mutate: func(c *Config) { c.QuitToken = "A" }, wantErr: "must differ"},
		{
			name:    "tui word token",
			mutate:  func(c *Config) { c.Mode = ModeTUI; c.QuitToken = "quit" },
			wantErr: "single-character",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

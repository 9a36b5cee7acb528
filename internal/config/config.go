// Package config provides configuration loading for treefy.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	EnvPrefix = "TREEFY_"

	ModePrompt = "prompt"
	ModeTUI    = "tui"
)

type Config struct {
	// prompt|tui
	Mode string `koanf:"mode"`
	// none|shallow|recursive
	Join           string `koanf:"join"`
	AutoExpand     bool   `koanf:"auto_expand"`
	ExpandAllToken string `koanf:"expand_all_token"`
	QuitToken      string `koanf:"quit_token"`
	LogFile        string `koanf:"log_file"`
	LogLevel       string `koanf:"log_level"`
}

func Default() *Config {
	return &Config{
		Mode:           ModePrompt,
		Join:           "shallow",
		AutoExpand:     true,
		ExpandAllToken: "A",
		QuitToken:      "q",
		LogLevel:       "info",
	}
}

// Load reads configuration from an optional YAML file, then overrides it
// with TREEFY_* environment variables. Missing keys keep their defaults.
//
//	TREEFY_MODE=tui          -> mode
//	TREEFY_AUTO_EXPAND=false -> auto_expand
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModePrompt, ModeTUI:
	default:
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModePrompt, ModeTUI)
	}
	switch c.Join {
	case "none", "shallow", "recursive":
	default:
		return fmt.Errorf("invalid join %q: must be none, shallow or recursive", c.Join)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	if err := validateToken("expand_all_token", c.ExpandAllToken); err != nil {
		return err
	}
	if err := validateToken("quit_token", c.QuitToken); err != nil {
		return err
	}
	if c.ExpandAllToken == c.QuitToken {
		return fmt.Errorf("expand_all_token and quit_token must differ, both are %q", c.QuitToken)
	}
	if c.Mode == ModeTUI {
		if utf8.RuneCountInString(c.ExpandAllToken) != 1 || utf8.RuneCountInString(c.QuitToken) != 1 {
			return fmt.Errorf("tui mode needs single-character tokens, got %q and %q", c.ExpandAllToken, c.QuitToken)
		}
	}
	return nil
}

// Tokens must not parse as node numbers, those are reserved for toggling.
func validateToken(name, token string) error {
	if token == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	if strings.TrimSpace(token) != token {
		return fmt.Errorf("%s %q must not have surrounding spaces", name, token)
	}
	if _, err := strconv.Atoi(token); err == nil {
		return fmt.Errorf("%s %q would be read as a node number", name, token)
	}
	return nil
}

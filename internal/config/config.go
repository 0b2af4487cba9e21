package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Environment overrides, applied after the config file is read.
const (
	EnvDataDir  = "PUSHUPS_DATA_DIR"
	EnvBackend  = "PUSHUPS_BACKEND"
	EnvLogLevel = "PUSHUPS_LOG_LEVEL"
	EnvRestRule = "PUSHUPS_REST_RULE"
)

// Config is the user's pushups configuration, stored as TOML.
type Config struct {
	Backend  string `toml:"backend"`
	DataDir  string `toml:"data_dir"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	RestRule string `toml:"rest_rule"`
}

// Dir returns the global pushups directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".pushups")
}

// Path returns the path to config.toml.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.toml")
}

// Default returns the configuration used when no file exists.
func Default(homeDir string) *Config {
	return &Config{
		Backend:  BackendFile,
		DataDir:  Dir(homeDir),
		LogLevel: "info",
		LogFile:  filepath.Join(Dir(homeDir), "pushups.log"),
	}
}

// LoadDotEnv loads .env files from the pushups directory and the working
// directory, if present. Variables already set in the environment win.
func LoadDotEnv(homeDir string) error {
	for _, p := range []string{filepath.Join(Dir(homeDir), ".env"), ".env"} {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Read reads config.toml on top of the defaults and applies environment
// overrides. A missing file is not an error.
func Read(homeDir string) (*Config, error) {
	cfg, err := readFile(homeDir)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile is Read without environment overrides, for editing the file.
func ReadFile(homeDir string) (*Config, error) {
	cfg, err := readFile(homeDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(homeDir string) (*Config, error) {
	cfg := Default(homeDir)
	_, err := toml.DecodeFile(Path(homeDir), cfg)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// Write writes cfg to config.toml, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	f, err := os.Create(Path(homeDir))
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvRestRule); v != "" {
		c.RestRule = v
	}
}

// Validate checks the backend and log level.
func (c *Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend %q (expected %s or %s)", c.Backend, BackendFile, BackendSQLite))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}
	if c.DataDir == "" {
		problems = append(problems, "data_dir must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// settable maps config keys to their fields.
func (c *Config) settable() map[string]*string {
	return map[string]*string{
		"backend":   &c.Backend,
		"data_dir":  &c.DataDir,
		"log_level": &c.LogLevel,
		"log_file":  &c.LogFile,
		"rest_rule": &c.RestRule,
	}
}

// Keys returns the names accepted by Get and Set.
func Keys() []string {
	keys := make([]string, 0, 5)
	for k := range (&Config{}).settable() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a config key.
func (c *Config) Get(key string) (string, error) {
	p, ok := c.settable()[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return *p, nil
}

// Set assigns a config key and validates the result. On error c is unchanged.
func (c *Config) Set(key, value string) error {
	p, ok := c.settable()[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	old := *p
	*p = value
	if err := c.Validate(); err != nil {
		*p = old
		return err
	}
	return nil
}

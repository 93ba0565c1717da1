// package config stores kubeconn's own settings, such as how long exec
// credential plugins may run and how resolved connection options are printed.
// It is unrelated to the kubeconfig being resolved.
package config

import (
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/common-fate/kubeconn/internal/build"
)

const (
	// permission for user to read/write.
	USER_READ_WRITE_PERM = 0644
)

const (
	// permission for user to read/write/execute.
	USER_READ_WRITE_EXECUTE_PERM = 0700
)

// Output formats for resolved connection options.
const (
	OutputJSON   = "json"
	OutputYAML   = "yaml"
	OutputDotenv = "dotenv"
)

type Config struct {
	// ExecTimeout bounds exec credential plugins, e.g. '30s'.
	// When empty a plugin may run until it exits.
	ExecTimeout string `toml:",omitempty"`

	// DefaultOutput is used by 'kubeconn options' when --output is not passed.
	DefaultOutput string `toml:",omitempty"`

	// Group overrides the API group reported in connection options.
	Group string `toml:",omitempty"`
}

// NewDefaultConfig returns a config with defaults populated
func NewDefaultConfig() Config {
	return Config{
		DefaultOutput: OutputJSON,
	}
}

// ExecTimeoutDuration parses ExecTimeout. It returns zero when no timeout is set.
func (c *Config) ExecTimeoutDuration() (time.Duration, error) {
	if c.ExecTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ExecTimeout)
	if err != nil {
		return 0, errors.Wrap(err, "parsing ExecTimeout")
	}
	if d < 0 {
		return 0, errors.Errorf("ExecTimeout must not be negative: %s", c.ExecTimeout)
	}
	return d, nil
}

// Validate checks the settings which kubeconn can't use as free text.
func (c *Config) Validate() error {
	if _, err := c.ExecTimeoutDuration(); err != nil {
		return err
	}
	switch c.DefaultOutput {
	case "", OutputJSON, OutputYAML, OutputDotenv:
	default:
		return errors.Errorf("DefaultOutput must be one of %s, %s or %s, got %q", OutputJSON, OutputYAML, OutputDotenv, c.DefaultOutput)
	}
	return nil
}

// checks and or creates the config folder on startup
func SetupConfigFolder() error {
	folder, err := ConfigFolder()
	if err != nil {
		return err
	}
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		err := os.MkdirAll(folder, USER_READ_WRITE_EXECUTE_PERM)
		if err != nil {
			return err
		}
	}
	return nil
}

func ConfigFolder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, build.ConfigFolderName)
	if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); !pathExists(configDir) && xdgConfigDir != "" {
		configDir = filepath.Join(xdgConfigDir, "kubeconn")
	}

	return configDir, nil
}

func ConfigFilePath() (string, error) {
	folder, err := ConfigFolder()
	if err != nil {
		return "", err
	}
	return path.Join(folder, "config"), nil
}

// pathExists checks if a given file exists and returns true or false
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	configFilePath, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configFilePath)
}

// LoadFile reads settings from path, returning defaults when the file doesn't exist.
func LoadFile(configFilePath string) (*Config, error) {
	c := NewDefaultConfig()

	file, err := os.Open(configFilePath)
	if os.IsNotExist(err) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	_, err = toml.NewDecoder(file).Decode(&c)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", configFilePath)
	}
	return &c, nil
}

func (c *Config) Save() error {
	configFilePath, err := ConfigFilePath()
	if err != nil {
		return err
	}
	return c.SaveFile(configFilePath)
}

func (c *Config) SaveFile(configFilePath string) error {
	file, err := os.OpenFile(configFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, USER_READ_WRITE_PERM)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(c)
}

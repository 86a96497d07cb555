package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds file-backed defaults for the CLI. Values are read from
// partbench.toml and overridden by command-line flags.
type Config struct {
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr  string      `toml:"addr"`
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig selects and configures the redis craft store. When Addr is
// empty the server uses the in-memory store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RenderConfig configures the visualize command defaults.
type RenderConfig struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Render: RenderConfig{Format: "svg"},
	}
}

// loadConfig reads the TOML config file at path, or from the default
// location (~/.config/partbench/partbench.toml) when path is empty. A
// missing file is not an error - defaults are returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", appName, appName+".toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

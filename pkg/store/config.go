package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the database location from a .memovault config file
// or MEMOVAULT_ environment variables, defaulting to ~/.memovault.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.memovault.db")
	viper.SetConfigName(".memovault") // .yaml is implicit
	viper.SetEnvPrefix("MEMOVAULT")
	viper.AutomaticEnv()

	if override := os.Getenv("MEMOVAULT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// StaticConfig returns a Config pinned to the given base path. Intended
// for tests.
func StaticConfig(path string) Config {
	return &fileConfig{Path: path}
}

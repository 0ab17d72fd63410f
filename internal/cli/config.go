package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fcactx/pkg/errors"
	fcaio "github.com/matzehuels/fcactx/pkg/io"
)

// Config holds user defaults read from config.toml.
type Config struct {
	// DefaultFormat is the output format when -f is not given.
	DefaultFormat string `toml:"default_format"`

	// Verbose enables debug logging as if --verbose was passed.
	Verbose bool `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{DefaultFormat: fcaio.FormatBurmeister}
}

// configPath returns the config file location using the XDG standard
// (~/.config/fcactx/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config at path on top of the defaults. A missing file
// yields the defaults unless the path was given explicitly. Keys that do not
// belong to Config are returned so the caller can warn about them.
func loadConfig(path string, explicit bool) (Config, []string, error) {
	cfg := defaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return defaultConfig(), nil, nil
		}
		return defaultConfig(), nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "config %s", path)
	}

	cfg.DefaultFormat = strings.TrimSpace(cfg.DefaultFormat)
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = fcaio.FormatBurmeister
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

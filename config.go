package elfhead

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
	Wrap   bool   `yaml:"wrap"`
}

func DefaultConfig() Config {
	return Config{
		Format: FormatText,
		Color:  true,
		Wrap:   true,
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their default value. An empty file name gives the defaults.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	if file == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		return cfg, &IOError{File: file, Err: errors.Wrap(err, "read config")}
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "%s: decode config", file)
	}
	return cfg, cfg.Check()
}

func (c Config) Check() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: unsupported output format %q", ErrUsage, c.Format)
	}
}

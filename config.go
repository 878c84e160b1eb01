package throttle

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid throttle config")

// Config is the file form of a throttle, e.g.
//
//	name: downstream
//	timeout: 1s
//	threshold: 22
type Config struct {
	Name      string        `yaml:"name"`
	Timeout   time.Duration `yaml:"timeout"`
	Threshold int           `yaml:"threshold"`
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0, got %d", ErrInvalidConfig, c.Threshold)
	}
	return nil
}

// Options converts the config into throttle Options. Clock, Logger and
// Metrics are left for the caller to fill in.
func (c Config) Options() Options {
	return Options{
		Name:      c.Name,
		Timeout:   c.Timeout,
		Threshold: c.Threshold,
	}
}

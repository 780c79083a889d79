package conversion

import (
	"os"
	"strconv"

	"github.com/Station-Manager/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvMaxNestingDepth  = "CONVERSION_MAX_NESTING_DEPTH"
	EnvSerializedSearch = "CONVERSION_SERIALIZED_SEARCH"
	EnvHuntSearch       = "CONVERSION_HUNT_SEARCH"
	EnvFactoryStrict    = "CONVERSION_FACTORY_STRICT"
)

// Config is the file form of the engine options.
type Config struct {
	MaxNestingDepth  int   `yaml:"max_nesting_depth"`
	SerializedSearch bool  `yaml:"serialized_search"`
	HuntSearch       *bool `yaml:"hunt_search"` // nil keeps the fallback enabled
	FactoryStrict    *bool `yaml:"factory_strict"`
}

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(data []byte) (Config, error) {
	const op errors.Op = "conversion.ParseConfig"
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.New(op).Err(err).Msg("Invalid conversion config.")
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file (skipped when path is empty) and applies environment
// overrides. Variables found in envFiles are used when the process environment lacks them.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	const op errors.Op = "conversion.LoadConfig"
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.New(op).Err(err)
		}
		if cfg, err = ParseConfig(data); err != nil {
			return Config{}, errors.New(op).Err(err)
		}
	}
	env := map[string]string{}
	if len(envFiles) > 0 {
		fileEnv, err := godotenv.Read(envFiles...)
		if err != nil {
			return Config{}, errors.New(op).Err(err)
		}
		env = fileEnv
	}
	for _, key := range []string{EnvMaxNestingDepth, EnvSerializedSearch, EnvHuntSearch, EnvFactoryStrict} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, errors.New(op).Err(err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	const op errors.Op = "conversion.Config.applyEnv"
	if v, ok := env[EnvMaxNestingDepth]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(op).Errorf("%s must be an integer, got %q", EnvMaxNestingDepth, v)
		}
		c.MaxNestingDepth = n
	}
	if v, ok := env[EnvSerializedSearch]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(op).Errorf("%s must be a boolean, got %q", EnvSerializedSearch, v)
		}
		c.SerializedSearch = b
	}
	if v, ok := env[EnvHuntSearch]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(op).Errorf("%s must be a boolean, got %q", EnvHuntSearch, v)
		}
		c.HuntSearch = &b
	}
	if v, ok := env[EnvFactoryStrict]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(op).Errorf("%s must be a boolean, got %q", EnvFactoryStrict, v)
		}
		c.FactoryStrict = &b
	}
	return nil
}

// Options converts the config into engine options.
func (c Config) Options() []Option {
	opts := []Option{WithSerializedSearch(c.SerializedSearch)}
	if c.MaxNestingDepth > 0 {
		opts = append(opts, WithMaxNestingDepth(c.MaxNestingDepth))
	}
	if c.HuntSearch != nil {
		opts = append(opts, WithHuntSearch(*c.HuntSearch))
	}
	if c.FactoryStrict != nil {
		opts = append(opts, WithFactoryStrict(*c.FactoryStrict))
	}
	return opts
}

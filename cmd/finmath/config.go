package main

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/calebcase/finmath"
)

// Config is the tool configuration.
type Config struct {
	Log struct {
		Level       string
		Development bool
	}

	// Denoms maps a denom to its decimals. Keys are lower case.
	Denoms map[string]uint8
}

// LoadConfig reads path, or finmath.yaml from the working directory when path
// is empty. Any key can be overridden from the environment with the FINMATH_
// prefix (e.g. FINMATH_LOG_LEVEL).
func LoadConfig(v *viper.Viper, path string) (c Config, err error) {
	defer finmath.InvalidConfiguration.WrapP(&err)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("denoms", map[string]uint8{})

	v.SetEnvPrefix("finmath")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)

		err = v.ReadInConfig()
		if err != nil {
			return c, err
		}
	} else {
		v.SetConfigName("finmath")
		v.AddConfigPath(".")

		var notFound viper.ConfigFileNotFoundError

		err = v.ReadInConfig()
		if err != nil && !errors.As(err, &notFound) {
			return c, err
		}
	}

	c.Log.Level = v.GetString("log.level")
	c.Log.Development = v.GetBool("log.development")

	err = v.UnmarshalKey("denoms", &c.Denoms)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks the log level.
func (c Config) Validate() error {
	_, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return finmath.InvalidConfiguration.Wrap(err)
	}

	return nil
}

// Decimals returns the configured decimals for denom.
func (c Config) Decimals(denom string) (uint8, error) {
	d, ok := c.Denoms[strings.ToLower(denom)]
	if !ok {
		return 0, finmath.InvalidConfiguration.New("no decimals configured for %q", denom)
	}

	return d, nil
}

// Logger builds the logger described by c. Logs go to stderr.
func (c Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, finmath.InvalidConfiguration.Wrap(err)
	}

	zc.Level = level

	return zc.Build()
}

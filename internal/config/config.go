// Package config loads application settings from configs/config.yml,
// RECIPES_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	envPrefix         = "RECIPES"
	defaultConfigPath = "configs"
	defaultConfigName = "config"
)

var (
	ErrMissingSigningKey = errors.New("auth.signing_key is required")
	ErrUnknownDriver     = errors.New("unknown db.driver")
)

type Config struct {
	Port   string `mapstructure:"port"`
	Log    Log    `mapstructure:"log"`
	DB     DB     `mapstructure:"db"`
	Auth   Auth   `mapstructure:"auth"`
	Server Server `mapstructure:"server"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// DB selects and configures the store backend.
type DB struct {
	Driver        string `mapstructure:"driver"`
	Path          string `mapstructure:"path"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

type Auth struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type Server struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// RegisterFlags adds the flags shared by every binary.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to config file (default: configs/config.yml)")
	fs.String("port", "", "HTTP port to listen on")
	fs.String("log-level", "", "log level: debug|info|warn|error")
	fs.String("db-driver", "", "store backend: sqlite|mongo")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "recipes.db")
	v.SetDefault("db.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("db.mongo_database", "recipes")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load builds the configuration. fs may be nil; when set, flags that were
// explicitly passed override file and environment values.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if err := readConfigFile(v, flagString(fs, "config")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings no default can supply.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return ErrMissingSigningKey
	}
	switch c.DB.Driver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DB.Driver)
	}
	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"port":      "port",
		"log.level": "log-level",
		"db.driver": "db-driver",
	} {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// readConfigFile reads an explicit file, or configs/config.yml when present.
// A missing default file is not an error; env and defaults still apply.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath(defaultConfigPath)
	v.SetConfigName(defaultConfigName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func flagString(fs *pflag.FlagSet, name string) string {
	if fs == nil {
		return ""
	}
	s, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return s
}

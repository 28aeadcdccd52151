// Package config resolves the operator CLI settings from flags, BITACORA_*
// environment variables and an optional config file, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bitacora_materiales/internal/domain/entities"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BITACORA"

	KeyAPIURL   = "api_url"
	KeyBitacora = "bitacora"
	KeyOrigen   = "origen"
	KeyMode     = "mode"
	KeyTimeout  = "timeout"
	KeyDebounce = "debounce"
	KeyLogFile  = "log_file"
	KeyLogLevel = "log_level"

	ModeSingle = "single"
	ModeCart   = "cart"
)

var (
	ErrInvalidMode   = errors.New("mode must be single or cart")
	ErrInvalidAPIURL = errors.New("api_url is required")
)

type Config struct {
	APIURL   string        `mapstructure:"api_url"`
	Bitacora string        `mapstructure:"bitacora"`
	Origen   string        `mapstructure:"origen"`
	Mode     string        `mapstructure:"mode"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Debounce time.Duration `mapstructure:"debounce"`
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and env binding set up.
// Callers bind their flags on top of it.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAPIURL, "http://localhost:8080")
	v.SetDefault(KeyBitacora, "")
	v.SetDefault(KeyOrigen, string(entities.DefaultOrigin))
	v.SetDefault(KeyMode, ModeSingle)
	v.SetDefault(KeyTimeout, 15*time.Second)
	v.SetDefault(KeyDebounce, 300*time.Millisecond)
	v.SetDefault(KeyLogFile, "bitacora.log")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and validates the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.Bitacora = strings.TrimSpace(cfg.Bitacora)
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))

	if cfg.APIURL == "" {
		return Config{}, ErrInvalidAPIURL
	}
	if cfg.Mode != ModeSingle && cfg.Mode != ModeCart {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
	o, err := entities.ParseOrigin(cfg.Origen)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %q", err, cfg.Origen)
	}
	cfg.Origen = string(o)
	return cfg, nil
}

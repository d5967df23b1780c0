package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"pos/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config is the server configuration. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	HTTPHost                string
	HTTPPort                string
	RealtimeEnabled         bool
	StrictStatusTransitions bool
	KeepaliveSchedule       string
	SummarySchedule         string
	ClientQueueSize         int
	LogLevel                slog.Level
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		HTTPHost:                "0.0.0.0",
		HTTPPort:                "3001",
		RealtimeEnabled:         true,
		StrictStatusTransitions: false,
		KeepaliveSchedule:       "@every 25s",
		SummarySchedule:         "@every 1m",
		ClientQueueSize:         32,
		LogLevel:                slog.LevelInfo,
	}
}

// Environment variables read by LoadConfig. Viper maps each key to the
// upper-case variable of the same name.
const (
	keyHTTPHost                = "http_host"
	keyHTTPPort                = "http_port"
	keyRealtimeEnabled         = "realtime_enabled"
	keyStrictStatusTransitions = "strict_status_transitions"
	keyKeepaliveSchedule       = "keepalive_schedule"
	keySummarySchedule         = "summary_schedule"
	keyClientQueueSize         = "client_queue_size"
	keyLogLevel                = "log_level"
)

// LoadConfig loads envFile when it exists and reads the configuration from
// the environment. Variables already set in the environment win over the
// file. Every malformed variable is reported.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	def := DefaultConfig()
	v := viper.New()
	v.SetDefault(keyHTTPHost, def.HTTPHost)
	v.SetDefault(keyHTTPPort, def.HTTPPort)
	v.SetDefault(keyRealtimeEnabled, def.RealtimeEnabled)
	v.SetDefault(keyStrictStatusTransitions, def.StrictStatusTransitions)
	v.SetDefault(keyKeepaliveSchedule, def.KeepaliveSchedule)
	v.SetDefault(keySummarySchedule, def.SummarySchedule)
	v.SetDefault(keyClientQueueSize, def.ClientQueueSize)
	v.SetDefault(keyLogLevel, def.LogLevel.String())
	v.AutomaticEnv()

	cfg := Config{
		HTTPHost:          v.GetString(keyHTTPHost),
		HTTPPort:          v.GetString(keyHTTPPort),
		KeepaliveSchedule: v.GetString(keyKeepaliveSchedule),
		SummarySchedule:   v.GetString(keySummarySchedule),
	}

	if err := errors.Join(
		boolVar(v, keyRealtimeEnabled, &cfg.RealtimeEnabled),
		boolVar(v, keyStrictStatusTransitions, &cfg.StrictStatusTransitions),
		intVar(v, keyClientQueueSize, &cfg.ClientQueueSize),
		levelVar(v, keyLogLevel, &cfg.LogLevel),
	); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return c.HTTPHost + ":" + c.HTTPPort
}

// boolVar and intVar use checked casts since viper's GetBool and GetInt
// turn malformed values into zero.
func boolVar(v *viper.Viper, key string, dst *bool) error {
	parsed, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return invalidVar(key, err)
	}
	*dst = parsed
	return nil
}

func intVar(v *viper.Viper, key string, dst *int) error {
	parsed, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return invalidVar(key, err)
	}
	*dst = parsed
	return nil
}

func levelVar(v *viper.Viper, key string, dst *slog.Level) error {
	if err := dst.UnmarshalText([]byte(v.GetString(key))); err != nil {
		return invalidVar(key, err)
	}
	return nil
}

func invalidVar(key string, err error) error {
	return errs.NewValueIsInvalidErrorWithCause(strings.ToUpper(key), err)
}

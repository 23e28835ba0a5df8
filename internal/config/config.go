package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyPort            = "port"
	KeyEnv             = "app_env"
	KeyAllowedOrigins  = "allowed_origins"
	KeyStaticDir       = "static_dir"
	KeyLogLevel        = "log_level"
	KeySimulateLatency = "simulate_latency"
	KeyShutdownTimeout = "shutdown_timeout"
)

type Config struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	StaticDir       string
	LogLevel        string
	SimulateLatency bool
	ShutdownTimeout time.Duration
}

// Load reads the optional .env files, then resolves every key from flags,
// environment and defaults, in that order. Flags are matched by key name.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyPort, "3000")
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyAllowedOrigins, "*")
	v.SetDefault(KeyStaticDir, "public")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySimulateLatency, true)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	cfg := &Config{
		Port:            v.GetString(KeyPort),
		Env:             v.GetString(KeyEnv),
		AllowedOrigins:  splitList(v.GetString(KeyAllowedOrigins)),
		StaticDir:       v.GetString(KeyStaticDir),
		LogLevel:        v.GetString(KeyLogLevel),
		SimulateLatency: v.GetBool(KeySimulateLatency),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
	}

	if cfg.Port == "" {
		return nil, errors.New("port must not be empty")
	}
	if err := validateOrigins(cfg.AllowedOrigins); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// validateOrigins accepts "*" or absolute http(s) origins.
func validateOrigins(origins []string) error {
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid allowed origin %q: want scheme://host, e.g. https://%s", origin, origin)
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

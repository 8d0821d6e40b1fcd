package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"chi-calculator/internal/presentation"
)

// ErrNonPositiveDelay rejects a zero or negative drawer close delay.
var ErrNonPositiveDelay = errors.New("must be positive")

// Config is the runtime configuration shared by the HTTP and terminal binaries.
type Config struct {
	Addr             string
	LogLevel         string
	LogFile          string
	Theme            presentation.Theme
	DrawerCloseDelay time.Duration
	Telemetry        bool
	ServiceName      string
}

// Load reads defaults, then an optional file named by CALCULATOR_CONFIG, then
// CALCULATOR_* environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("theme", string(presentation.ThemeDark))
	v.SetDefault("drawer_close_delay", presentation.DefaultCloseDelay)
	v.SetDefault("telemetry", true)
	v.SetDefault("service_name", defaultServiceName())

	v.SetEnvPrefix("calculator")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CALCULATOR_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	theme, err := presentation.ParseTheme(v.GetString("theme"))
	if err != nil {
		return Config{}, fmt.Errorf("config theme: %w", err)
	}

	delay := v.GetDuration("drawer_close_delay")
	if delay <= 0 {
		return Config{}, fmt.Errorf("config drawer_close_delay: %w", ErrNonPositiveDelay)
	}

	return Config{
		Addr:             v.GetString("addr"),
		LogLevel:         v.GetString("log_level"),
		LogFile:          v.GetString("log_file"),
		Theme:            theme,
		DrawerCloseDelay: delay,
		Telemetry:        v.GetBool("telemetry"),
		ServiceName:      v.GetString("service_name"),
	}, nil
}

func defaultServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "calculator"
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"banner-buddy/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the session storage connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Session holds the display session lifecycle settings.
	Session SessionConfig `mapstructure:",squash"`

	// BannerSource holds the banner record provider settings.
	BannerSource BannerSourceConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy used by the provider.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Display holds the individually-set display values.
	Display DisplayConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// SessionConfig controls how long display sessions and their dismissal memory live.
type SessionConfig struct {
	// TTL is the idle lifetime of a session and of its stored dismissals.
	TTL time.Duration `mapstructure:"SESSION_TTL" default:"30m"`
	// MaxSessions bounds the number of concurrently mounted sessions.
	MaxSessions int `mapstructure:"SESSION_MAX" default:"10000"`
	// AutoDismissDelay is how long a sticky banner stays before rotating.
	AutoDismissDelay time.Duration `mapstructure:"AUTO_DISMISS_DELAY" default:"15s"`
}

// BannerSourceConfig holds the banner provider details.
// Exactly one of URL or File is expected.
type BannerSourceConfig struct {
	// URL is the GraphQL endpoint serving banner records.
	URL string `mapstructure:"BANNER_SOURCE_URL"`
	// Token is sent as a bearer token to the GraphQL endpoint.
	Token string `mapstructure:"BANNER_SOURCE_TOKEN"`
	// File is a YAML or JSON file of banner records, used instead of URL.
	File string `mapstructure:"BANNER_SOURCE_FILE"`
	// Timeout bounds a single fetch.
	Timeout time.Duration `mapstructure:"BANNER_SOURCE_TIMEOUT" default:"10s"`
	// CacheTTL is how long fetched records are cached in Redis. 0 disables caching.
	CacheTTL time.Duration `mapstructure:"BANNER_CACHE_TTL" default:"30s"`
}

// ProxyConfig holds outbound proxy credentials.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"OUTBOUND_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"OUTBOUND_PROXY_HOST"`
	Port     int    `mapstructure:"OUTBOUND_PROXY_PORT"`
	Username string `mapstructure:"OUTBOUND_PROXY_USER"`
	Password string `mapstructure:"OUTBOUND_PROXY_PASSWORD"`
}

// Settings converts the config into proxy settings.
func (p ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  p.Enabled,
		Hostname: p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// DisplayConfig holds the individually-set display values.
// An empty string means the value is not set and the preset decides.
type DisplayConfig struct {
	Mode                      string `mapstructure:"BANNER_MODE" default:"sticky"`
	TokenPreset               string `mapstructure:"BANNER_TOKEN_PRESET" default:"default"`
	StickyTopOffset           string `mapstructure:"BANNER_STICKY_TOP_OFFSET"`
	StickyWidth               string `mapstructure:"BANNER_STICKY_WIDTH"`
	StickyMaxWidth            string `mapstructure:"BANNER_STICKY_MAX_WIDTH"`
	StickyBorderRadius        string `mapstructure:"BANNER_STICKY_BORDER_RADIUS"`
	StickyShadow              string `mapstructure:"BANNER_STICKY_SHADOW"`
	TickerBackgroundColor     string `mapstructure:"BANNER_TICKER_BACKGROUND_COLOR"`
	TickerTextColor           string `mapstructure:"BANNER_TICKER_TEXT_COLOR"`
	TickerEdgeFadeColor       string `mapstructure:"BANNER_TICKER_EDGE_FADE_COLOR"`
	TickerEdgeFadeWidth       string `mapstructure:"BANNER_TICKER_EDGE_FADE_WIDTH"`
	TickerItemBackgroundColor string `mapstructure:"BANNER_TICKER_ITEM_BACKGROUND_COLOR"`
	TickerSpeedSeconds        string `mapstructure:"BANNER_TICKER_SPEED_SECONDS"`
	InfoColor                 string `mapstructure:"BANNER_INFO_COLOR" default:"#6d5bf6"`
	ErrorColor                string `mapstructure:"BANNER_ERROR_COLOR" default:"#c23934"`
	WarningColor              string `mapstructure:"BANNER_WARNING_COLOR" default:"#ff9e2c"`
	SuccessColor              string `mapstructure:"BANNER_SUCCESS_COLOR" default:"#08ca4a"`
}

// Individual returns the set display values keyed by field name.
// Unset values are left out so the resolver treats them as undefined.
func (d DisplayConfig) Individual() map[string]any {
	pairs := []struct {
		name  string
		value string
	}{
		{"mode", d.Mode},
		{"tokenPreset", d.TokenPreset},
		{"stickyTopOffset", d.StickyTopOffset},
		{"stickyWidth", d.StickyWidth},
		{"stickyMaxWidth", d.StickyMaxWidth},
		{"stickyBorderRadius", d.StickyBorderRadius},
		{"stickyShadow", d.StickyShadow},
		{"tickerBackgroundColor", d.TickerBackgroundColor},
		{"tickerTextColor", d.TickerTextColor},
		{"tickerEdgeFadeColor", d.TickerEdgeFadeColor},
		{"tickerEdgeFadeWidth", d.TickerEdgeFadeWidth},
		{"tickerItemBackgroundColor", d.TickerItemBackgroundColor},
		{"tickerSpeedSeconds", d.TickerSpeedSeconds},
		{"infoColor", d.InfoColor},
		{"errorColor", d.ErrorColor},
		{"warningColor", d.WarningColor},
		{"successColor", d.SuccessColor},
	}

	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		if p.value != "" {
			values[p.name] = p.value
		}
	}
	return values
}

// ErrMissingBannerSource is returned when neither a GraphQL URL nor a file is configured.
var ErrMissingBannerSource = errors.New("missing required configuration: BANNER_SOURCE_URL or BANNER_SOURCE_FILE")

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.BannerSource.URL == "" && config.BannerSource.File == "" {
		return nil, ErrMissingBannerSource
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

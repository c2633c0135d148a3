package config

import (
	"errors"
	"fmt"
	"reflect"

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

	// Redis holds the blob storage connection details.
	Redis RedisConfig `mapstructure:",squash"`

	// Banner holds the customization engine settings.
	Banner BannerConfig `mapstructure:",squash"`

	// Translation holds the translation provider settings.
	Translation TranslationConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy used for translation requests.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// RedisConfig holds the connection string for the Redis blob store.
type RedisConfig struct {
	// URL is a redis:// connection string. Empty keeps uploaded images in memory.
	URL string `mapstructure:"REDIS_URL"`
}

// BannerConfig holds engine constants exposed for tuning.
type BannerConfig struct {
	// NativeLanguage is the language code shown untranslated.
	NativeLanguage string `mapstructure:"BANNER_NATIVE_LANGUAGE" default:"en"`
	// TargetLanguage is the language code routed through the translation provider.
	TargetLanguage string `mapstructure:"BANNER_TARGET_LANGUAGE" default:"es"`
	// NotificationDurationMS is how long a confirmation stays visible.
	NotificationDurationMS int `mapstructure:"NOTIFICATION_DURATION_MS" default:"3000"`
	// NotificationLocale selects the message catalog used for confirmations.
	NotificationLocale string `mapstructure:"NOTIFICATION_LOCALE" default:"en"`
	// UploadMaxBytes caps the size of an uploaded background image.
	UploadMaxBytes int64 `mapstructure:"UPLOAD_MAX_BYTES" default:"5242880"`
	// UploadSniffContent rejects uploads whose bytes do not match the declared mime type.
	UploadSniffContent bool `mapstructure:"UPLOAD_SNIFF_CONTENT" default:"false"`
	// BlobURLPrefix is prepended to blob ids to build access URLs.
	BlobURLPrefix string `mapstructure:"BLOB_URL_PREFIX" default:"/banner/blobs/"`
	// ContrastModel selects the readability model: "legacy" or "wcag".
	ContrastModel string `mapstructure:"CONTRAST_MODEL" default:"legacy"`
	// ContrastThreshold is the minimum acceptable contrast ratio.
	ContrastThreshold float64 `mapstructure:"CONTRAST_THRESHOLD" default:"4.5"`
}

// TranslationConfig holds the external translation provider details.
type TranslationConfig struct {
	// ProviderURL is the endpoint of an HTTP translation service. Empty uses the placeholder transform.
	ProviderURL string `mapstructure:"TRANSLATION_PROVIDER_URL"`
	// TimeoutSeconds bounds a single provider call.
	TimeoutSeconds int `mapstructure:"TRANSLATION_TIMEOUT_SECONDS" default:"10"`
	// Workers is the size of the translation worker pool.
	Workers int `mapstructure:"TRANSLATION_WORKERS" default:"8"`
}

// ProxyConfig holds the outbound HTTP proxy credentials.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"OUTBOUND_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"OUTBOUND_PROXY_HOSTNAME"`
	Port     int    `mapstructure:"OUTBOUND_PROXY_PORT"`
	Username string `mapstructure:"OUTBOUND_PROXY_USERNAME"`
	Password string `mapstructure:"OUTBOUND_PROXY_PASSWORD"`
}

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

	if config.Banner.ContrastModel != "legacy" && config.Banner.ContrastModel != "wcag" {
		return nil, fmt.Errorf("invalid configuration: CONTRAST_MODEL must be legacy or wcag, got %q", config.Banner.ContrastModel)
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

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
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

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
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
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

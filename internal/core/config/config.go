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

	// RedisURL is the connection URL for the draft store and catalog cache.
	RedisURL string `mapstructure:"REDIS_URL" required:"true"`

	// Postgres holds the order database configuration.
	Postgres PostgresConfig `mapstructure:",squash"`

	// Drafts holds wizard draft persistence settings.
	Drafts DraftConfig `mapstructure:",squash"`

	// Notifications holds the best-effort notification dispatch settings.
	Notifications NotificationConfig `mapstructure:",squash"`
}

// PostgresConfig holds connection details for the order database.
type PostgresConfig struct {
	// Host is the database server hostname.
	Host string `mapstructure:"DB_HOST" default:"localhost"`
	// Port is the database connection port.
	Port int `mapstructure:"DB_PORT" default:"5432"`
	// User is the database role used by the service.
	User string `mapstructure:"DB_USER" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"DB_PASSWORD" required:"true"`
	// Name is the database name.
	Name string `mapstructure:"DB_NAME" default:"lc_atelier"`
	// SSLMode controls TLS negotiation with the database.
	SSLMode string `mapstructure:"DB_SSLMODE" default:"disable"`
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

// DraftConfig holds settings for server-side wizard draft persistence.
type DraftConfig struct {
	// TTLDays is how long a saved draft survives before it expires.
	TTLDays int `mapstructure:"DRAFT_TTL_DAYS" default:"30"`
}

// NotificationConfig holds settings for the order-confirmation dispatcher.
type NotificationConfig struct {
	// EmailWebhookURL receives order-confirmation email payloads. Empty disables the channel.
	EmailWebhookURL string `mapstructure:"NOTIFY_EMAIL_WEBHOOK"`
	// WhatsAppWebhookURL receives order-confirmation WhatsApp payloads. Empty disables the channel.
	WhatsAppWebhookURL string `mapstructure:"NOTIFY_WHATSAPP_WEBHOOK"`
	// QueueSize bounds the in-process dispatch queue.
	QueueSize int `mapstructure:"NOTIFY_QUEUE_SIZE" default:"64"`
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

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
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
			v.BindEnv(key)
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

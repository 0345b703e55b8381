package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"post-receptor/core/database"
	"post-receptor/core/logger"
	"post-receptor/core/reconcile"
	"post-receptor/core/server"
	"post-receptor/core/settings"
	"post-receptor/core/storage"
	"post-receptor/feature/receptor"
	"post-receptor/feature/translation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per concern.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the content store connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the media object store.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Redis holds configuration for the cross-instance publish lock.
	Redis reconcile.Config `mapstructure:"redis"`
	// Settings holds bootstrap values for the runtime options table.
	Settings settings.Config `mapstructure:"settings"`
	// Translation holds configuration for the translation provider.
	Translation translation.Config `mapstructure:"translation"`
	// Receptor holds configuration for the receiving endpoints.
	Receptor receptor.Config `mapstructure:"receptor"`
}

// LoadConfig loads configuration from the environment, overlaying a .env file
// found in path when present.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is normal in production.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues walks the struct registering every mapstructure key with its
// default tag value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

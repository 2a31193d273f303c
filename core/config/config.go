package config

import (
	"reflect"
	"strings"
	"time"

	"inventory-sync/core/assets"
	"inventory-sync/core/database"
	"inventory-sync/core/extract"
	"inventory-sync/core/importer"
	"inventory-sync/core/logger"
	"inventory-sync/core/server"
	"inventory-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the relational store.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the S3 compatible object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Assets selects the asset provider and describes asset URLs.
	Assets assets.Config `mapstructure:"assets"`
	// Source configures the spreadsheet extraction.
	Source extract.Config `mapstructure:"source"`
	// Import configures the snapshot loader.
	Import importer.Config `mapstructure:"import"`
	// Reconcile configures the orphan scan cache.
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
}

// ReconcileConfig holds orphan scan settings.
type ReconcileConfig struct {
	// CacheTTL reuses a scan report for this long. Zero always rescans.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"0s"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_HOST -> database.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
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

		// Nested sections recurse; time.Duration is an int64 and stays a leaf.
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

package assets

import (
	"errors"
	"fmt"
)

// Providers.
const (
	ProviderCloudinary = "cloudinary"
	ProviderMinio      = "minio"
)

// MaxListLimit caps a single listing.
const MaxListLimit = 500

// CloudinaryConfig holds Cloudinary account credentials.
type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name" default:""`
	APIKey    string `mapstructure:"api_key" default:""`
	APISecret string `mapstructure:"api_secret" default:""`
}

// Config describes where assets live and how their URLs are shaped.
type Config struct {
	// Provider is "cloudinary" or "minio".
	Provider string `mapstructure:"provider" default:"cloudinary"`
	// DomainMarker must appear in a URL for a key to be derived from it.
	DomainMarker string `mapstructure:"domain_marker" default:"cloudinary.com"`
	// Delimiter separates the URL prefix from the object path.
	Delimiter string `mapstructure:"delimiter" default:"/upload/"`
	// PublicBaseURL prefixes minio object names to build canonical URLs.
	PublicBaseURL string `mapstructure:"public_base_url" default:""`
	// Prefix is the default folder for listing and reconciliation.
	Prefix string `mapstructure:"prefix" default:"trk-inventory/barang"`
	// ListLimit is the default page size, at most MaxListLimit.
	ListLimit int `mapstructure:"list_limit" default:"500"`
	// Cloudinary credentials, used when Provider is cloudinary.
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
}

// Validate checks the asset settings for the selected provider.
func (c Config) Validate() error {
	if c.DomainMarker == "" || c.Delimiter == "" {
		return errors.New("domain_marker and delimiter are required")
	}
	if c.ListLimit < 1 || c.ListLimit > MaxListLimit {
		return fmt.Errorf("list_limit must be between 1 and %d", MaxListLimit)
	}
	switch c.Provider {
	case ProviderCloudinary:
		if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
			return errors.New("cloudinary cloud_name, api_key and api_secret are required")
		}
	case ProviderMinio:
		if c.PublicBaseURL == "" {
			return errors.New("public_base_url is required for the minio provider")
		}
	default:
		return fmt.Errorf("unknown provider %q (expected cloudinary or minio)", c.Provider)
	}
	return nil
}

// ClampLimit applies the default and the MaxListLimit cap.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

package storage

import "errors"

// Config holds the S3 compatible object storage connection.
type Config struct {
	// Endpoint is host:port of the storage service, a scheme prefix is tolerated.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL enables TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds every inventory asset.
	Bucket string `mapstructure:"bucket" default:"inventory-assets"`
	// Region of the bucket, empty for minio.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports the first missing connection setting.
func (c Config) Validate() error {
	switch {
	case c.Endpoint == "":
		return errors.New("endpoint is not set")
	case c.AccessKey == "" || c.SecretKey == "":
		return errors.New("access key and secret key are required")
	case c.Bucket == "":
		return errors.New("bucket is not set")
	}
	return nil
}

package server

import (
	"errors"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key granting admin access to the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// JWTSecret is the HS256 secret used to verify bearer tokens.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
}

// AuthEnabled reports whether any credential is configured.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != "" || c.JWTSecret != ""
}

// Validate requires a numeric port and at least one credential; the API is never served open.
func (c Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}
	if !c.AuthEnabled() {
		return errors.New("api_key or jwt_secret must be set")
	}
	return nil
}

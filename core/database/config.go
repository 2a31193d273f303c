package database

import (
	"errors"
	"fmt"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds configuration for the relational store connection.
type Config struct {
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name. For sqlite it is the file path (or ":memory:").
	Name string `mapstructure:"name" default:"inventory"`
	// SSLMode is the postgres sslmode parameter.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate checks that the connection settings are usable for the selected driver.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		if c.Host == "" {
			return errors.New("host is not set")
		}
		if c.Port <= 0 {
			return fmt.Errorf("invalid port %d", c.Port)
		}
		if c.User == "" {
			return errors.New("user is not set")
		}
		if c.Name == "" {
			return errors.New("database name is not set")
		}
	case DriverSQLite:
		if c.Name == "" {
			return errors.New("sqlite database path is not set")
		}
	default:
		return fmt.Errorf("unsupported driver %q (expected postgres, mysql or sqlite)", c.Driver)
	}
	return nil
}

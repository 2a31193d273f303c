// Package config loads the application configuration.
//
// Values come from the environment, optionally seeded from a .env file. Every
// field declares its default in a `default` struct tag and is addressed by its
// section and name, so DATABASE_HOST sets Config.Database.Host.
//
// Commands call Require with the sections they use right after loading. The
// resulting *ConfigurationError carries a hint naming the variables to set.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Require(config.SectionDatabase, config.SectionImport); err != nil {
//	    return err
//	}
package config

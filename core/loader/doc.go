// Package loader registers HTTP features and mounts the enabled ones.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager loads features in registration order, so images, inventory and
// integrity routes are mounted the same way every start.
package loader

// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its identity,
// whether it is active, and how it mounts its handlers.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in order, via LoadAll()
package loader

package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port" default:"8000"`
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// OpenBrowser opens the default browser once the port is bound.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

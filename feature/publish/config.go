package publish

// Config holds configuration for publishing the site to object storage.
type Config struct {
	// Prefix is prepended to every object key. Empty publishes at the bucket root.
	Prefix string `mapstructure:"prefix" default:""`
}

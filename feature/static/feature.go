package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IndexFile is served for directory requests.
const IndexFile = "index.html"

// Feature serves the site root.
type Feature struct {
	root   string
	logger *zap.Logger
}

// NewFeature creates the static feature for root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{root: root, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a root has been configured.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Load mounts the file handler at "/".
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("site root unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("site root %s is not a directory", f.root)
	}

	app.Static("/", f.root, fiber.Static{
		Index:     IndexFile,
		Browse:    true,
		ByteRange: true,
	})
	f.logger.Debug("Static feature loaded", zap.String("root", f.root))
	return nil
}

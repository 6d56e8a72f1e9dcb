package browser

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// for testing
var open = browser.OpenURL

func init() {
	// xdg-open and friends are chatty; their output is not ours to show.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open asks the operating system to open url in the default browser.
func Open(url string) error {
	if err := open(url); err != nil {
		return fmt.Errorf("failed to open browser at %s: %w", url, err)
	}
	return nil
}

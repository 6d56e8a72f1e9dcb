package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// replaced in tests
var (
	executable = os.Executable
	getwd      = os.Getwd
	tempDir    = os.TempDir
)

// PreconditionError reports required files that are absent from the site root.
type PreconditionError struct {
	Root    string
	Missing []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing required files in %s: %s", e.Root, strings.Join(e.Missing, ", "))
}

// ResolveRoot returns the absolute site root. A configured root wins;
// otherwise the directory holding the running executable is used, unless
// that directory is a build cache under the temp dir (`go run`), in which
// case the working directory is used.
func ResolveRoot(configured string) (string, error) {
	if configured != "" {
		abs, err := filepath.Abs(configured)
		if err != nil {
			return "", fmt.Errorf("failed to resolve site root %q: %w", configured, err)
		}
		return abs, nil
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	if !within(dir, tempDir()) {
		return dir, nil
	}

	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return wd, nil
}

func within(dir, base string) bool {
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Missing returns the entries of required that do not exist below root,
// preserving their order.
func Missing(root string, required []string) []string {
	var missing []string
	for _, file := range required {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(file))); err != nil {
			missing = append(missing, file)
		}
	}
	return missing
}

// Check returns a *PreconditionError when any required file is missing.
func Check(root string, required []string) error {
	if missing := Missing(root, required); len(missing) > 0 {
		return &PreconditionError{Root: root, Missing: missing}
	}
	return nil
}

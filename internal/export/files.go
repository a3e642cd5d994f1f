package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// ensureDir creates the parent directory of an output path.
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

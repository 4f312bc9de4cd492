package octiconsprite

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteSprite creates the parent directories of path and overwrites path
// with data.
func WriteSprite(fsys afero.Fs, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write sprite: %w", err)
	}
	return nil
}

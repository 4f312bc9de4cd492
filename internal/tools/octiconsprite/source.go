package octiconsprite

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"

	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
	"github.com/louisbranch/octicons-sprite/internal/platform/icons"
)

// ListIcons returns the sorted names of the 24px icon files directly inside
// dir. Subdirectories are ignored.
func ListIcons(fsys afero.Fs, dir string) ([]string, error) {
	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeDirectoryNotFound,
			fmt.Sprintf("directory %s does not exist", dir),
			map[string]string{"Path": dir},
			err,
		)
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if icons.IsIconFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, apperrors.WithMetadata(
			apperrors.CodeNoMatchingFiles,
			fmt.Sprintf("no %s files in %s", icons.IconSuffix, dir),
			map[string]string{"Path": dir, "Suffix": icons.IconSuffix},
		)
	}
	return files, nil
}

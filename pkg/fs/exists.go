package fs

import (
	"errors"
	"os"
)

// Exists reports whether path exists. A missing path is not an error.
func (f *realFS) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

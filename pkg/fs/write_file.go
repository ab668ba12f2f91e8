package fs

import "os"

// WriteFile writes data to a file in place. The permissions of an existing file
// are set to perm as well, since os.WriteFile only applies them on creation.
func (f *realFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(filename, data, perm); err != nil {
		return err
	}
	return os.Chmod(filename, perm)
}

package lookup

import "github.com/spf13/afero"

// FSChecker reports whether a regular file exists on an afero filesystem.
// Any stat error, including permission errors, counts as absent.
type FSChecker struct {
	fs afero.Fs
}

// NewFSChecker returns a checker over fs.
func NewFSChecker(fs afero.Fs) *FSChecker {
	return &FSChecker{fs: fs}
}

// NewOSChecker returns a checker over the host filesystem.
func NewOSChecker() *FSChecker {
	return NewFSChecker(afero.NewOsFs())
}

// Exists implements types.FileChecker.
func (c *FSChecker) Exists(path string) bool {
	info, err := c.fs.Stat(path)
	return err == nil && !info.IsDir()
}

package types

// FileChecker reports whether a candidate icon file is present. Lookups only
// test presence; they never open the file.
type FileChecker interface {
	Exists(path string) bool
}

// ExistsFunc adapts an ordinary function to the FileChecker interface.
type ExistsFunc func(path string) bool

// Exists calls f(path).
func (f ExistsFunc) Exists(path string) bool {
	return f(path)
}

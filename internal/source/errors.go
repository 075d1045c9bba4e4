package source

import "fmt"

// NotFoundError reports an identifier whose resolved path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %s does not exist", e.Path)
}

// NotDirectoryError reports an identifier whose resolved path exists but is
// not a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("path %s is not a directory", e.Path)
}

// Package utils holds local-path and error helpers shared by the transfer code.
package utils

import (
	"errors"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ErrEmptyPath is returned when a local path is empty.
var ErrEmptyPath = errors.New("local path is empty")

// ExpandPath expands a leading "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

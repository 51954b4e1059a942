package utils

import "fmt"

// WrapOpenError returns a wrapped open error
func WrapOpenError(err error) error {
	return fmt.Errorf("open error: %w", err)
}

// WrapCreateError returns a wrapped create error
func WrapCreateError(err error) error {
	return fmt.Errorf("create error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}

// WrapRenameError returns a wrapped rename error
func WrapRenameError(err error) error {
	return fmt.Errorf("rename error: %w", err)
}

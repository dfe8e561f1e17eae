package terrors

import "github.com/cockroachdb/errors"

// IsKeyNotExistsErr .
func IsKeyNotExistsErr(err error) bool {
	return errors.Is(err, ErrKeyNotExists)
}

// IsNamespaceUnreachableErr .
func IsNamespaceUnreachableErr(err error) bool {
	return errors.Is(err, ErrNamespaceUnreachable)
}

// IsInvalidValueErr .
func IsInvalidValueErr(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

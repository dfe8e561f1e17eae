package terrors

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidValue indicates the value is invalid.
	ErrInvalidValue = errors.New("invalid value")

	// ErrKeyNotExists .
	ErrKeyNotExists = errors.New("key not exists")

	// ErrNamespaceUnreachable .
	ErrNamespaceUnreachable = errors.New("namespace unreachable")
)

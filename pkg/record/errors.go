package record

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("records file not found")
	ErrReadFailed      = errors.New("failed to read records")
	ErrInvalidJSON     = errors.New("records document is not valid JSON")
	ErrMalformedRecord = errors.New("malformed record")
	ErrMalformedDate   = errors.New("malformed date_of_birth")
)

// LoadError reports why a records document could not be turned into users.
// It unwraps to one of the sentinel errors above.
type LoadError struct {
	Path  string
	Index int // record position in the document, -1 when not record-specific
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Index >= 0:
		return fmt.Sprintf("load %s: record %d: %v", e.Path, e.Index, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("load records: record %d: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("load records: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err carries a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

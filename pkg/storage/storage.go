package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Storage is a read-only source of documents.
type Storage interface {
	// Open returns a reader for the document at path. Callers must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Exists checks if a document exists at path.
	Exists(ctx context.Context, path string) bool
}

// classifyContextError maps context errors to storage sentinels, or returns nil.
func classifyContextError(err error, operation string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	default:
		return nil
	}
}

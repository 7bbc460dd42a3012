package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordcheck/pkg/storage"
)

// Decode reads a JSON array of record objects and returns one User per
// element, in document order. The first malformed record aborts decoding.
func Decode(r io.Reader, opts ...ParserOption) ([]User, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: document must be an array, got %T", ErrMalformedRecord, doc)}
	}

	p := NewParser(opts...)
	users := make([]User, 0, len(items))
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			return nil, &LoadError{Index: i, Err: fmt.Errorf("%w: expected object, got %T", ErrMalformedRecord, item)}
		}
		u, err := p.parseUser(raw)
		if err != nil {
			return nil, &LoadError{Index: i, Err: err}
		}
		users = append(users, u)
	}
	return users, nil
}

// Load opens path on the given storage and decodes it with Decode.
func Load(ctx context.Context, s storage.Storage, path string, opts ...ParserOption) ([]User, error) {
	rc, err := s.Open(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, &LoadError{Path: path, Index: -1, Err: fmt.Errorf("%w: %w", ErrFileNotFound, err)}
		}
		return nil, &LoadError{Path: path, Index: -1, Err: fmt.Errorf("%w: %w", ErrReadFailed, err)}
	}
	defer func() { _ = rc.Close() }()

	users, err := Decode(rc, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}
	return users, nil
}

// LoadFile loads users from a file on the local filesystem.
func LoadFile(path string, opts ...ParserOption) ([]User, error) {
	return Load(context.Background(), storage.NewLocalStorage(""), path, opts...)
}

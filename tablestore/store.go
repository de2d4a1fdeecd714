// Package tablestore abstracts where beam tables live. FITS cubes and
// their beam tables are fetched from local disk or S3-compatible object
// storage through one Store interface, with an optional compressed
// read-through cache on top.
package tablestore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a table does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable table blobs.
type Store interface {
	// Open opens a table blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a table blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a table blob.
	Delete(ctx context.Context, name string) error
	// List returns all table names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a table blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	io.Closer
}

// ReadAll fetches the full contents of a blob.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	data := make([]byte, b.Size())
	n, err := b.ReadAt(ctx, data, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return data[:n], nil
}

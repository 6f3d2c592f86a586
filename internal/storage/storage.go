// Package storage contains read-only object storage abstractions for transcript
// files. Backends stream object content and never touch local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage lists and reads objects. A container is an Azure container or an S3 bucket.
type Storage interface {
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, container, prefix string) ([]ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, container, key string) (io.ReadCloser, ObjectInfo, error)
}

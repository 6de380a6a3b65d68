// Package storage publishes exported documents to object storage.
package storage

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// NewObjectKey returns a collision-free key under prefix, e.g.
// "standings/12/3f0c...e1.json".
func NewObjectKey(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+ext)
}

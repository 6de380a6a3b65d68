package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Object is a stored upload held by MemoryUploader.
type Object struct {
	ContentType string
	Body        []byte
}

// MemoryUploader keeps uploads in process. It backs development setups
// without R2 credentials and the service tests.
type MemoryUploader struct {
	mu      sync.RWMutex
	base    *url.URL
	objects map[string]Object
}

func NewMemoryUploader(publicBaseURL string) (*MemoryUploader, error) {
	base, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid public base URL: %w", err)
	}
	return &MemoryUploader{base: base, objects: make(map[string]Object)}, nil
}

func (u *MemoryUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to read upload body (key: %s): %w", key, err)
	}
	sum := md5.Sum(buf.Bytes())

	u.mu.Lock()
	u.objects[key] = Object{ContentType: contentType, Body: buf.Bytes()}
	u.mu.Unlock()

	return &UploadResult{Key: key, Location: u.GetPublicURL(key), ETag: hex.EncodeToString(sum[:])}, nil
}

func (u *MemoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	return nil
}

func (u *MemoryUploader) GetPublicURL(key string) string {
	return publicURL(u.base, key)
}

// Object returns a stored upload.
func (u *MemoryUploader) Object(key string) (Object, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	obj, ok := u.objects[key]
	return obj, ok
}

// ServeHTTP serves stored objects by key. Mount it with the key as the
// remaining path, e.g. under http.StripPrefix("/exports/", u).
func (u *MemoryUploader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	obj, ok := u.Object(strings.TrimPrefix(r.URL.Path, "/"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", obj.ContentType)
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(obj.Body))
}

package media

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gsschool/backend/pkg/logger"
)

// PublicPrefix is the URL prefix under which uploads are served.
const PublicPrefix = "/uploads/"

// DiskStore persists uploaded files in a flat directory that is served
// statically. Filenames combine a nanosecond timestamp with a random suffix
// so concurrent uploads cannot collide.
type DiskStore struct {
	dir    string
	mirror *MinIOMirror
}

// NewDiskStore creates the uploads directory when missing. mirror may be nil.
func NewDiskStore(dir string, mirror *MinIOMirror) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir, mirror: mirror}, nil
}

// Dir returns the backing directory path.
func (s *DiskStore) Dir() string { return s.dir }

// Save stores the payload under a generated name and returns its public
// path. When a MinIO mirror is configured the object is copied there too;
// mirror failures are logged, never surfaced.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader, contentType string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000_000), ext)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}

	if s.mirror != nil {
		if err := s.mirror.Put(ctx, name, dst, size, contentType); err != nil {
			logger.Warnf("media: mirror upload of %s failed: %v", name, err)
		}
	}
	return PublicPrefix + name, nil
}

// Remove deletes the file backing publicPath. Only basenames under the
// managed prefix are ever touched; anything else is silently ignored.
func (s *DiskStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}
	name := filepath.Base(publicPath)
	if name == "." || name == string(filepath.Separator) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Writable probes whether the uploads directory accepts writes; reported by
// the health endpoint.
func (s *DiskStore) Writable() bool {
	f, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

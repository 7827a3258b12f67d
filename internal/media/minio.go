package media

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gsschool/backend/internal/config"
)

// MinIOMirror copies uploads into an object-store bucket so media survives
// redeploys of the (otherwise disk-local) backend. It is best-effort: the
// local file stays the source of truth.
type MinIOMirror struct {
	client *minio.Client
	bucket string
}

// NewMinIOMirror creates the client and ensures the bucket exists.
func NewMinIOMirror(cfg config.MinIOConfig) (*MinIOMirror, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	m := &MinIOMirror{client: mc, bucket: cfg.Bucket}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		// ignore "already exists" style errors
		exist, xerr := mc.BucketExists(ctx, m.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return m, nil
}

// Put uploads the file at path under key.
func (m *MinIOMirror) Put(ctx context.Context, key, path string, size int64, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = m.client.PutObject(ctx, m.bucket, key, f, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

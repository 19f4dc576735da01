package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const csvContentType = "text/csv"

// S3Config carries the connection settings for an S3-compatible endpoint
// (AWS S3, MinIO, and friends).
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// objectPutter is the slice of the minio client the store needs; narrowed so
// tests can fake it.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Store writes objects to a single bucket on an S3-compatible store.
type S3Store struct {
	client objectPutter
	bucket string
}

// NewS3Store dials the configured endpoint and returns a bucket-scoped store.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads data under key, overwriting any existing object. Writes are
// idempotent per key, which is what makes whole-run retries safe.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: csvContentType,
	})
	return err
}

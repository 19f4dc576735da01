package storage

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
)

type fakePutter struct {
	bucket      string
	key         string
	data        []byte
	contentType string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	_ = ctx
	f.bucket = bucketName
	f.key = objectName
	f.contentType = opts.ContentType
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.data = data
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestS3StorePutUsesBucketAndContentType(t *testing.T) {
	putter := &fakePutter{}
	store := &S3Store{client: putter, bucket: "output"}

	payload := []byte("playerID,side\n1,error\n")
	if err := store.Put(context.Background(), "player_game_stats/2021-12-10/1.csv", payload); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if putter.bucket != "output" {
		t.Fatalf("unexpected bucket %s", putter.bucket)
	}
	if putter.key != "player_game_stats/2021-12-10/1.csv" {
		t.Fatalf("unexpected key %s", putter.key)
	}
	if putter.contentType != csvContentType {
		t.Fatalf("unexpected content type %s", putter.contentType)
	}
	if string(putter.data) != string(payload) {
		t.Fatalf("unexpected payload %q", putter.data)
	}
}

func TestNewS3StoreRejectsBadEndpoint(t *testing.T) {
	if _, err := NewS3Store(S3Config{Endpoint: "http://bad endpoint"}); err == nil {
		t.Fatal("expected error for malformed endpoint")
	}
}

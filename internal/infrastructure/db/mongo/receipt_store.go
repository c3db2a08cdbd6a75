package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/billed/expense-api/internal/core/domain"
	"github.com/billed/expense-api/internal/core/ports"
)

const bucketReceipts = "receipts"

// ReceiptStore persists receipt images in a GridFS bucket.
type ReceiptStore struct {
	bucket *gridfs.Bucket
	// baseURL is the public path prefix stored files are served under,
	// e.g. "/v1/bills/receipt".
	baseURL string
}

func NewReceiptStore(db *mongo.Database, baseURL string) (*ReceiptStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketReceipts))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &ReceiptStore{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save uploads the receipt under a fresh UUID key and returns its public URL.
// GridFS carries its own deadline mechanism instead of contexts.
func (s *ReceiptStore) Save(ctx context.Context, fileName string, content io.Reader) (string, error) {
	key := uuid.NewString()

	_ = s.bucket.SetWriteDeadline(deadlineFrom(ctx))
	if err := s.bucket.UploadFromStreamWithID(key, fileName, content); err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Open streams a stored receipt back by key.
func (s *ReceiptStore) Open(ctx context.Context, key string) (io.ReadCloser, *ports.ReceiptFile, error) {
	_ = s.bucket.SetReadDeadline(deadlineFrom(ctx))
	stream, err := s.bucket.OpenDownloadStream(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, domain.ErrReceiptNotFound
		}
		return nil, nil, fmt.Errorf("gridfs download: %w", err)
	}

	file := stream.GetFile()
	return stream, &ports.ReceiptFile{
		FileName:    file.Name,
		ContentType: contentTypeFor(file.Name),
		Size:        file.Length,
	}, nil
}

// deadlineFrom translates a context deadline into the absolute time GridFS
// expects, falling back to the package default.
func deadlineFrom(ctx context.Context) time.Time {
	if t, ok := ctx.Deadline(); ok {
		return t
	}
	return time.Now().Add(defaultTimeout)
}

// contentTypeFor maps the receipt allow-list extensions to their MIME types.
func contentTypeFor(fileName string) string {
	switch {
	case strings.HasSuffix(fileName, ".png"):
		return "image/png"
	case strings.HasSuffix(fileName, ".jpg"), strings.HasSuffix(fileName, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

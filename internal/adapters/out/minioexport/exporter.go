// Package minioexport implements the export collaborator on MinIO object
// storage: each batch becomes one CSV object in the configured bucket.
package minioexport

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// Config holds the MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// Exporter writes order batches as CSV objects. Implements ports.OrderExporter.
type Exporter struct {
	client *minio.Client
	bucket string
}

// NewExporter connects to MinIO and ensures the bucket exists.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &Exporter{client: client, bucket: cfg.Bucket}, nil
}

// Export writes the batch as one CSV object and returns its key. The key
// carries the batch timestamp and a random token, so two batches for the
// same user in the same second never collide.
func (e *Exporter) Export(
	ctx context.Context,
	orders []*order.Order,
	userID int64,
	exportedAt time.Time,
) (string, error) {
	payload, err := MarshalOrdersCSV(orders)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ports.ErrExportFailed, err)
	}

	key := fmt.Sprintf("exports/orders_%d_%d_%s.csv", userID, exportedAt.Unix(), uuid.NewString())

	_, err = e.client.PutObject(ctx, e.bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ports.ErrExportFailed, err)
	}

	return key, nil
}

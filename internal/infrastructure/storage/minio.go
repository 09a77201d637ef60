package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/virtual-office/pkg/config"
)

// MinIOArchiver mirrors uploaded attachments into an object storage
// bucket. Archival is best effort: the local copy stays canonical and
// callers only log archiver failures.
type MinIOArchiver struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchiver creates a MinIO client and ensures the bucket exists
func NewMinIOArchiver(cfg *config.StorageConfig) (*MinIOArchiver, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archiver := &MinIOArchiver{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	if err := archiver.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archiver, nil
}

// ensureBucket creates the bucket if it does not exist yet
func (m *MinIOArchiver) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Archive uploads a copy of the file under its relative storage path
func (m *MinIOArchiver) Archive(ctx context.Context, relPath string, data []byte) error {
	contentType := mimetype.Detect(data).String()

	_, err := m.client.PutObject(ctx, m.bucket, relPath,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to archive object: %w", err)
	}
	return nil
}

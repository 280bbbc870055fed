package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket %q: %w", m.bucket, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
			return fmt.Errorf("minio: failed to create bucket %q: %w", m.bucket, err)
		}
	}
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

func (m *implMinIO) UploadObject(ctx context.Context, req *UploadRequest) (*ObjectInfo, error) {
	if req.ObjectName == "" {
		return nil, fmt.Errorf("minio: object name is required")
	}

	opts := minio.PutObjectOptions{
		ContentType: req.ContentType,
		UserMetadata: map[string]string{
			"original-name": req.OriginalName,
		},
	}

	info, err := m.client.PutObject(ctx, m.bucket, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %q: %w", req.ObjectName, err)
	}

	return &ObjectInfo{
		Bucket:      m.bucket,
		ObjectName:  info.Key,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
		UploadedAt:  time.Now(),
	}, nil
}

func (m *implMinIO) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("minio: failed to presign %q: %w", objectName, err)
	}
	return u.String(), nil
}

func (m *implMinIO) DeleteObject(ctx context.Context, objectName string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: failed to delete %q: %w", objectName, err)
	}
	return nil
}

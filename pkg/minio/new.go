package minio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"aquamon-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// MinIO defines the interface for attachment storage operations.
type MinIO interface {
	// Connect verifies the connection and ensures the configured bucket exists.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// UploadObject stores an object and returns its stored metadata.
	UploadObject(ctx context.Context, req *UploadRequest) (*ObjectInfo, error)

	// PresignedGetURL generates a time-limited download URL for an object.
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)

	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, objectName string) error
}

// UploadRequest contains the parameters for storing an object.
type UploadRequest struct {
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Bucket      string    `json:"bucket"`
	ObjectName  string    `json:"object_name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	ETag        string    `json:"etag"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type implMinIO struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinIO creates a MinIO client for the configured endpoint and bucket.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	return &implMinIO{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

package health

import (
	"context"
	"fmt"

	"object-gateway/core/storage"

	"go.uber.org/zap"
)

// StorageReport is the result of a storage probe.
type StorageReport struct {
	Status string `json:"status" example:"ok"`
	Bucket string `json:"bucket,omitempty" example:"probe"`
	Exists bool   `json:"exists"`
}

// Service probes the storage provider.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new health service. An empty probe bucket skips the storage check.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckStorage asks the provider whether the probe bucket exists.
// A missing bucket is still a healthy answer; only provider errors fail the check.
func (s *Service) CheckStorage(ctx context.Context) (*StorageReport, error) {
	if s.bucket == "" {
		return &StorageReport{Status: "skipped"}, nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("storage probe failed: %w", err)
	}

	return &StorageReport{Status: "ok", Bucket: s.bucket, Exists: exists}, nil
}

package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the SDK used to talk to the object store (minio, s3).
	Provider string `mapstructure:"provider" default:"minio" validate:"oneof=minio s3"`
	// Endpoint is the URL of the storage service. Leave empty for AWS S3 with the s3 provider.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location buckets are created in (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
	// WaitIntervalMillis is the delay between two bucket existence polls.
	WaitIntervalMillis int `mapstructure:"wait_interval_ms" default:"5000" validate:"gt=0"`
	// WaitMaxAttempts bounds the number of bucket existence polls.
	WaitMaxAttempts int `mapstructure:"wait_max_attempts" default:"20" validate:"gt=0"`
	// ProbeBucket is checked by the storage health endpoint. Empty disables the probe.
	ProbeBucket string `mapstructure:"probe_bucket" default:""`
}

const (
	ProviderMinio = "minio"
	ProviderS3    = "s3"
)

// Timeout returns the transport timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

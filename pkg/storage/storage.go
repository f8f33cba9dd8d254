package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"github.com/pixelforge/pixelforge-api/pkg/retry"
	"go.uber.org/zap"
)

const maxResumeSize = 10 * 1024 * 1024 // 10 MB decoded

// Client represents an S3-compatible object storage client used for
// uploaded resume files.
type Client struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// NewClient creates a new object storage client against any S3-compatible
// endpoint (AWS S3, MinIO, DigitalOcean Spaces, ...).
func NewClient(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*Client, error) {
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, fmt.Errorf("storage credentials are required")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name is required")
	}
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	}

	logger.Info("Object storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &Client{
		s3Client:   s3.New(opts),
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// DecodeResume decodes base64 resume data, accepting both bare base64 and
// data URI format (data:application/pdf;base64,...). Enforces the size limit
// on the decoded bytes.
func DecodeResume(resumeData string) ([]byte, error) {
	payload := resumeData
	if strings.HasPrefix(resumeData, "data:") {
		parts := strings.SplitN(resumeData, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid data URI format")
		}
		payload = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 resume data: %w", err)
	}

	if len(decoded) > maxResumeSize {
		return nil, fmt.Errorf("resume exceeds maximum size of %d bytes", maxResumeSize)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("resume data is empty")
	}

	return decoded, nil
}

// ValidateResumeType checks the declared content type of an uploaded resume
func ValidateResumeType(contentType string) error {
	validTypes := map[string]bool{
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"text/plain": true,
	}

	if !validTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("unsupported resume content type: %s", contentType)
	}
	return nil
}

// UploadResume uploads resume bytes under the given key and returns the
// public object URL. The upload is retried with backoff; object PUTs are
// idempotent so retrying a partially failed upload is safe.
func (c *Client) UploadResume(ctx context.Context, data []byte, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadResume"

	retryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := retry.Do(retryCtx, retry.StorageConfig(), operation, func() error {
		_, putErr := c.s3Client.PutObject(retryCtx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return putErr
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(data)),
	)

	return c.ObjectURL(key), nil
}

// ObjectURL constructs the public URL for an object key
func (c *Client) ObjectURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucketName, key)
}

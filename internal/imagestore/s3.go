// Package imagestore uploads captured document photos to object storage and
// hands back the storage URL recorded on the vial row.
package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/unithera/vialscan/constants"
)

// Uploader is the image-store boundary the scan pipeline depends on.
type Uploader interface {
	Upload(ctx context.Context, image []byte, rx string, scanType constants.ScanType) (string, error)
}

// Config holds the object-store settings.
type Config struct {
	Bucket string
	Region string
}

// S3Store uploads JPEG captures to an S3 bucket, one prefix per scan type.
type S3Store struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
	now    func() time.Time
}

// NewS3 builds an uploader using the ambient AWS credential chain.
func NewS3(ctx context.Context, cfg Config, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, image []byte, rx string, scanType constants.ScanType) (string, error) {
	key := ObjectKey(scanType, rx, s.now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(image),
		ContentType:   aws.String("image/jpeg"),
		ContentLength: aws.Int64(int64(len(image))),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		s.logger.Error("image upload failed", "bucket", s.bucket, "key", key, "error", err)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	url := "s3://" + s.bucket + "/" + key
	s.logger.Info("image uploaded", "key", key, "bytes", len(image))
	return url, nil
}

// ObjectKey builds the storage key for one capture: the scan type's prefix,
// the prescription number (or "pending" before one is known) and the upload
// timestamp.
func ObjectKey(scanType constants.ScanType, rx string, now time.Time) string {
	if rx == "" {
		rx = "pending"
	}
	return fmt.Sprintf("%srx_%s_%d.jpg", scanType.StoragePrefix(), rx, now.Unix())
}

package storage

import (
	"fmt"
	"io"
	"strings"

	"jobboard_backend/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	uploader   *s3manager.Uploader
	client     *s3.S3
	bucket     string
	baseURL    string
	publicRead bool
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Storage.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
	}
	if cfg.Storage.Region == "" {
		awsCfg.Region = aws.String("auto")
	}
	// R2 and other S3-compatible stores need a custom endpoint and
	// path-style addressing.
	if cfg.Storage.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Storage.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &S3Storage{
		uploader:   s3manager.NewUploader(sess),
		client:     s3.New(sess),
		bucket:     cfg.Storage.Bucket,
		baseURL:    strings.TrimRight(cfg.Storage.BaseURL, "/"),
		publicRead: cfg.Storage.PublicRead,
	}, nil
}

func (s *S3Storage) Save(key string, r io.Reader, size int64, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	}
	if s.publicRead {
		input.ACL = aws.String("public-read")
	}

	if _, err := s.uploader.Upload(input); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) Delete(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

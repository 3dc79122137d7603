package s3

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

// Config holds the object-store connection settings. Endpoint is optional and
// supports S3-compatible stores (R2, MinIO) next to AWS proper.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	RequestTimeout  time.Duration
}

// Signer issues presigned GET URLs against a fixed bucket. The object store
// owns the cryptographic signing; this adapter only decides what to sign and
// for how long.
type Signer struct {
	client *awss3.S3
	bucket string
}

func NewSigner(cfg Config) (*Signer, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("missing bucket name")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	var creds *credentials.Credentials
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		creds = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	awsConfig := &aws.Config{
		Credentials:      creds,
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
		HTTPClient:       &http.Client{Timeout: timeout},
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := awssession.NewSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}
	return &Signer{client: awss3.New(sess), bucket: cfg.Bucket}, nil
}

// SignDownload presigns a GET for the object key, valid for exactly ttl from
// now. The result is a bearer credential and must not be logged or persisted.
func (s *Signer) SignDownload(_ context.Context, fileKey string, ttl time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileKey),
	})
	signedURL, err := req.Presign(ttl)
	if err != nil {
		return "", errors.Wrap(err, "presign download url")
	}
	return signedURL, nil
}

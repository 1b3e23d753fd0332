package service

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
)

// Storage uploads public assets to S3. With no bucket configured the service
// is disabled and callers fall back to inline storage.
type Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewStorage(conf *appconfig.Config) (*Storage, error) {
	if conf.AvatarS3Bucket == "" {
		return &Storage{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.AvatarS3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, "")))
	}

	awsConf, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "storage: failed to load AWS config")
	}

	return &Storage{
		client:        s3.NewFromConfig(awsConf),
		bucket:        conf.AvatarS3Bucket,
		publicBaseURL: strings.TrimSuffix(conf.AvatarPublicBaseURL, "/"),
	}, nil
}

func (s *Storage) Enabled() bool {
	return s.client != nil
}

// Upload puts an object and returns its public URL.
func (s *Storage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if s.client == nil {
		return "", errors.New("storage: no bucket configured")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", errors.Wrap(err, "storage: failed to put object")
	}

	return s.publicBaseURL + "/" + key, nil
}

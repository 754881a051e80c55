package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Adapter is an adapter for AWS S3 and S3 compatible stores
type Adapter struct {
	client  *s3.Client
	presign *s3.PresignClient
	config  config.StorageConfig
	logger  *slog.Logger
	now     func() time.Time
}

// NewAdapter returns Adapter. The client is built once and shared by all requests.
func NewAdapter(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Adapter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &Adapter{
		client:  client,
		presign: s3.NewPresignClient(client),
		config:  cfg,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Store writes blob in full under a freshly generated key and returns the key
func (a *Adapter) Store(ctx context.Context, blob domain.Blob) (string, error) {
	key := domain.NewObjectKey(a.now(), blob.OriginalName)

	body := blob.Body
	if _, ok := body.(io.ReadSeeker); !ok {
		// unseekable bodies cannot be signed over plain http
		data, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("failed to read upload body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.config.BucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(blob.ContentType),
		ContentLength: aws.Int64(blob.Size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("bucket", a.config.BucketName),
		slog.String("key", key))

	return key, nil
}

// SignForRead generates a presigned GET url for key
func (a *Adapter) SignForRead(ctx context.Context, key string) (*domain.SignedURL, error) {
	issuedAt := a.now()

	req, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.config.BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(a.config.SignedURLDuration))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	return &domain.SignedURL{
		Key:       key,
		Method:    http.MethodGet,
		URL:       req.URL,
		ExpiresAt: issuedAt.Add(a.config.SignedURLDuration),
	}, nil
}

// SignForWrite generates a presigned POST policy for key. The policy only
// accepts a form whose Content-Type equals contentType and whose file is at
// most maxSize bytes.
func (a *Adapter) SignForWrite(ctx context.Context, key string, contentType string, maxSize int64) (*domain.SignedURL, error) {
	issuedAt := a.now()

	req, err := a.presign.PresignPostObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.config.BucketName),
		Key:    aws.String(key),
	}, func(o *s3.PresignPostOptions) {
		o.Expires = a.config.SignedURLDuration
		o.Conditions = []interface{}{
			map[string]string{"Content-Type": contentType},
			[]interface{}{"content-length-range", 0, maxSize},
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned upload policy: %w", err)
	}

	fields := make(map[string]string, len(req.Values)+1)
	for name, value := range req.Values {
		fields[name] = value
	}
	fields["Content-Type"] = contentType

	return &domain.SignedURL{
		Key:       key,
		Method:    http.MethodPost,
		URL:       req.URL,
		Fields:    fields,
		ExpiresAt: issuedAt.Add(a.config.SignedURLDuration),
	}, nil
}

// Location describes where key lives
func (a *Adapter) Location(key string) string {
	return fmt.Sprintf("s3://%s/%s", a.config.BucketName, key)
}

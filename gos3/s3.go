// gos3 reads and manages the raw messages an SES receipt rule S3 action
// writes to a bucket.
package gos3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/sesmodel"
)

//go:generate mockgen -destination=../mocks/gos3mock/s3.go -package=gos3mock . S3Logic
type S3Logic interface {
	GetStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string) (*sesmodel.RawMessage, error)
	StoredMessageExists(ctx context.Context, action *sesmodel.S3Action, messageID string) (bool, error)
	PutStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string, msg *sesmodel.RawMessage) error
	DeleteStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string) error
	GetPresignedURL(ctx context.Context, action *sesmodel.S3Action, messageID string, expiry time.Duration) (string, error)
}

// S3ClientAPI defines the interface for the AWS S3 client methods used by this package.
//
//go:generate mockgen -destination=./s3_client_test.go -package=gos3 . S3ClientAPI
type S3ClientAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3PresignClientAPI defines the interface for the AWS S3 presign client methods used by this package.
//
//go:generate mockgen -destination=./s3_presign_client_test.go -package=gos3 . S3PresignClientAPI
type S3PresignClientAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3 struct {
	svc        S3ClientAPI
	presignSvc S3PresignClientAPI
	logger     *zap.Logger
}

type Option func(*S3)

func WithLogger(logger *zap.Logger) Option {
	return func(s *S3) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewS3(config goaws.AwsConfig, opts ...Option) *S3 {
	client := s3.NewFromConfig(config.Config)
	return newS3(client, s3.NewPresignClient(client), opts...)
}

func newS3(svc S3ClientAPI, presignSvc S3PresignClientAPI, opts ...Option) *S3 {
	s := &S3{
		svc:        svc,
		presignSvc: presignSvc,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStoredMessage returns the MIME message SES stored for messageID.
// Messages written with a KMS key are returned as stored.
func (s *S3) GetStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string) (*sesmodel.RawMessage, error) {
	loc, err := MessageLocation(action, messageID)
	if err != nil {
		return nil, err
	}

	obj, err := s.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, objectError("s.svc.GetObject", loc.Key, err)
	}
	defer obj.Body.Close()

	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj.Body); err != nil {
		return nil, goaws.NewRetryableInternalError(fmt.Errorf("io.Copy: %w", err))
	}

	s.logger.Debug("stored message read",
		zap.String("bucket", loc.Bucket),
		zap.String("key", loc.Key),
		zap.Int("bytes", buf.Len()),
	)
	return sesmodel.NewRawMessage(buf.Bytes()), nil
}

// StoredMessageExists reports whether a message is stored for messageID.
func (s *S3) StoredMessageExists(ctx context.Context, action *sesmodel.S3Action, messageID string) (bool, error) {
	loc, err := MessageLocation(action, messageID)
	if err != nil {
		return false, err
	}

	if _, err := s.svc.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}); err != nil {
		err = objectError("s.svc.HeadObject", loc.Key, err)
		var notFound *ItemNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// PutStoredMessage writes msg where the S3 action would have stored it,
// with a SHA-256 checksum S3 verifies on upload.
func (s *S3) PutStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string, msg *sesmodel.RawMessage) error {
	loc, err := MessageLocation(action, messageID)
	if err != nil {
		return err
	}
	if msg == nil || len(msg.Data) == 0 {
		return NewInvalidLocationError("empty message")
	}

	input := &s3.PutObjectInput{
		Bucket:            aws.String(loc.Bucket),
		Key:               aws.String(loc.Key),
		Body:              bytes.NewReader(msg.Data),
		ContentType:       aws.String("message/rfc822"),
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
		ChecksumSHA256:    pointy.String(string(NewSHA256Checksum(msg.Data))),
	}
	if action.KmsKeyArn != nil {
		input.ServerSideEncryption = types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = action.KmsKeyArn
	}

	if _, err := s.svc.PutObject(ctx, input); err != nil {
		return goaws.ClassifyAPIError("s.svc.PutObject", err)
	}
	return nil
}

// DeleteStoredMessage removes the stored message. Deleting a missing key
// succeeds.
func (s *S3) DeleteStoredMessage(ctx context.Context, action *sesmodel.S3Action, messageID string) error {
	loc, err := MessageLocation(action, messageID)
	if err != nil {
		return err
	}

	if _, err := s.svc.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}); err != nil {
		return goaws.ClassifyAPIError("s.svc.DeleteObject", err)
	}

	s.logger.Info("stored message deleted",
		zap.String("bucket", loc.Bucket),
		zap.String("key", loc.Key),
	)
	return nil
}

// GetPresignedURL returns a URL that downloads the stored message until
// expiry elapses.
func (s *S3) GetPresignedURL(ctx context.Context, action *sesmodel.S3Action, messageID string, expiry time.Duration) (string, error) {
	loc, err := MessageLocation(action, messageID)
	if err != nil {
		return "", err
	}

	resp, err := s.presignSvc.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(loc.Bucket),
			Key:    aws.String(loc.Key),
		},
		s3.WithPresignExpires(expiry),
	)
	if err != nil {
		return "", goaws.NewInternalError(fmt.Errorf("s.presignSvc.PresignGetObject: %w", err))
	}

	return resp.URL, nil
}

func objectError(op, key string, err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	var re *awshttp.ResponseError
	switch {
	case errors.As(err, &noSuchKey), errors.As(err, &notFound):
		return NewItemNotFoundError(key)
	case errors.As(err, &re) && re.ResponseError != nil && re.Response != nil &&
		re.HTTPStatusCode() == http.StatusNotFound:
		return NewItemNotFoundError(key)
	default:
		return goaws.ClassifyAPIError(op, err)
	}
}

// gosm reads secrets, such as DKIM signing keys, from AWS Secrets Manager.
package gosm

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
)

//go:generate mockgen -destination=../mocks/gosmmock/secrets_manager.go -package=gosmmock . SecretsManagerLogic
type SecretsManagerLogic interface {
	GetSecret(ctx context.Context, key string) (*GetSecretResponse, error)
	GetSecretField(ctx context.Context, key, field string) (string, error)
}

// SecretsManagerClientAPI defines the interface for the AWS SecretsManager client methods used by this package.
//
//go:generate mockgen -destination=./secrets_manager_client_test.go -package=gosm . SecretsManagerClientAPI
type SecretsManagerClientAPI interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
}

type SecretsManager struct {
	svc    SecretsManagerClientAPI
	logger *zap.Logger
}

type Option func(*SecretsManager)

func WithLogger(logger *zap.Logger) Option {
	return func(s *SecretsManager) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSecretsManager(config goaws.AwsConfig, opts ...Option) *SecretsManager {
	return newSecretsManager(sm.NewFromConfig(config.Config), opts...)
}

func newSecretsManager(svc SecretsManagerClientAPI, opts ...Option) *SecretsManager {
	s := &SecretsManager{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSecret returns the secret at the given key. When the secret is a JSON
// object holding key itself, the value under that key is returned and
// IsKeyPair is set. Otherwise the whole secret is the value.
func (s *SecretsManager) GetSecret(ctx context.Context, key string) (*GetSecretResponse, error) {
	res, raw, err := s.getSecretValue(ctx, key)
	if err != nil {
		return nil, err
	}

	res.Secret = Secret{Value: raw}
	if pairs, ok := keyPairs(raw); ok {
		if v, ok := pairs[key]; ok {
			res.Secret = Secret{Key: aws.String(key), Value: v}
			res.IsKeyPair = true
		}
	}
	return res, nil
}

// GetSecretField returns field from a JSON key/value secret.
func (s *SecretsManager) GetSecretField(ctx context.Context, key, field string) (string, error) {
	_, raw, err := s.getSecretValue(ctx, key)
	if err != nil {
		return "", err
	}
	pairs, ok := keyPairs(raw)
	if !ok {
		return "", NewSecretFieldNotFoundError(key, field)
	}
	v, ok := pairs[field]
	if !ok {
		return "", NewSecretFieldNotFoundError(key, field)
	}
	return v, nil
}

func (s *SecretsManager) getSecretValue(ctx context.Context, key string) (*GetSecretResponse, string, error) {
	secret, err := s.svc.GetSecretValue(ctx, &sm.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		s.logger.Debug("get secret failed", zap.String("key", key), zap.Error(err))
		return nil, "", secretError(key, err)
	}

	switch {
	case secret.ARN == nil:
		return nil, "", NewMissingResponseDataError("ARN")
	case secret.Name == nil:
		return nil, "", NewMissingResponseDataError("Name")
	}

	var raw string
	switch {
	case secret.SecretString != nil:
		raw = *secret.SecretString
	case len(secret.SecretBinary) > 0:
		raw = string(secret.SecretBinary)
	default:
		return nil, "", NewMissingResponseDataError("Secret")
	}

	return &GetSecretResponse{
		ARN:  aws.ToString(secret.ARN),
		Name: aws.ToString(secret.Name),
	}, raw, nil
}

// keyPairs decodes a secret stored as a flat JSON object of strings.
func keyPairs(raw string) (map[string]string, bool) {
	var pairs map[string]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, false
	}
	return pairs, true
}

func secretError(key string, err error) error {
	var notExist *types.ResourceNotFoundException
	var policy *types.PublicPolicyException
	var decrypt *types.DecryptionFailure
	var re *awshttp.ResponseError
	switch {
	case errors.As(err, &notExist):
		return NewSecretNotFoundError(key)
	case errors.As(err, &policy), errors.As(err, &decrypt):
		return NewSecretPermissionsError(key)
	case errors.As(err, &re) && re.ResponseError != nil && re.Response != nil:
		switch re.HTTPStatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return NewSecretPermissionsError(key)
		case http.StatusNotFound:
			return NewSecretNotFoundError(key)
		}
	}
	return goaws.ClassifyAPIError("s.svc.GetSecretValue", err)
}

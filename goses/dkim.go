package goses

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// PutDkimSigningKey switches identity to Bring Your Own DKIM, signing with
// privateKey under selector. The key is an RSA key, PEM encoded or as the
// base64 DER SES expects.
func (s *SES) PutDkimSigningKey(ctx context.Context, identity, selector, privateKey string) (*PutDkimSigningKeyResponse, error) {
	if identity == "" {
		return nil, NewInvalidDkimKeyError("missing identity")
	}
	if selector == "" {
		return nil, NewInvalidDkimKeyError("missing selector")
	}
	key, err := dkimKey(privateKey)
	if err != nil {
		return nil, err
	}

	out, err := s.svc.PutEmailIdentityDkimSigningAttributes(ctx, &sesv2.PutEmailIdentityDkimSigningAttributesInput{
		EmailIdentity:           aws.String(identity),
		SigningAttributesOrigin: types.DkimSigningAttributesOriginExternal,
		SigningAttributes: &types.DkimSigningAttributes{
			DomainSigningPrivateKey: aws.String(key),
			DomainSigningSelector:   aws.String(selector),
		},
	})
	if err != nil {
		return nil, s.sendError("s.svc.PutEmailIdentityDkimSigningAttributes", err)
	}

	s.logger.Info("dkim signing key updated",
		zap.String("identity", identity),
		zap.String("selector", selector),
		zap.String("status", string(out.DkimStatus)),
	)
	return &PutDkimSigningKeyResponse{
		Status: string(out.DkimStatus),
		Tokens: out.DkimTokens,
	}, nil
}

// dkimKey returns the base64 DER form of an RSA private key.
func dkimKey(privateKey string) (string, error) {
	privateKey = strings.TrimSpace(privateKey)
	if privateKey == "" {
		return "", NewInvalidDkimKeyError("empty key")
	}

	var der []byte
	if block, _ := pem.Decode([]byte(privateKey)); block != nil {
		der = block.Bytes
	} else {
		b, err := base64.StdEncoding.DecodeString(privateKey)
		if err != nil {
			return "", NewInvalidDkimKeyError("neither PEM nor base64")
		}
		der = b
	}

	if _, err := x509.ParsePKCS1PrivateKey(der); err != nil {
		k, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return "", NewInvalidDkimKeyError("not a PKCS#1 or PKCS#8 private key")
		}
		if _, ok := k.(*rsa.PrivateKey); !ok {
			return "", NewInvalidDkimKeyError("not an RSA key")
		}
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

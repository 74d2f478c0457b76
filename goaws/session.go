package goaws

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// Session wraps an SDK v1 session. The classic SES receipt rule, bounce and
// identity notification APIs are only reachable through the v1 client.
type Session struct {
	session *session.Session
}

// GetSession returns the underlying SDK v1 session.
func (s *Session) GetSession() *session.Session {
	return s.session
}

// Region returns the region the session resolved to.
func (s *Session) Region() string {
	if s == nil || s.session == nil {
		return ""
	}
	return aws.StringValue(s.session.Config.Region)
}

// NewDefaultSession loads credentials and region from the shared config
// files and environment. An empty region keeps whatever the shared config
// resolves.
func NewDefaultSession(region string) (*Session, error) {
	return newSession(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config:            regionConfig(region),
	})
}

// NewSessionWithProfile loads the named profile from ~/.aws/credentials.
func NewSessionWithProfile(profile, region string) (*Session, error) {
	return newSession(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Profile:           profile,
		Config:            regionConfig(region),
	})
}

// NewSessionFromEnv uses static credentials, mirroring NewConfigFromEnv.
func NewSessionFromEnv(accessKeyId, secretKey, stsToken, region string) (*Session, error) {
	cfg := regionConfig(region)
	cfg.Credentials = credentials.NewStaticCredentials(accessKeyId, secretKey, stsToken)
	return newSession(session.Options{
		SharedConfigState: session.SharedConfigDisable,
		Config:            cfg,
	})
}

// NewSessionFromConfig builds a v1 session in the same region as an SDK v2
// config so both clients talk to the same SES endpoint.
func NewSessionFromConfig(cfg *AwsConfig) (*Session, error) {
	return NewDefaultSession(cfg.Region())
}

func regionConfig(region string) aws.Config {
	cfg := aws.Config{}
	if region != "" {
		cfg.Region = aws.String(region)
	}
	return cfg
}

func newSession(opts session.Options) (*Session, error) {
	s, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("session.NewSessionWithOptions: %w", err)
	}
	return &Session{session: s}, nil
}

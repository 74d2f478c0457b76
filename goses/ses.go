// goses sends email through the SES v2 API using the request and result
// records from sesmodel.
package goses

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/sesmodel"
)

// CharSet repsents the charset type for email messages (UTF-8)
const CharSet = "UTF-8"

//go:generate mockgen -destination=../mocks/gosesmock/ses.go -package=gosesmock . SESLogic
type SESLogic interface {
	ListVerifiedIdentities(ctx context.Context) (*ListVerifiedIdentitiesResponse, error)
	SendEmail(ctx context.Context, req *sesmodel.SendEmailRequest) (*sesmodel.SendEmailResult, error)
	SendTemplatedEmail(ctx context.Context, req *sesmodel.SendTemplatedEmailRequest) (*sesmodel.SendTemplatedEmailResult, error)
	SendRawEmail(ctx context.Context, req *sesmodel.SendRawEmailRequest) (*sesmodel.SendRawEmailResult, error)
	SendBulkTemplatedEmail(ctx context.Context, req *sesmodel.SendBulkTemplatedEmailRequest) (*sesmodel.SendBulkTemplatedEmailResult, error)
	PutDkimSigningKey(ctx context.Context, identity, selector, privateKey string) (*PutDkimSigningKeyResponse, error)
}

// SESClientAPI defines the interface for the AWS SES client methods used by this package.
//
//go:generate mockgen -destination=./ses_client_api_test.go -package=goses . SESClientAPI
type SESClientAPI interface {
	ListEmailIdentities(ctx context.Context, params *sesv2.ListEmailIdentitiesInput, optFns ...func(*sesv2.Options)) (*sesv2.ListEmailIdentitiesOutput, error)
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
	SendBulkEmail(ctx context.Context, params *sesv2.SendBulkEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendBulkEmailOutput, error)
	PutEmailIdentityDkimSigningAttributes(ctx context.Context, params *sesv2.PutEmailIdentityDkimSigningAttributesInput, optFns ...func(*sesv2.Options)) (*sesv2.PutEmailIdentityDkimSigningAttributesOutput, error)
}

type SES struct {
	svc       SESClientAPI
	configSet *string
	logger    *zap.Logger
}

type Option func(*SES)

// WithDefaultConfigurationSet sets the configuration set used by requests
// that do not name one.
func WithDefaultConfigurationSet(name string) Option {
	return func(s *SES) {
		s.configSet = aws.String(name)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *SES) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSES(config goaws.AwsConfig, opts ...Option) *SES {
	return newSES(sesv2.NewFromConfig(config.Config), opts...)
}

func newSES(svc SESClientAPI, opts ...Option) *SES {
	s := &SES{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListVerifiedIdentities lists the SES verified email addresses for the account.
func (s *SES) ListVerifiedIdentities(ctx context.Context) (*ListVerifiedIdentitiesResponse, error) {
	var verifiedIds = make([]string, 0)

	var nextToken *string
	for {
		result, err := s.svc.ListEmailIdentities(ctx, &sesv2.ListEmailIdentitiesInput{NextToken: nextToken})
		if err != nil {
			return nil, goaws.ClassifyAPIError("s.svc.ListEmailIdentities", err)
		}

		for _, email := range result.EmailIdentities {
			if email.VerificationStatus == types.VerificationStatusSuccess && email.IdentityName != nil {
				verifiedIds = append(verifiedIds, *email.IdentityName)
			}
		}

		if result.NextToken == nil || *result.NextToken == "" {
			break
		}
		nextToken = result.NextToken
	}
	return &ListVerifiedIdentitiesResponse{EmailAddresses: verifiedIds}, nil
}

// SendEmail sends a structured message. Fields are passed through as given;
// only requests without recipients or content are refused locally.
func (s *SES) SendEmail(ctx context.Context, req *sesmodel.SendEmailRequest) (*sesmodel.SendEmailResult, error) {
	if req == nil {
		return nil, NewInvalidSendRequestError("nil request")
	}
	if req.Destination.Count() == 0 {
		return nil, NewInvalidRecipientError()
	}
	if req.Message == nil {
		return nil, NewInvalidSendRequestError("no message content")
	}

	input := &sesv2.SendEmailInput{
		Destination: toDestination(req.Destination),
		Content: &types.EmailContent{
			Simple: toMessage(req.Message),
		},
		ReplyToAddresses:                          req.ReplyToAddresses,
		FromEmailAddress:                          req.Source,
		FromEmailAddressIdentityArn:               req.SourceArn,
		FeedbackForwardingEmailAddress:            req.ReturnPath,
		FeedbackForwardingEmailAddressIdentityArn: req.ReturnPathArn,
		EmailTags:                                 toTags(req.Tags),
		ConfigurationSetName:                      s.configurationSet(req.ConfigurationSetName),
	}

	out, err := s.svc.SendEmail(ctx, input)
	if err != nil {
		return nil, s.sendError("s.svc.SendEmail", err)
	}

	s.logger.Debug("email sent",
		zap.String("op", "SendEmail"),
		zap.Stringp("messageId", out.MessageId),
		zap.Int("recipients", req.Destination.Count()),
	)
	return &sesmodel.SendEmailResult{MessageId: out.MessageId}, nil
}

// SendTemplatedEmail sends a message rendered from a stored template.
func (s *SES) SendTemplatedEmail(ctx context.Context, req *sesmodel.SendTemplatedEmailRequest) (*sesmodel.SendTemplatedEmailResult, error) {
	if req == nil {
		return nil, NewInvalidSendRequestError("nil request")
	}
	if req.Destination.Count() == 0 {
		return nil, NewInvalidRecipientError()
	}
	if req.Template == nil && req.TemplateArn == nil {
		return nil, NewInvalidSendRequestError("no template")
	}

	input := &sesv2.SendEmailInput{
		Destination: toDestination(req.Destination),
		Content: &types.EmailContent{
			Template: &types.Template{
				TemplateName: req.Template,
				TemplateArn:  req.TemplateArn,
				TemplateData: req.TemplateData,
			},
		},
		ReplyToAddresses:                          req.ReplyToAddresses,
		FromEmailAddress:                          req.Source,
		FromEmailAddressIdentityArn:               req.SourceArn,
		FeedbackForwardingEmailAddress:            req.ReturnPath,
		FeedbackForwardingEmailAddressIdentityArn: req.ReturnPathArn,
		EmailTags:                                 toTags(req.Tags),
		ConfigurationSetName:                      s.configurationSet(req.ConfigurationSetName),
	}

	out, err := s.svc.SendEmail(ctx, input)
	if err != nil {
		return nil, s.sendError("s.svc.SendEmail", err)
	}

	s.logger.Debug("email sent",
		zap.String("op", "SendTemplatedEmail"),
		zap.Stringp("messageId", out.MessageId),
		zap.Stringp("template", req.Template),
	)
	return &sesmodel.SendTemplatedEmailResult{MessageId: out.MessageId}, nil
}

// SendRawEmail sends a caller-built MIME message. Destinations may be empty,
// in which case SES reads the recipients from the message headers.
func (s *SES) SendRawEmail(ctx context.Context, req *sesmodel.SendRawEmailRequest) (*sesmodel.SendRawEmailResult, error) {
	if req == nil {
		return nil, NewInvalidSendRequestError("nil request")
	}
	if req.RawMessage == nil || len(req.RawMessage.Data) == 0 {
		return nil, NewInvalidSendRequestError("empty raw message")
	}

	input := &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: req.RawMessage.Data},
		},
		FromEmailAddress:                          req.Source,
		FromEmailAddressIdentityArn:               fromArn(req.FromArn, req.SourceArn),
		FeedbackForwardingEmailAddressIdentityArn: req.ReturnPathArn,
		EmailTags:                                 toTags(req.Tags),
		ConfigurationSetName:                      s.configurationSet(req.ConfigurationSetName),
	}
	if len(req.Destinations) > 0 {
		input.Destination = &types.Destination{ToAddresses: req.Destinations}
	}

	out, err := s.svc.SendEmail(ctx, input)
	if err != nil {
		return nil, s.sendError("s.svc.SendEmail", err)
	}

	s.logger.Debug("email sent",
		zap.String("op", "SendRawEmail"),
		zap.Stringp("messageId", out.MessageId),
		zap.Int("bytes", len(req.RawMessage.Data)),
	)
	return &sesmodel.SendRawEmailResult{MessageId: out.MessageId}, nil
}

// SendBulkTemplatedEmail sends one template to every destination in a single
// call. The result holds one status per destination, in request order; a
// failed destination does not fail the call.
func (s *SES) SendBulkTemplatedEmail(ctx context.Context, req *sesmodel.SendBulkTemplatedEmailRequest) (*sesmodel.SendBulkTemplatedEmailResult, error) {
	if req == nil {
		return nil, NewInvalidSendRequestError("nil request")
	}
	if len(req.Destinations) == 0 {
		return nil, NewInvalidRecipientError()
	}
	if req.Template == nil && req.TemplateArn == nil {
		return nil, NewInvalidSendRequestError("no template")
	}

	entries := make([]types.BulkEmailEntry, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		entries = append(entries, toBulkEntry(d))
	}

	input := &sesv2.SendBulkEmailInput{
		BulkEmailEntries: entries,
		DefaultContent: &types.BulkEmailContent{
			Template: &types.Template{
				TemplateName: req.Template,
				TemplateArn:  req.TemplateArn,
				TemplateData: req.DefaultTemplateData,
			},
		},
		ReplyToAddresses:                          req.ReplyToAddresses,
		FromEmailAddress:                          req.Source,
		FromEmailAddressIdentityArn:               req.SourceArn,
		FeedbackForwardingEmailAddress:            req.ReturnPath,
		FeedbackForwardingEmailAddressIdentityArn: req.ReturnPathArn,
		DefaultEmailTags:                          toTags(req.DefaultTags),
		ConfigurationSetName:                      s.configurationSet(req.ConfigurationSetName),
	}

	out, err := s.svc.SendBulkEmail(ctx, input)
	if err != nil {
		return nil, s.sendError("s.svc.SendBulkEmail", err)
	}

	res := sesmodel.NewSendBulkTemplatedEmailResult()
	for i, r := range out.BulkEmailEntryResults {
		st := fromBulkEntryResult(r)
		if st.Status != sesmodel.BulkEmailStatusSuccess {
			s.logger.Warn("bulk destination not sent",
				zap.Int("index", i),
				zap.String("status", string(st.Status)),
				zap.Stringp("error", st.Error),
			)
		}
		res.AddStatus(st)
	}
	return res, nil
}

func (s *SES) configurationSet(name *string) *string {
	if name != nil {
		return name
	}
	return s.configSet
}

// sendError maps send failures to package errors. Anything not specific to
// sending is classified by goaws.
func (s *SES) sendError(op string, err error) error {
	var re *awshttp.ResponseError
	var msgReject *types.MessageRejected
	var domainNotVerified *types.MailFromDomainNotVerifiedException
	var notFound *types.NotFoundException
	var suspended *types.AccountSuspendedException
	var paused *types.SendingPausedException

	switch {
	case errors.As(err, &msgReject):
		var msg = "message rejected"
		if msgReject.Message != nil {
			msg = *msgReject.Message
		}
		return NewMessageRejectedError(msg)
	case errors.As(err, &domainNotVerified):
		return NewUnverifiedDomainError(aws.ToString(domainNotVerified.Message))
	case errors.As(err, &notFound):
		return NewResourceNotFoundError(aws.ToString(notFound.Message))
	case errors.As(err, &suspended):
		return NewAccountSuspendedError(aws.ToString(suspended.Message))
	case errors.As(err, &paused):
		return NewSendingPausedError(aws.ToString(paused.Message))
	case errors.As(err, &re):
		if re.ResponseError == nil {
			return goaws.NewInternalError(fmt.Errorf("%s: %w", op, re.Err))
		}
		switch re.HTTPStatusCode() {
		case http.StatusBadRequest:
			return NewInvalidSendRequestError(re.ResponseError.Error())
		default:
			return goaws.ClassifyAPIError(op, err)
		}
	default:
		return goaws.ClassifyAPIError(op, err)
	}
}

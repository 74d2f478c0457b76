// gosesclassic manages receipt rules, rule sets and IP filters, bounces and
// identity notification settings, which are only exposed by the classic SES
// API.
package gosesclassic

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ses"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/goses"
	"github.com/ggarcia209/go-ses/sesmodel"
)

//go:generate mockgen -destination=../mocks/gosesclassicmock/classic.go -package=gosesclassicmock . ClassicLogic
type ClassicLogic interface {
	CreateReceiptRule(ctx context.Context, req *sesmodel.CreateReceiptRuleRequest) error
	UpdateReceiptRule(ctx context.Context, req *sesmodel.UpdateReceiptRuleRequest) error
	DescribeReceiptRule(ctx context.Context, req *sesmodel.DescribeReceiptRuleRequest) (*sesmodel.DescribeReceiptRuleResult, error)
	DeleteReceiptRule(ctx context.Context, req *sesmodel.DeleteReceiptRuleRequest) error
	CreateReceiptRuleSet(ctx context.Context, req *sesmodel.CreateReceiptRuleSetRequest) error
	DeleteReceiptRuleSet(ctx context.Context, req *sesmodel.DeleteReceiptRuleSetRequest) error
	DescribeReceiptRuleSet(ctx context.Context, req *sesmodel.DescribeReceiptRuleSetRequest) (*sesmodel.DescribeReceiptRuleSetResult, error)
	DescribeActiveReceiptRuleSet(ctx context.Context) (*sesmodel.DescribeActiveReceiptRuleSetResult, error)
	SetActiveReceiptRuleSet(ctx context.Context, req *sesmodel.SetActiveReceiptRuleSetRequest) error
	ListReceiptRuleSets(ctx context.Context, req *sesmodel.ListReceiptRuleSetsRequest) (*sesmodel.ListReceiptRuleSetsResult, error)
	CloneReceiptRuleSet(ctx context.Context, req *sesmodel.CloneReceiptRuleSetRequest) error
	ReorderReceiptRuleSet(ctx context.Context, req *sesmodel.ReorderReceiptRuleSetRequest) error
	SetReceiptRulePosition(ctx context.Context, req *sesmodel.SetReceiptRulePositionRequest) error
	CreateReceiptFilter(ctx context.Context, req *sesmodel.CreateReceiptFilterRequest) error
	DeleteReceiptFilter(ctx context.Context, req *sesmodel.DeleteReceiptFilterRequest) error
	ListReceiptFilters(ctx context.Context) (*sesmodel.ListReceiptFiltersResult, error)
	SendBounce(ctx context.Context, req *sesmodel.SendBounceRequest) (*sesmodel.SendBounceResult, error)
	SetIdentityNotificationTopic(ctx context.Context, req *sesmodel.SetIdentityNotificationTopicRequest) error
	SetIdentityFeedbackForwardingEnabled(ctx context.Context, req *sesmodel.SetIdentityFeedbackForwardingEnabledRequest) error
	SetIdentityHeadersInNotificationsEnabled(ctx context.Context, req *sesmodel.SetIdentityHeadersInNotificationsEnabledRequest) error
	GetIdentityNotificationAttributes(ctx context.Context, req *sesmodel.GetIdentityNotificationAttributesRequest) (*sesmodel.GetIdentityNotificationAttributesResult, error)
}

// ClassicClientAPI is the subset of *ses.SES used by this package.
//
//go:generate mockgen -destination=./classic_client_api_test.go -package=gosesclassic . ClassicClientAPI
type ClassicClientAPI interface {
	CreateReceiptRuleWithContext(ctx context.Context, input *ses.CreateReceiptRuleInput, opts ...request.Option) (*ses.CreateReceiptRuleOutput, error)
	UpdateReceiptRuleWithContext(ctx context.Context, input *ses.UpdateReceiptRuleInput, opts ...request.Option) (*ses.UpdateReceiptRuleOutput, error)
	DescribeReceiptRuleWithContext(ctx context.Context, input *ses.DescribeReceiptRuleInput, opts ...request.Option) (*ses.DescribeReceiptRuleOutput, error)
	DeleteReceiptRuleWithContext(ctx context.Context, input *ses.DeleteReceiptRuleInput, opts ...request.Option) (*ses.DeleteReceiptRuleOutput, error)
	CreateReceiptRuleSetWithContext(ctx context.Context, input *ses.CreateReceiptRuleSetInput, opts ...request.Option) (*ses.CreateReceiptRuleSetOutput, error)
	DeleteReceiptRuleSetWithContext(ctx context.Context, input *ses.DeleteReceiptRuleSetInput, opts ...request.Option) (*ses.DeleteReceiptRuleSetOutput, error)
	DescribeReceiptRuleSetWithContext(ctx context.Context, input *ses.DescribeReceiptRuleSetInput, opts ...request.Option) (*ses.DescribeReceiptRuleSetOutput, error)
	DescribeActiveReceiptRuleSetWithContext(ctx context.Context, input *ses.DescribeActiveReceiptRuleSetInput, opts ...request.Option) (*ses.DescribeActiveReceiptRuleSetOutput, error)
	SetActiveReceiptRuleSetWithContext(ctx context.Context, input *ses.SetActiveReceiptRuleSetInput, opts ...request.Option) (*ses.SetActiveReceiptRuleSetOutput, error)
	ListReceiptRuleSetsWithContext(ctx context.Context, input *ses.ListReceiptRuleSetsInput, opts ...request.Option) (*ses.ListReceiptRuleSetsOutput, error)
	CloneReceiptRuleSetWithContext(ctx context.Context, input *ses.CloneReceiptRuleSetInput, opts ...request.Option) (*ses.CloneReceiptRuleSetOutput, error)
	ReorderReceiptRuleSetWithContext(ctx context.Context, input *ses.ReorderReceiptRuleSetInput, opts ...request.Option) (*ses.ReorderReceiptRuleSetOutput, error)
	SetReceiptRulePositionWithContext(ctx context.Context, input *ses.SetReceiptRulePositionInput, opts ...request.Option) (*ses.SetReceiptRulePositionOutput, error)
	CreateReceiptFilterWithContext(ctx context.Context, input *ses.CreateReceiptFilterInput, opts ...request.Option) (*ses.CreateReceiptFilterOutput, error)
	DeleteReceiptFilterWithContext(ctx context.Context, input *ses.DeleteReceiptFilterInput, opts ...request.Option) (*ses.DeleteReceiptFilterOutput, error)
	ListReceiptFiltersWithContext(ctx context.Context, input *ses.ListReceiptFiltersInput, opts ...request.Option) (*ses.ListReceiptFiltersOutput, error)
	SendBounceWithContext(ctx context.Context, input *ses.SendBounceInput, opts ...request.Option) (*ses.SendBounceOutput, error)
	SetIdentityNotificationTopicWithContext(ctx context.Context, input *ses.SetIdentityNotificationTopicInput, opts ...request.Option) (*ses.SetIdentityNotificationTopicOutput, error)
	SetIdentityFeedbackForwardingEnabledWithContext(ctx context.Context, input *ses.SetIdentityFeedbackForwardingEnabledInput, opts ...request.Option) (*ses.SetIdentityFeedbackForwardingEnabledOutput, error)
	SetIdentityHeadersInNotificationsEnabledWithContext(ctx context.Context, input *ses.SetIdentityHeadersInNotificationsEnabledInput, opts ...request.Option) (*ses.SetIdentityHeadersInNotificationsEnabledOutput, error)
	GetIdentityNotificationAttributesWithContext(ctx context.Context, input *ses.GetIdentityNotificationAttributesInput, opts ...request.Option) (*ses.GetIdentityNotificationAttributesOutput, error)
}

type Classic struct {
	svc    ClassicClientAPI
	logger *zap.Logger
}

type Option func(*Classic)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Classic) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClassic(sess *goaws.Session, opts ...Option) *Classic {
	return newClassic(ses.New(sess.GetSession()), opts...)
}

func newClassic(svc ClassicClientAPI, opts ...Option) *Classic {
	c := &Classic{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateReceiptRule adds a rule to a rule set, after the rule named by
// req.After or first when After is absent.
func (c *Classic) CreateReceiptRule(ctx context.Context, req *sesmodel.CreateReceiptRuleRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.CreateReceiptRuleWithContext(ctx, &ses.CreateReceiptRuleInput{
		RuleSetName: req.RuleSetName,
		After:       req.After,
		Rule:        toReceiptRule(req.Rule),
	})
	if err != nil {
		return classicError("c.svc.CreateReceiptRule", err)
	}

	c.logger.Info("receipt rule created",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Stringer("rule", req.Rule),
	)
	return nil
}

// UpdateReceiptRule replaces the rule with the same name.
func (c *Classic) UpdateReceiptRule(ctx context.Context, req *sesmodel.UpdateReceiptRuleRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.UpdateReceiptRuleWithContext(ctx, &ses.UpdateReceiptRuleInput{
		RuleSetName: req.RuleSetName,
		Rule:        toReceiptRule(req.Rule),
	})
	if err != nil {
		return classicError("c.svc.UpdateReceiptRule", err)
	}

	c.logger.Info("receipt rule updated",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Stringer("rule", req.Rule),
	)
	return nil
}

func (c *Classic) DescribeReceiptRule(ctx context.Context, req *sesmodel.DescribeReceiptRuleRequest) (*sesmodel.DescribeReceiptRuleResult, error) {
	if req == nil {
		return nil, NewInvalidRequestError("nil request")
	}

	out, err := c.svc.DescribeReceiptRuleWithContext(ctx, &ses.DescribeReceiptRuleInput{
		RuleSetName: req.RuleSetName,
		RuleName:    req.RuleName,
	})
	if err != nil {
		return nil, classicError("c.svc.DescribeReceiptRule", err)
	}

	return &sesmodel.DescribeReceiptRuleResult{Rule: fromReceiptRule(out.Rule)}, nil
}

func (c *Classic) DeleteReceiptRule(ctx context.Context, req *sesmodel.DeleteReceiptRuleRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.DeleteReceiptRuleWithContext(ctx, &ses.DeleteReceiptRuleInput{
		RuleSetName: req.RuleSetName,
		RuleName:    req.RuleName,
	})
	if err != nil {
		return classicError("c.svc.DeleteReceiptRule", err)
	}

	c.logger.Info("receipt rule deleted",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Stringp("rule", req.RuleName),
	)
	return nil
}

// SendBounce returns a bounce for a message received through a receipt rule.
func (c *Classic) SendBounce(ctx context.Context, req *sesmodel.SendBounceRequest) (*sesmodel.SendBounceResult, error) {
	if req == nil {
		return nil, NewInvalidRequestError("nil request")
	}

	out, err := c.svc.SendBounceWithContext(ctx, toSendBounceInput(req))
	if err != nil {
		return nil, classicError("c.svc.SendBounce", err)
	}

	c.logger.Debug("bounce sent",
		zap.Stringp("originalMessageId", req.OriginalMessageId),
		zap.Stringp("messageId", out.MessageId),
		zap.Int("recipients", len(req.BouncedRecipientInfoList)),
	)
	return &sesmodel.SendBounceResult{MessageId: out.MessageId}, nil
}

// SetIdentityNotificationTopic sets or, when SnsTopic is absent, clears the
// topic for one notification type of an identity.
func (c *Classic) SetIdentityNotificationTopic(ctx context.Context, req *sesmodel.SetIdentityNotificationTopicRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.SetIdentityNotificationTopicWithContext(ctx, &ses.SetIdentityNotificationTopicInput{
		Identity:         req.Identity,
		NotificationType: enumString(string(req.NotificationType)),
		SnsTopic:         req.SnsTopic,
	})
	if err != nil {
		return classicError("c.svc.SetIdentityNotificationTopic", err)
	}
	return nil
}

func (c *Classic) SetIdentityFeedbackForwardingEnabled(ctx context.Context, req *sesmodel.SetIdentityFeedbackForwardingEnabledRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.SetIdentityFeedbackForwardingEnabledWithContext(ctx, &ses.SetIdentityFeedbackForwardingEnabledInput{
		Identity:          req.Identity,
		ForwardingEnabled: req.ForwardingEnabled,
	})
	if err != nil {
		return classicError("c.svc.SetIdentityFeedbackForwardingEnabled", err)
	}
	return nil
}

func (c *Classic) SetIdentityHeadersInNotificationsEnabled(ctx context.Context, req *sesmodel.SetIdentityHeadersInNotificationsEnabledRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.SetIdentityHeadersInNotificationsEnabledWithContext(ctx, &ses.SetIdentityHeadersInNotificationsEnabledInput{
		Identity:         req.Identity,
		NotificationType: enumString(string(req.NotificationType)),
		Enabled:          req.Enabled,
	})
	if err != nil {
		return classicError("c.svc.SetIdentityHeadersInNotificationsEnabled", err)
	}
	return nil
}

// GetIdentityNotificationAttributes returns the notification settings of
// each requested identity. Identities SES does not know are left out.
func (c *Classic) GetIdentityNotificationAttributes(ctx context.Context, req *sesmodel.GetIdentityNotificationAttributesRequest) (*sesmodel.GetIdentityNotificationAttributesResult, error) {
	if req == nil {
		return nil, NewInvalidRequestError("nil request")
	}

	out, err := c.svc.GetIdentityNotificationAttributesWithContext(ctx, &ses.GetIdentityNotificationAttributesInput{
		Identities: aws.StringSlice(req.Identities),
	})
	if err != nil {
		return nil, classicError("c.svc.GetIdentityNotificationAttributes", err)
	}

	res := sesmodel.NewGetIdentityNotificationAttributesResult()
	for identity, attrs := range out.NotificationAttributes {
		res.AddNotificationAttributesEntry(identity, fromNotificationAttributes(attrs))
	}
	return res, nil
}

// classicError maps SES error codes to package errors and leaves the rest
// to goaws.
func classicError(op string, err error) error {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return goaws.ClassifyRequestError(op, err)
	}

	switch aerr.Code() {
	case ses.ErrCodeRuleDoesNotExistException:
		return NewRuleDoesNotExistError(aerr.Message())
	case ses.ErrCodeRuleSetDoesNotExistException:
		return NewRuleSetDoesNotExistError(aerr.Message())
	case ses.ErrCodeAlreadyExistsException:
		return NewAlreadyExistsError(aerr.Message())
	case ses.ErrCodeCannotDeleteException:
		return NewCannotDeleteError(aerr.Message())
	case ses.ErrCodeInvalidS3ConfigurationException,
		ses.ErrCodeInvalidSnsTopicException,
		ses.ErrCodeInvalidLambdaFunctionException:
		return NewInvalidActionTargetError(aerr.Message())
	case ses.ErrCodeLimitExceededException:
		return NewLimitExceededError(aerr.Message())
	case ses.ErrCodeMessageRejected:
		return goses.NewMessageRejectedError(aerr.Message())
	default:
		return goaws.ClassifyRequestError(op, err)
	}
}

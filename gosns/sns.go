// gosns manages the SNS topics SES publishes identity notifications to.
package gosns

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/goses/events"
	"github.com/ggarcia209/go-ses/sesmodel"
)

var topicNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}(\.fifo)?$`)

//go:generate mockgen -destination=../mocks/gosnsmock/sns.go -package=gosnsmock . SNSLogic
type SNSLogic interface {
	ListTopics(ctx context.Context) (*ListTopicsResponse, error)
	CreateTopic(ctx context.Context, name string) (*CreateTopicResponse, error)
	EnsureTopics(ctx context.Context, prefix string) (*sesmodel.IdentityNotificationAttributes, error)
	Subscribe(ctx context.Context, endpoint, protocol, topicArn string) (*SubscribeResponse, error)
	SubscribeQueue(ctx context.Context, topicArn, queueArn string, rawDelivery bool) (*SubscribeResponse, error)
	Publish(ctx context.Context, msgStr, topicArn string) (*PublishResponse, error)
	PublishNotification(ctx context.Context, topicArn string, n *events.EmailNotification) (*PublishResponse, error)
}

// SNSClientAPI defines the interface for the AWS SNS client methods used by this package.
//
//go:generate mockgen -destination=./sns_client_api_test.go -package=gosns . SNSClientAPI
type SNSClientAPI interface {
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNS struct {
	svc    SNSClientAPI
	logger *zap.Logger
}

type Option func(*SNS)

func WithLogger(logger *zap.Logger) Option {
	return func(s *SNS) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSNS(config goaws.AwsConfig, opts ...Option) *SNS {
	return newSNS(sns.New(sns.Options{
		Credentials: config.Config.Credentials,
		Region:      config.Config.Region,
	}), opts...)
}

func newSNS(svc SNSClientAPI, opts ...Option) *SNS {
	s := &SNS{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTopics returns the ARNs of all SNS topics in the account, following
// NextToken until the last page.
func (s *SNS) ListTopics(ctx context.Context) (*ListTopicsResponse, error) {
	arns := make([]string, 0)

	input := &sns.ListTopicsInput{}
	for {
		result, err := s.svc.ListTopics(ctx, input)
		if err != nil {
			return nil, goaws.ClassifyAPIError("s.svc.ListTopics", err)
		}

		for _, t := range result.Topics {
			if t.TopicArn != nil {
				arns = append(arns, *t.TopicArn)
			}
		}

		if result.NextToken == nil || *result.NextToken == "" {
			break
		}
		input = &sns.ListTopicsInput{NextToken: result.NextToken}
	}

	return &ListTopicsResponse{TopicArns: arns}, nil
}

// CreateTopic creates a new SNS topic with the given name. Creating a topic
// that already exists returns its ARN.
func (s *SNS) CreateTopic(ctx context.Context, name string) (*CreateTopicResponse, error) {
	if !topicNamePattern.MatchString(name) {
		return nil, NewInvalidTopicNameError(name)
	}

	result, err := s.svc.CreateTopic(ctx, &sns.CreateTopicInput{
		Name: aws.String(name),
	})
	if err != nil {
		return nil, goaws.ClassifyAPIError("s.svc.CreateTopic", err)
	}

	var topicArn string
	if result.TopicArn != nil {
		topicArn = *result.TopicArn
	}

	return &CreateTopicResponse{TopicArn: topicArn}, nil
}

// EnsureTopics creates <prefix>-bounce, <prefix>-complaint and
// <prefix>-delivery and returns them as identity notification attributes,
// ready for SetIdentityNotificationTopic.
func (s *SNS) EnsureTopics(ctx context.Context, prefix string) (*sesmodel.IdentityNotificationAttributes, error) {
	attrs := sesmodel.NewIdentityNotificationAttributes()
	for _, nt := range sesmodel.NotificationType("").Values() {
		name := prefix + "-" + strings.ToLower(string(nt))
		res, err := s.CreateTopic(ctx, name)
		if err != nil {
			return nil, err
		}

		switch nt {
		case sesmodel.NotificationTypeBounce:
			attrs.SetBounceTopic(res.TopicArn)
		case sesmodel.NotificationTypeComplaint:
			attrs.SetComplaintTopic(res.TopicArn)
		case sesmodel.NotificationTypeDelivery:
			attrs.SetDeliveryTopic(res.TopicArn)
		}
	}

	s.logger.Info("notification topics ready",
		zap.String("prefix", prefix),
		zap.Stringer("topics", attrs),
	)
	return attrs, nil
}

// Subscribe creates a new subscription for an endpoint.
func (s *SNS) Subscribe(ctx context.Context, endpoint, protocol, topicArn string) (*SubscribeResponse, error) {
	return s.subscribe(ctx, endpoint, protocol, topicArn, nil)
}

// SubscribeQueue subscribes an SQS queue to a topic. With rawDelivery the
// queue receives the SES notification without the SNS envelope.
func (s *SNS) SubscribeQueue(ctx context.Context, topicArn, queueArn string, rawDelivery bool) (*SubscribeResponse, error) {
	var attrs map[string]string
	if rawDelivery {
		attrs = map[string]string{"RawMessageDelivery": "true"}
	}
	return s.subscribe(ctx, queueArn, ProtocolSQS, topicArn, attrs)
}

func (s *SNS) subscribe(ctx context.Context, endpoint, protocol, topicArn string, attrs map[string]string) (*SubscribeResponse, error) {
	if !validProtocols[protocol] {
		return nil, NewInvalidProtocolError(protocol)
	}

	result, err := s.svc.Subscribe(ctx, &sns.SubscribeInput{
		Endpoint:              aws.String(endpoint),
		Protocol:              aws.String(protocol),
		ReturnSubscriptionArn: true, // Return the ARN, even if user has yet to confirm
		TopicArn:              aws.String(topicArn),
		Attributes:            attrs,
	})
	if err != nil {
		return nil, goaws.ClassifyAPIError("s.svc.Subscribe", err)
	}

	var subscriptionArn string
	if result.SubscriptionArn != nil {
		subscriptionArn = *result.SubscriptionArn
	}

	s.logger.Debug("subscribed",
		zap.String("topicArn", topicArn),
		zap.String("protocol", protocol),
		zap.String("subscriptionArn", subscriptionArn),
	)
	return &SubscribeResponse{SubscriptionArn: subscriptionArn}, nil
}

// Publish publishes a new message to a Topic and returns the message ID
// of the published message.
func (s *SNS) Publish(ctx context.Context, msgStr, topicArn string) (*PublishResponse, error) {
	return s.publish(ctx, &sns.PublishInput{
		Message:  aws.String(msgStr),
		TopicArn: aws.String(topicArn),
	})
}

// PublishNotification republishes a decoded SES notification as JSON, with
// its type as a message attribute.
func (s *SNS) PublishNotification(ctx context.Context, topicArn string, n *events.EmailNotification) (*PublishResponse, error) {
	if n == nil || n.Type() == "" {
		return nil, events.NewInvalidNotificationError("missing notification type")
	}

	body, err := json.Marshal(n)
	if err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("json.Marshal: %w", err))
	}

	return s.publish(ctx, &sns.PublishInput{
		Message:  aws.String(string(body)),
		TopicArn: aws.String(topicArn),
		MessageAttributes: map[string]types.MessageAttributeValue{
			NotificationTypeAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.Type()),
			},
		},
	})
}

func (s *SNS) publish(ctx context.Context, input *sns.PublishInput) (*PublishResponse, error) {
	result, err := s.svc.Publish(ctx, input)
	if err != nil {
		return nil, goaws.ClassifyAPIError("s.svc.Publish", err)
	}

	var messageId string
	if result.MessageId != nil {
		messageId = *result.MessageId
	}

	return &PublishResponse{MessageId: messageId}, nil
}

package gosqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	json "github.com/goccy/go-json"

	"github.com/ggarcia209/go-ses/goaws"
)

// QueuesLogic defines common methods for SQS Queues
//
//go:generate mockgen -destination=../mocks/gosqsmock/queues.go -package=gosqsmock . QueuesLogic
type QueuesLogic interface {
	CreateQueue(ctx context.Context, name string, options QueueOptions, tags map[string]string) (*CreateQueueResponse, error)
	GetQueueURL(ctx context.Context, name string) (*GetQueueUrlResponse, error)
	GetQueueArn(ctx context.Context, url string) (*GetQueueArnResponse, error)
	AllowTopics(ctx context.Context, url, queueArn string, topicArns ...string) error
	DeleteQueue(ctx context.Context, url string) error
}

// SQSQueuesClientAPI defines the interface for the AWS SQS client methods used by this package.
//
//go:generate mockgen -destination=./queues_client_api_test.go -package=gosqs . SQSQueuesClientAPI
type SQSQueuesClientAPI interface {
	CreateQueue(ctx context.Context, params *sqs.CreateQueueInput, optFns ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
	SetQueueAttributes(ctx context.Context, params *sqs.SetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.SetQueueAttributesOutput, error)
	DeleteQueue(ctx context.Context, params *sqs.DeleteQueueInput, optFns ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error)
}

// Queues implements Queues logic
// for interacting with AWS SQS Queues
type Queues struct {
	svc SQSQueuesClientAPI
}

func NewQueues(svc SQSQueuesClientAPI) *Queues {
	return &Queues{
		svc: svc,
	}
}

// CreateQueue creates a new SQS queue per the given name, options, & tags arguments and returns the url of the queue and/or error
func (s *Queues) CreateQueue(ctx context.Context, name string, options QueueOptions, tags map[string]string) (*CreateQueueResponse, error) {
	input := &sqs.CreateQueueInput{
		QueueName:  aws.String(name),
		Attributes: options.attributes(),
	}
	if len(tags) > 0 {
		input.Tags = tags
	}

	result, err := s.svc.CreateQueue(ctx, input)
	if err != nil {
		return nil, goaws.ClassifyAPIError("s.svc.CreateQueue", err)
	}

	if result.QueueUrl == nil {
		return nil, NewEmptyQueueUrlInResponseError()
	}
	return &CreateQueueResponse{
		QueueUrl: *result.QueueUrl,
	}, nil
}

// GetQueueURL retrives the URL for the given queue name
func (s *Queues) GetQueueURL(ctx context.Context, name string) (*GetQueueUrlResponse, error) {
	result, err := s.svc.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(name),
	})
	if err != nil {
		return nil, queueError("s.svc.GetQueueUrl", name, err)
	}

	if result.QueueUrl == nil {
		return nil, NewEmptyQueueUrlInResponseError()
	}
	return &GetQueueUrlResponse{
		QueueUrl: *result.QueueUrl,
	}, nil
}

// GetQueueArn returns the ARN SNS subscriptions use to address the queue.
func (s *Queues) GetQueueArn(ctx context.Context, url string) (*GetQueueArnResponse, error) {
	if url == "" {
		return nil, NewEmptyQueueUrlInRequestError()
	}

	result, err := s.svc.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(url),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return nil, queueError("s.svc.GetQueueAttributes", url, err)
	}

	arn, ok := result.Attributes[string(types.QueueAttributeNameQueueArn)]
	if !ok || arn == "" {
		return nil, NewMissingQueueArnError(url)
	}
	return &GetQueueArnResponse{QueueArn: arn}, nil
}

type queuePolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string            `json:"Sid"`
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal"`
	Action    string            `json:"Action"`
	Resource  string            `json:"Resource"`
	Condition map[string]any    `json:"Condition"`
}

// AllowTopics replaces the queue policy with one that lets the given SNS
// topics send messages to the queue.
func (s *Queues) AllowTopics(ctx context.Context, url, queueArn string, topicArns ...string) error {
	if url == "" {
		return NewEmptyQueueUrlInRequestError()
	}

	policy := queuePolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Sid:       "AllowSESNotificationTopics",
			Effect:    "Allow",
			Principal: map[string]string{"Service": "sns.amazonaws.com"},
			Action:    "sqs:SendMessage",
			Resource:  queueArn,
			Condition: map[string]any{
				"ArnEquals": map[string][]string{"aws:SourceArn": topicArns},
			},
		}},
	}
	doc, err := json.Marshal(policy)
	if err != nil {
		return goaws.NewInternalError(fmt.Errorf("json.Marshal: %w", err))
	}

	if _, err := s.svc.SetQueueAttributes(ctx, &sqs.SetQueueAttributesInput{
		QueueUrl: aws.String(url),
		Attributes: map[string]string{
			string(types.QueueAttributeNamePolicy): string(doc),
		},
	}); err != nil {
		return queueError("s.svc.SetQueueAttributes", url, err)
	}
	return nil
}

// DeleteQueue deletes the queue at the given URL
func (s *Queues) DeleteQueue(ctx context.Context, url string) error {
	if _, err := s.svc.DeleteQueue(ctx, &sqs.DeleteQueueInput{
		QueueUrl: aws.String(url),
	}); err != nil {
		return queueError("s.svc.DeleteQueue", url, err)
	}

	return nil
}

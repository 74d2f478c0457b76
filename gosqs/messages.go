package gosqs

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/ggarcia209/go-ses/goaws"
)

// MessagesLogic defines common methods for SQS Messages
//
//go:generate mockgen -destination=../mocks/gosqsmock/messages.go -package=gosqsmock . MessagesLogic
type MessagesLogic interface {
	ReceiveMessage(ctx context.Context, options RecMsgOptions) (*ReceiveMessageResponse, error)
	DeleteMessage(ctx context.Context, url, handle string) error
	DeleteMessageBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error)
	ChangeMessageVisibilityBatch(ctx context.Context, req ChangeVisibilityBatchRequest) (*BatchResponse, error)
}

// SQSMessagesClientAPI defines the interface for the AWS SQS client methods used by this package.
//
//go:generate mockgen -destination=./messages_client_api_test.go -package=gosqs . SQSMessagesClientAPI
type SQSMessagesClientAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	DeleteMessageBatch(ctx context.Context, params *sqs.DeleteMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageBatchOutput, error)
	ChangeMessageVisibilityBatch(ctx context.Context, params *sqs.ChangeMessageVisibilityBatchInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityBatchOutput, error)
}

type Messages struct {
	svc SQSMessagesClientAPI
}

func NewMessages(svc SQSMessagesClientAPI) *Messages {
	return &Messages{
		svc: svc,
	}
}

// ReceiveMessage receives up to MaxNumberOfMessages messages from a queue.
// Out of range options are clamped to the limits SQS accepts.
func (s *Messages) ReceiveMessage(ctx context.Context, options RecMsgOptions) (*ReceiveMessageResponse, error) {
	if options.QueueURL == "" {
		return nil, NewEmptyQueueUrlInRequestError()
	}

	options.MaxNumberOfMessages = clamp(options.MaxNumberOfMessages, 1, maxBatchEntries)
	options.VisibilityTimeout = clamp(options.VisibilityTimeout, 0, 43200)
	options.WaitTimeSeconds = clamp(options.WaitTimeSeconds, 0, 20)

	out, err := s.svc.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:                    aws.String(options.QueueURL),
		MessageSystemAttributeNames: options.AttributeNames,
		MaxNumberOfMessages:         options.MaxNumberOfMessages,
		MessageAttributeNames:       options.MessageAttributeNames,
		VisibilityTimeout:           options.VisibilityTimeout,
		WaitTimeSeconds:             options.WaitTimeSeconds,
	})
	if err != nil {
		return nil, queueError("s.svc.ReceiveMessage", options.QueueURL, err)
	}

	msgs := make([]*Message, 0, len(out.Messages))
	for _, msg := range out.Messages {
		msgs = append(msgs, convertMessage(msg))
	}
	return &ReceiveMessageResponse{Messages: msgs}, nil
}

// convert types.Message to Message struct
func convertMessage(msg types.Message) *Message {
	attributes := make(map[string]string, len(msg.Attributes))
	for k, v := range msg.Attributes {
		attributes[k] = v
	}
	// binary attribute values are dropped
	msgAttributes := make(map[string]string, len(msg.MessageAttributes))
	for k, v := range msg.MessageAttributes {
		if v.StringValue != nil {
			msgAttributes[k] = *v.StringValue
		}
	}

	return &Message{
		Attributes:        attributes,
		Body:              aws.ToString(msg.Body),
		MessageAttributes: msgAttributes,
		MessageId:         aws.ToString(msg.MessageId),
		ReceiptHandle:     aws.ToString(msg.ReceiptHandle),
	}
}

// DeleteMessage deletes a message from the specified queue (by url) with the
// given handle.
func (s *Messages) DeleteMessage(ctx context.Context, url, handle string) error {
	if url == "" {
		return NewEmptyQueueUrlInRequestError()
	}
	if _, err := s.svc.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(url),
		ReceiptHandle: aws.String(handle),
	}); err != nil {
		return queueError("s.svc.DeleteMessage", url, err)
	}
	return nil
}

// DeleteMessageBatch deletes up to ten messages. Entries SQS refuses are
// reported in Failed with their receipt handle.
func (s *Messages) DeleteMessageBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	entries := make([]types.DeleteMessageBatchRequestEntry, 0, len(req.MessageIDs))
	for i, id := range req.MessageIDs {
		entries = append(entries, types.DeleteMessageBatchRequestEntry{
			Id:            aws.String(id),
			ReceiptHandle: aws.String(req.ReceiptHandles[i]),
		})
	}

	out, err := s.svc.DeleteMessageBatch(ctx, &sqs.DeleteMessageBatchInput{
		Entries:  entries,
		QueueUrl: aws.String(req.QueueURL),
	})
	if err != nil {
		return nil, queueError("s.svc.DeleteMessageBatch", req.QueueURL, err)
	}

	resp := newBatchResponse(out.Failed, req.handles())
	for _, entry := range out.Successful {
		resp.Successful = append(resp.Successful, aws.ToString(entry.Id))
	}
	return resp, nil
}

// ChangeMessageVisibilityBatch updates the visibility timeout for a batch of
// messages.
func (s *Messages) ChangeMessageVisibilityBatch(ctx context.Context, req ChangeVisibilityBatchRequest) (*BatchResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	entries := make([]types.ChangeMessageVisibilityBatchRequestEntry, 0, len(req.MessageIDs))
	for i, id := range req.MessageIDs {
		entries = append(entries, types.ChangeMessageVisibilityBatchRequestEntry{
			Id:                aws.String(id),
			ReceiptHandle:     aws.String(req.ReceiptHandles[i]),
			VisibilityTimeout: clamp(req.TimeoutSeconds, 0, 43200),
		})
	}

	out, err := s.svc.ChangeMessageVisibilityBatch(ctx, &sqs.ChangeMessageVisibilityBatchInput{
		Entries:  entries,
		QueueUrl: aws.String(req.QueueURL),
	})
	if err != nil {
		return nil, queueError("s.svc.ChangeMessageVisibilityBatch", req.QueueURL, err)
	}

	resp := newBatchResponse(out.Failed, req.handles())
	for _, entry := range out.Successful {
		resp.Successful = append(resp.Successful, aws.ToString(entry.Id))
	}
	return resp, nil
}

func (r BatchRequest) validate() error {
	switch {
	case r.QueueURL == "":
		return NewEmptyQueueUrlInRequestError()
	case len(r.MessageIDs) != len(r.ReceiptHandles):
		return NewInvalidReceiptHandlesError(len(r.MessageIDs), len(r.ReceiptHandles))
	case len(r.MessageIDs) == 0:
		return NewNoMessageIDsInBatchRequestError()
	case len(r.MessageIDs) > maxBatchEntries:
		return NewMaxMessagesExceededError(len(r.MessageIDs))
	}
	return nil
}

func (r BatchRequest) handles() map[string]string {
	handles := make(map[string]string, len(r.MessageIDs))
	for i, id := range r.MessageIDs {
		handles[id] = r.ReceiptHandles[i]
	}
	return handles
}

func newBatchResponse(failed []types.BatchResultErrorEntry, handles map[string]string) *BatchResponse {
	resp := &BatchResponse{
		Failed:     make([]BatchErrEntry, 0, len(failed)),
		Successful: make([]string, 0),
	}
	for _, entry := range failed {
		id := aws.ToString(entry.Id)
		resp.Failed = append(resp.Failed, BatchErrEntry{
			ErrorCode:     aws.ToString(entry.Code),
			MessageID:     id,
			ReceiptHandle: handles[id],
			ErrorMessage:  aws.ToString(entry.Message),
			SenderFault:   entry.SenderFault,
		})
	}
	return resp
}

// queueError maps a missing queue or bad address to typed errors and
// classifies everything else.
func queueError(op, queue string, err error) error {
	var notExist *types.QueueDoesNotExist
	var invalidAddress *types.InvalidAddress
	var re *awshttp.ResponseError
	switch {
	case errors.As(err, &notExist):
		return NewQueueNotFoundError(queue)
	case errors.As(err, &invalidAddress):
		return NewInvalidAddressError(queue)
	case errors.As(err, &re) && re.ResponseError != nil && re.Response != nil &&
		re.HTTPStatusCode() == http.StatusNotFound:
		return NewQueueNotFoundError(queue)
	default:
		return goaws.ClassifyAPIError(op, err)
	}
}

func clamp(v, lo, hi int32) int32 {
	return max(lo, min(v, hi))
}

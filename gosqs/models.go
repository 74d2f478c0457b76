package gosqs

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Batch operations accept at most this many entries.
const maxBatchEntries = 10

// FeedbackQueueDefault contains the attribute values used for new feedback
// queues. SNS notifications are small and a failed message is retried for
// four days before the redrive policy, when set, moves it aside.
var FeedbackQueueDefault = QueueOptions{
	MessageRetentionPeriod:        "345600",
	ReceiveMessageWaitTimeSeconds: "20",
	VisibilityTimeout:             "30",
}

// QueueOptions contains struct fields for setting custom options when creating a new SQS queue.
// Empty fields are left to the SQS default.
type QueueOptions struct {
	DelaySeconds                  string
	MaximumMessageSize            string
	MessageRetentionPeriod        string
	Policy                        string // IAM Policy
	ReceiveMessageWaitTimeSeconds string
	RedrivePolicy                 string
	VisibilityTimeout             string
	KmsMasterKeyId                string
	KmsDataKeyReusePeriodSeconds  string
}

func (o QueueOptions) attributes() map[string]string {
	attrs := make(map[string]string)
	set := func(k, v string) {
		if v != "" {
			attrs[k] = v
		}
	}
	set(string(types.QueueAttributeNameDelaySeconds), o.DelaySeconds)
	set(string(types.QueueAttributeNameMaximumMessageSize), o.MaximumMessageSize)
	set(string(types.QueueAttributeNameMessageRetentionPeriod), o.MessageRetentionPeriod)
	set(string(types.QueueAttributeNamePolicy), o.Policy)
	set(string(types.QueueAttributeNameReceiveMessageWaitTimeSeconds), o.ReceiveMessageWaitTimeSeconds)
	set(string(types.QueueAttributeNameRedrivePolicy), o.RedrivePolicy)
	set(string(types.QueueAttributeNameVisibilityTimeout), o.VisibilityTimeout)
	set(string(types.QueueAttributeNameKmsMasterKeyId), o.KmsMasterKeyId)
	set(string(types.QueueAttributeNameKmsDataKeyReusePeriodSeconds), o.KmsDataKeyReusePeriodSeconds)
	return attrs
}

type CreateQueueResponse struct {
	QueueUrl string `json:"queue_url"`
}

type GetQueueUrlResponse struct {
	QueueUrl string `json:"queue_url"`
}

type GetQueueArnResponse struct {
	QueueArn string `json:"queue_arn"`
}

// RecMsgDefault contains the receive options the feedback consumer uses:
// full batches, long polling and the receive count attribute.
var RecMsgDefault = RecMsgOptions{
	AttributeNames:      []types.MessageSystemAttributeName{types.MessageSystemAttributeNameApproximateReceiveCount},
	MaxNumberOfMessages: 10,
	VisibilityTimeout:   30,
	WaitTimeSeconds:     20,
}

// RecMsgOptions is used to pass receive message options to the sqs.ReceiveMessageInput object.
type RecMsgOptions struct {
	AttributeNames        []types.MessageSystemAttributeName
	MaxNumberOfMessages   int32
	MessageAttributeNames []string
	QueueURL              string
	VisibilityTimeout     int32
	WaitTimeSeconds       int32
}

// ReceiveMessageResponse contains an array of messages received from SQS
type ReceiveMessageResponse struct {
	Messages []*Message `json:"messages"`
}

// Message wraps the sqs.Message type.
type Message struct {
	Attributes        map[string]string `json:"attributes"`
	Body              string            `json:"body"`
	MessageAttributes map[string]string `json:"message_attributes"`
	MessageId         string            `json:"message_id"`
	ReceiptHandle     string            `json:"receipt_handle"`
}

// BatchRequest names a batch of received messages. MessageIDs[i] and
// ReceiptHandles[i] refer to the same message.
type BatchRequest struct {
	QueueURL       string   `json:"queue_url"`
	MessageIDs     []string `json:"message_ids"`
	ReceiptHandles []string `json:"receipt_handles"`
}

// ChangeVisibilityBatchRequest makes a batch of messages visible again
// after TimeoutSeconds.
type ChangeVisibilityBatchRequest struct {
	BatchRequest
	TimeoutSeconds int32 `json:"timeout_seconds"`
}

// BatchResponse wraps the Successful and Failed entries of a batch output.
type BatchResponse struct {
	Failed     []BatchErrEntry `json:"failed"`
	Successful []string        `json:"successful"`
}

// BatchErrEntry wraps the sqs.BatchResultErrorEntry type.
type BatchErrEntry struct {
	ErrorCode     string `json:"error_code"`
	MessageID     string `json:"message_id"`
	ReceiptHandle string `json:"receipt_handle"` // not in sqs.BatchResultErrorEntry type - added for utility
	ErrorMessage  string `json:"error_message"`
	SenderFault   bool   `json:"sender_fault"`
}

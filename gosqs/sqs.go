// gosqs contains common methods for interacting with AWS SQS, and a
// consumer for the SES feedback notifications SNS delivers to a queue.
package gosqs

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/ggarcia209/go-ses/goaws"
)

type SQS struct {
	Queues   QueuesLogic
	Messages MessagesLogic
}

func NewSQS(config goaws.AwsConfig) *SQS {
	svc := sqs.NewFromConfig(config.Config)
	return &SQS{
		Queues:   NewQueues(svc),
		Messages: NewMessages(svc),
	}
}

// Feedback returns a consumer reading through s.Messages.
func (s *SQS) Feedback(opts ...FeedbackOption) *Feedback {
	return NewFeedback(s.Messages, opts...)
}

package gosns

type ListTopicsResponse struct {
	TopicArns []string
}

type CreateTopicResponse struct {
	TopicArn string
}

type SubscribeResponse struct {
	SubscriptionArn string
}

type PublishResponse struct {
	MessageId string
}

// Subscription protocols accepted by Subscribe.
const (
	ProtocolHTTP        = "http"
	ProtocolHTTPS       = "https"
	ProtocolEmail       = "email"
	ProtocolEmailJSON   = "email-json"
	ProtocolSMS         = "sms"
	ProtocolSQS         = "sqs"
	ProtocolApplication = "application"
	ProtocolLambda      = "lambda"
	ProtocolFirehose    = "firehose"
)

var validProtocols = map[string]bool{
	ProtocolHTTP:        true,
	ProtocolHTTPS:       true,
	ProtocolEmail:       true,
	ProtocolEmailJSON:   true,
	ProtocolSMS:         true,
	ProtocolSQS:         true,
	ProtocolApplication: true,
	ProtocolLambda:      true,
	ProtocolFirehose:    true,
}

// NotificationTypeAttribute is the message attribute PublishNotification
// sets, so subscriptions can filter on it.
const NotificationTypeAttribute = "notificationType"

package events

import (
	json "github.com/goccy/go-json"
)

const snsTypeNotification = "Notification"

// snsEnvelope is the JSON body SNS delivers to SQS and HTTP subscribers
// when raw message delivery is off.
type snsEnvelope struct {
	Type      string `json:"Type"`
	MessageId string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
}

// DecodeNotification decodes an SES notification, either bare or wrapped in
// an SNS envelope.
func DecodeNotification(data []byte) (*EmailNotification, error) {
	var env snsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, NewInvalidNotificationError(err.Error())
	}
	if env.Type == snsTypeNotification {
		data = []byte(env.Message)
	}

	var n EmailNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, NewInvalidNotificationError(err.Error())
	}
	if n.Type() == "" {
		return nil, NewInvalidNotificationError("missing notification type")
	}
	return &n, nil
}

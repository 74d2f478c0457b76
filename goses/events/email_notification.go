// Package events decodes the notifications SES publishes for sent and
// received mail.
package events

// Notification and event type values.
const (
	TypeBounce           = "Bounce"
	TypeComplaint        = "Complaint"
	TypeDelivery         = "Delivery"
	TypeSend             = "Send"
	TypeReject           = "Reject"
	TypeOpen             = "Open"
	TypeClick            = "Click"
	TypeRenderingFailure = "Rendering Failure"
	TypeDeliveryDelay    = "DeliveryDelay"
	TypeReceived         = "Received"
)

// EmailNotification wraps the SES Event data type. Identity notifications
// set NotificationType; configuration set event publishing sets EventType.
type EmailNotification struct {
	NotificationType string           `json:"notificationType"`
	EventType        string           `json:"eventType"`
	Bounce           Bounce           `json:"bounce"`
	Complaint        Complaint        `json:"complaint"`
	Delivery         Delivery         `json:"delivery"`
	Send             any              `json:"send"`
	Reject           Reject           `json:"reject"`
	Open             Open             `json:"open"`
	Click            Click            `json:"click"`
	RenderingFailure RenderingFailure `json:"failure"`
	DeliveryDelay    DeliveryDelay    `json:"deliveryDelay"`
	Receipt          Receipt          `json:"receipt"`
	Mail             Mail             `json:"mail"`

	// Content is the raw message, present only for Received notifications
	// published by an SNS receipt action.
	Content string `json:"content"`
}

type Mail struct {
	Timestamp        string              `json:"timestamp"`
	Source           string              `json:"source"`
	SourceArn        string              `json:"sourceArn"`
	SourceIp         string              `json:"sourceIp"`
	SendingAcctId    string              `json:"sendingAccountId"`
	MessageId        string              `json:"messageId"`
	Destination      []string            `json:"destination"`
	HeadersTruncated bool                `json:"headersTruncated"`
	Headers          []header            `json:"headers"`
	CommonHeaders    commonHeaders       `json:"commonHeaders"`
	Tags             map[string][]string `json:"tags"`
}

type header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type commonHeaders struct {
	ReturnPath string   `json:"returnPath"`
	From       []string `json:"from"`
	Date       string   `json:"date"`
	To         []string `json:"to"`
	Cc         []string `json:"cc"`
	MessageId  string   `json:"messageId"`
	Subject    string   `json:"subject"`
}

// Type returns the notification or event type, whichever is set.
func (n *EmailNotification) Type() string {
	if n.NotificationType != "" {
		return n.NotificationType
	}
	return n.EventType
}

// Header returns the value of the first mail header named name.
func (m *Mail) Header(name string) (string, bool) {
	for _, h := range m.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Recipients returns the addresses a Bounce, Complaint or Delivery
// notification is about. Other types return nil.
func (n *EmailNotification) Recipients() []string {
	switch n.Type() {
	case TypeBounce:
		return n.Bounce.Recipients()
	case TypeComplaint:
		return n.Complaint.Recipients()
	case TypeDelivery:
		return n.Delivery.Recipients
	default:
		return nil
	}
}

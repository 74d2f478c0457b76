package sesmodel

// BounceAction rejects received mail by returning a bounce response to the
// sender and, optionally, publishes a notification to Amazon SNS.
type BounceAction struct {
	// SNS topic notified when the bounce action is taken.
	TopicArn *string `json:"TopicArn,omitempty"`

	// SMTP reply code as defined by RFC 5321.
	SmtpReplyCode *string `json:"SmtpReplyCode,omitempty"`

	// SMTP enhanced status code as defined by RFC 3463.
	StatusCode *string `json:"StatusCode,omitempty"`

	// Human-readable text included in the bounce message.
	Message *string `json:"Message,omitempty"`

	// Address of the bounce message sender. Must be verified with SES.
	Sender *string `json:"Sender,omitempty"`
}

func NewBounceAction() *BounceAction {
	return &BounceAction{}
}

// SetTopicArn sets the TopicArn field's value.
func (s *BounceAction) SetTopicArn(v string) *BounceAction {
	s.TopicArn = &v
	return s
}

// SetSmtpReplyCode sets the SmtpReplyCode field's value.
func (s *BounceAction) SetSmtpReplyCode(v string) *BounceAction {
	s.SmtpReplyCode = &v
	return s
}

// SetStatusCode sets the StatusCode field's value.
func (s *BounceAction) SetStatusCode(v string) *BounceAction {
	s.StatusCode = &v
	return s
}

// SetMessage sets the Message field's value.
func (s *BounceAction) SetMessage(v string) *BounceAction {
	s.Message = &v
	return s
}

// SetSender sets the Sender field's value.
func (s *BounceAction) SetSender(v string) *BounceAction {
	s.Sender = &v
	return s
}

func (s *BounceAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("TopicArn", s.TopicArn)
	f.str("SmtpReplyCode", s.SmtpReplyCode)
	f.str("StatusCode", s.StatusCode)
	f.str("Message", s.Message)
	f.str("Sender", s.Sender)
	return f.String()
}

func (s *BounceAction) Equal(other *BounceAction) bool {
	return equalRecords(s, other)
}

func (s *BounceAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *BounceAction) Clone() *BounceAction {
	return cloneRecord(s)
}

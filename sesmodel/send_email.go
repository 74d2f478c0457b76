package sesmodel

// SendEmailRequest composes and sends a structured message.
type SendEmailRequest struct {
	// Sender address. Must be a verified identity, or one the caller is
	// authorized to send for through SourceArn.
	Source *string `json:"Source,omitempty"`

	Destination *Destination `json:"Destination,omitempty"`
	Message     *Message     `json:"Message,omitempty"`

	ReplyToAddresses []string `json:"ReplyToAddresses,omitempty"`

	// Address bounces and complaints are forwarded to when feedback
	// forwarding is enabled.
	ReturnPath *string `json:"ReturnPath,omitempty"`

	// Sending authorization ARNs.
	SourceArn     *string `json:"SourceArn,omitempty"`
	ReturnPathArn *string `json:"ReturnPathArn,omitempty"`

	Tags                 []*MessageTag `json:"Tags,omitempty"`
	ConfigurationSetName *string       `json:"ConfigurationSetName,omitempty"`
}

// NewSendEmailRequest returns a request with the three fields the service
// requires. List fields start empty.
func NewSendEmailRequest(source string, destination *Destination, message *Message) *SendEmailRequest {
	return &SendEmailRequest{
		Source:           &source,
		Destination:      destination,
		Message:          message,
		ReplyToAddresses: []string{},
		Tags:             []*MessageTag{},
	}
}

// SetSource sets the Source field's value.
func (s *SendEmailRequest) SetSource(v string) *SendEmailRequest {
	s.Source = &v
	return s
}

// SetDestination sets the Destination field's value.
func (s *SendEmailRequest) SetDestination(v *Destination) *SendEmailRequest {
	s.Destination = v
	return s
}

// SetMessage sets the Message field's value.
func (s *SendEmailRequest) SetMessage(v *Message) *SendEmailRequest {
	s.Message = v
	return s
}

// SetReplyToAddresses replaces the ReplyToAddresses list with a copy of v.
func (s *SendEmailRequest) SetReplyToAddresses(v []string) *SendEmailRequest {
	s.ReplyToAddresses = copyStrings(v)
	return s
}

// AddReplyToAddresses appends to the ReplyToAddresses list.
func (s *SendEmailRequest) AddReplyToAddresses(v ...string) *SendEmailRequest {
	if s.ReplyToAddresses == nil {
		s.ReplyToAddresses = make([]string, 0, len(v))
	}
	s.ReplyToAddresses = append(s.ReplyToAddresses, v...)
	return s
}

// SetReturnPath sets the ReturnPath field's value.
func (s *SendEmailRequest) SetReturnPath(v string) *SendEmailRequest {
	s.ReturnPath = &v
	return s
}

// SetSourceArn sets the SourceArn field's value.
func (s *SendEmailRequest) SetSourceArn(v string) *SendEmailRequest {
	s.SourceArn = &v
	return s
}

// SetReturnPathArn sets the ReturnPathArn field's value.
func (s *SendEmailRequest) SetReturnPathArn(v string) *SendEmailRequest {
	s.ReturnPathArn = &v
	return s
}

// SetTags replaces the Tags list with a copy of v.
func (s *SendEmailRequest) SetTags(v []*MessageTag) *SendEmailRequest {
	s.Tags = copyRecords(v)
	return s
}

// AddTags appends to the Tags list.
func (s *SendEmailRequest) AddTags(v ...*MessageTag) *SendEmailRequest {
	if s.Tags == nil {
		s.Tags = make([]*MessageTag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

// SetConfigurationSetName sets the ConfigurationSetName field's value.
func (s *SendEmailRequest) SetConfigurationSetName(v string) *SendEmailRequest {
	s.ConfigurationSetName = &v
	return s
}

func (s *SendEmailRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Source", s.Source)
	addNested(f, "Destination", s.Destination)
	addNested(f, "Message", s.Message)
	f.strings("ReplyToAddresses", s.ReplyToAddresses)
	f.str("ReturnPath", s.ReturnPath)
	f.str("SourceArn", s.SourceArn)
	f.str("ReturnPathArn", s.ReturnPathArn)
	addNestedList(f, "Tags", s.Tags)
	f.str("ConfigurationSetName", s.ConfigurationSetName)
	return f.String()
}

func (s *SendEmailRequest) Equal(other *SendEmailRequest) bool {
	return equalRecords(s, other)
}

func (s *SendEmailRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SendEmailRequest) Clone() *SendEmailRequest {
	return cloneRecord(s)
}

type SendEmailResult struct {
	MessageId *string `json:"MessageId,omitempty"`
}

func (s *SendEmailResult) SetMessageId(v string) *SendEmailResult {
	s.MessageId = &v
	return s
}

func (s *SendEmailResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("MessageId", s.MessageId)
	return f.String()
}

func (s *SendEmailResult) Equal(other *SendEmailResult) bool {
	return equalRecords(s, other)
}

func (s *SendEmailResult) Hash() uint64 {
	return hashRecord(s)
}

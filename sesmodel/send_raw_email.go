package sesmodel

// SendRawEmailRequest sends a message whose headers and MIME body are
// supplied by the caller.
type SendRawEmailRequest struct {
	Source *string `json:"Source,omitempty"`

	// Envelope recipients. When empty the service takes them from the To,
	// Cc and Bcc headers of the raw message.
	Destinations []string `json:"Destinations,omitempty"`

	RawMessage *RawMessage `json:"RawMessage,omitempty"`

	FromArn              *string       `json:"FromArn,omitempty"`
	SourceArn            *string       `json:"SourceArn,omitempty"`
	ReturnPathArn        *string       `json:"ReturnPathArn,omitempty"`
	Tags                 []*MessageTag `json:"Tags,omitempty"`
	ConfigurationSetName *string       `json:"ConfigurationSetName,omitempty"`
}

func NewSendRawEmailRequest(rawMessage *RawMessage) *SendRawEmailRequest {
	return &SendRawEmailRequest{
		Destinations: []string{},
		RawMessage:   rawMessage,
		Tags:         []*MessageTag{},
	}
}

// SetSource sets the Source field's value.
func (s *SendRawEmailRequest) SetSource(v string) *SendRawEmailRequest {
	s.Source = &v
	return s
}

// SetDestinations replaces the Destinations list with a copy of v.
func (s *SendRawEmailRequest) SetDestinations(v []string) *SendRawEmailRequest {
	s.Destinations = copyStrings(v)
	return s
}

// AddDestinations appends to the Destinations list.
func (s *SendRawEmailRequest) AddDestinations(v ...string) *SendRawEmailRequest {
	if s.Destinations == nil {
		s.Destinations = make([]string, 0, len(v))
	}
	s.Destinations = append(s.Destinations, v...)
	return s
}

// SetRawMessage sets the RawMessage field's value.
func (s *SendRawEmailRequest) SetRawMessage(v *RawMessage) *SendRawEmailRequest {
	s.RawMessage = v
	return s
}

// SetFromArn sets the FromArn field's value.
func (s *SendRawEmailRequest) SetFromArn(v string) *SendRawEmailRequest {
	s.FromArn = &v
	return s
}

// SetSourceArn sets the SourceArn field's value.
func (s *SendRawEmailRequest) SetSourceArn(v string) *SendRawEmailRequest {
	s.SourceArn = &v
	return s
}

// SetReturnPathArn sets the ReturnPathArn field's value.
func (s *SendRawEmailRequest) SetReturnPathArn(v string) *SendRawEmailRequest {
	s.ReturnPathArn = &v
	return s
}

// SetTags replaces the Tags list with a copy of v.
func (s *SendRawEmailRequest) SetTags(v []*MessageTag) *SendRawEmailRequest {
	s.Tags = copyRecords(v)
	return s
}

// AddTags appends to the Tags list.
func (s *SendRawEmailRequest) AddTags(v ...*MessageTag) *SendRawEmailRequest {
	if s.Tags == nil {
		s.Tags = make([]*MessageTag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

// SetConfigurationSetName sets the ConfigurationSetName field's value.
func (s *SendRawEmailRequest) SetConfigurationSetName(v string) *SendRawEmailRequest {
	s.ConfigurationSetName = &v
	return s
}

func (s *SendRawEmailRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Source", s.Source)
	f.strings("Destinations", s.Destinations)
	addNested(f, "RawMessage", s.RawMessage)
	f.str("FromArn", s.FromArn)
	f.str("SourceArn", s.SourceArn)
	f.str("ReturnPathArn", s.ReturnPathArn)
	addNestedList(f, "Tags", s.Tags)
	f.str("ConfigurationSetName", s.ConfigurationSetName)
	return f.String()
}

func (s *SendRawEmailRequest) Equal(other *SendRawEmailRequest) bool {
	return equalRecords(s, other)
}

func (s *SendRawEmailRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SendRawEmailRequest) Clone() *SendRawEmailRequest {
	return cloneRecord(s)
}

type SendRawEmailResult struct {
	MessageId *string `json:"MessageId,omitempty"`
}

func (s *SendRawEmailResult) SetMessageId(v string) *SendRawEmailResult {
	s.MessageId = &v
	return s
}

func (s *SendRawEmailResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("MessageId", s.MessageId)
	return f.String()
}

func (s *SendRawEmailResult) Equal(other *SendRawEmailResult) bool {
	return equalRecords(s, other)
}

func (s *SendRawEmailResult) Hash() uint64 {
	return hashRecord(s)
}

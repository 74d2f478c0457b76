package sesmodel

// SendTemplatedEmailRequest sends a message rendered from a stored template.
type SendTemplatedEmailRequest struct {
	Source               *string       `json:"Source,omitempty"`
	Destination          *Destination  `json:"Destination,omitempty"`
	ReplyToAddresses     []string      `json:"ReplyToAddresses,omitempty"`
	ReturnPath           *string       `json:"ReturnPath,omitempty"`
	SourceArn            *string       `json:"SourceArn,omitempty"`
	ReturnPathArn        *string       `json:"ReturnPathArn,omitempty"`
	Tags                 []*MessageTag `json:"Tags,omitempty"`
	ConfigurationSetName *string       `json:"ConfigurationSetName,omitempty"`

	// Template name; TemplateArn takes its place for templates shared
	// across accounts.
	Template    *string `json:"Template,omitempty"`
	TemplateArn *string `json:"TemplateArn,omitempty"`

	// JSON object of replacement values, e.g. {"name":"Ana"}.
	TemplateData *string `json:"TemplateData,omitempty"`
}

func NewSendTemplatedEmailRequest() *SendTemplatedEmailRequest {
	return &SendTemplatedEmailRequest{
		ReplyToAddresses: []string{},
		Tags:             []*MessageTag{},
	}
}

func (s *SendTemplatedEmailRequest) SetSource(v string) *SendTemplatedEmailRequest {
	s.Source = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetDestination(v *Destination) *SendTemplatedEmailRequest {
	s.Destination = v
	return s
}

func (s *SendTemplatedEmailRequest) SetReplyToAddresses(v []string) *SendTemplatedEmailRequest {
	s.ReplyToAddresses = copyStrings(v)
	return s
}

func (s *SendTemplatedEmailRequest) AddReplyToAddresses(v ...string) *SendTemplatedEmailRequest {
	if s.ReplyToAddresses == nil {
		s.ReplyToAddresses = make([]string, 0, len(v))
	}
	s.ReplyToAddresses = append(s.ReplyToAddresses, v...)
	return s
}

func (s *SendTemplatedEmailRequest) SetReturnPath(v string) *SendTemplatedEmailRequest {
	s.ReturnPath = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetSourceArn(v string) *SendTemplatedEmailRequest {
	s.SourceArn = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetReturnPathArn(v string) *SendTemplatedEmailRequest {
	s.ReturnPathArn = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetTags(v []*MessageTag) *SendTemplatedEmailRequest {
	s.Tags = copyRecords(v)
	return s
}

func (s *SendTemplatedEmailRequest) AddTags(v ...*MessageTag) *SendTemplatedEmailRequest {
	if s.Tags == nil {
		s.Tags = make([]*MessageTag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

func (s *SendTemplatedEmailRequest) SetConfigurationSetName(v string) *SendTemplatedEmailRequest {
	s.ConfigurationSetName = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetTemplate(v string) *SendTemplatedEmailRequest {
	s.Template = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetTemplateArn(v string) *SendTemplatedEmailRequest {
	s.TemplateArn = &v
	return s
}

func (s *SendTemplatedEmailRequest) SetTemplateData(v string) *SendTemplatedEmailRequest {
	s.TemplateData = &v
	return s
}

func (s *SendTemplatedEmailRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Source", s.Source)
	addNested(f, "Destination", s.Destination)
	f.strings("ReplyToAddresses", s.ReplyToAddresses)
	f.str("ReturnPath", s.ReturnPath)
	f.str("SourceArn", s.SourceArn)
	f.str("ReturnPathArn", s.ReturnPathArn)
	addNestedList(f, "Tags", s.Tags)
	f.str("ConfigurationSetName", s.ConfigurationSetName)
	f.str("Template", s.Template)
	f.str("TemplateArn", s.TemplateArn)
	f.str("TemplateData", s.TemplateData)
	return f.String()
}

func (s *SendTemplatedEmailRequest) Equal(other *SendTemplatedEmailRequest) bool {
	return equalRecords(s, other)
}

func (s *SendTemplatedEmailRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SendTemplatedEmailRequest) Clone() *SendTemplatedEmailRequest {
	return cloneRecord(s)
}

type SendTemplatedEmailResult struct {
	MessageId *string `json:"MessageId,omitempty"`
}

func (s *SendTemplatedEmailResult) SetMessageId(v string) *SendTemplatedEmailResult {
	s.MessageId = &v
	return s
}

func (s *SendTemplatedEmailResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("MessageId", s.MessageId)
	return f.String()
}

func (s *SendTemplatedEmailResult) Equal(other *SendTemplatedEmailResult) bool {
	return equalRecords(s, other)
}

func (s *SendTemplatedEmailResult) Hash() uint64 {
	return hashRecord(s)
}

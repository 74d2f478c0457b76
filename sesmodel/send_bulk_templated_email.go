package sesmodel

// SendBulkTemplatedEmailRequest sends one template to many destinations in a
// single call. Each destination may override the default tags and template
// data.
type SendBulkTemplatedEmailRequest struct {
	Source               *string                 `json:"Source,omitempty"`
	SourceArn            *string                 `json:"SourceArn,omitempty"`
	ReplyToAddresses     []string                `json:"ReplyToAddresses,omitempty"`
	ReturnPath           *string                 `json:"ReturnPath,omitempty"`
	ReturnPathArn        *string                 `json:"ReturnPathArn,omitempty"`
	ConfigurationSetName *string                 `json:"ConfigurationSetName,omitempty"`
	DefaultTags          []*MessageTag           `json:"DefaultTags,omitempty"`
	Template             *string                 `json:"Template,omitempty"`
	TemplateArn          *string                 `json:"TemplateArn,omitempty"`
	DefaultTemplateData  *string                 `json:"DefaultTemplateData,omitempty"`
	Destinations         []*BulkEmailDestination `json:"Destinations,omitempty"`
}

func NewSendBulkTemplatedEmailRequest() *SendBulkTemplatedEmailRequest {
	return &SendBulkTemplatedEmailRequest{
		ReplyToAddresses: []string{},
		DefaultTags:      []*MessageTag{},
		Destinations:     []*BulkEmailDestination{},
	}
}

// SetSource sets the Source field's value.
func (s *SendBulkTemplatedEmailRequest) SetSource(v string) *SendBulkTemplatedEmailRequest {
	s.Source = &v
	return s
}

// SetSourceArn sets the SourceArn field's value.
func (s *SendBulkTemplatedEmailRequest) SetSourceArn(v string) *SendBulkTemplatedEmailRequest {
	s.SourceArn = &v
	return s
}

// SetReplyToAddresses replaces the ReplyToAddresses list with a copy of v.
func (s *SendBulkTemplatedEmailRequest) SetReplyToAddresses(v []string) *SendBulkTemplatedEmailRequest {
	s.ReplyToAddresses = copyStrings(v)
	return s
}

// AddReplyToAddresses appends to the ReplyToAddresses list.
func (s *SendBulkTemplatedEmailRequest) AddReplyToAddresses(v ...string) *SendBulkTemplatedEmailRequest {
	if s.ReplyToAddresses == nil {
		s.ReplyToAddresses = make([]string, 0, len(v))
	}
	s.ReplyToAddresses = append(s.ReplyToAddresses, v...)
	return s
}

// SetReturnPath sets the ReturnPath field's value.
func (s *SendBulkTemplatedEmailRequest) SetReturnPath(v string) *SendBulkTemplatedEmailRequest {
	s.ReturnPath = &v
	return s
}

// SetReturnPathArn sets the ReturnPathArn field's value.
func (s *SendBulkTemplatedEmailRequest) SetReturnPathArn(v string) *SendBulkTemplatedEmailRequest {
	s.ReturnPathArn = &v
	return s
}

// SetConfigurationSetName sets the ConfigurationSetName field's value.
func (s *SendBulkTemplatedEmailRequest) SetConfigurationSetName(v string) *SendBulkTemplatedEmailRequest {
	s.ConfigurationSetName = &v
	return s
}

// SetDefaultTags replaces the DefaultTags list with a copy of v.
func (s *SendBulkTemplatedEmailRequest) SetDefaultTags(v []*MessageTag) *SendBulkTemplatedEmailRequest {
	s.DefaultTags = copyRecords(v)
	return s
}

// AddDefaultTags appends to the DefaultTags list.
func (s *SendBulkTemplatedEmailRequest) AddDefaultTags(v ...*MessageTag) *SendBulkTemplatedEmailRequest {
	if s.DefaultTags == nil {
		s.DefaultTags = make([]*MessageTag, 0, len(v))
	}
	s.DefaultTags = append(s.DefaultTags, v...)
	return s
}

// SetTemplate sets the Template field's value.
func (s *SendBulkTemplatedEmailRequest) SetTemplate(v string) *SendBulkTemplatedEmailRequest {
	s.Template = &v
	return s
}

// SetTemplateArn sets the TemplateArn field's value.
func (s *SendBulkTemplatedEmailRequest) SetTemplateArn(v string) *SendBulkTemplatedEmailRequest {
	s.TemplateArn = &v
	return s
}

// SetDefaultTemplateData sets the DefaultTemplateData field's value.
func (s *SendBulkTemplatedEmailRequest) SetDefaultTemplateData(v string) *SendBulkTemplatedEmailRequest {
	s.DefaultTemplateData = &v
	return s
}

// SetDestinations replaces the Destinations list with a copy of v.
func (s *SendBulkTemplatedEmailRequest) SetDestinations(v []*BulkEmailDestination) *SendBulkTemplatedEmailRequest {
	s.Destinations = copyRecords(v)
	return s
}

// AddDestinations appends to the Destinations list.
func (s *SendBulkTemplatedEmailRequest) AddDestinations(v ...*BulkEmailDestination) *SendBulkTemplatedEmailRequest {
	if s.Destinations == nil {
		s.Destinations = make([]*BulkEmailDestination, 0, len(v))
	}
	s.Destinations = append(s.Destinations, v...)
	return s
}

func (s *SendBulkTemplatedEmailRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Source", s.Source)
	f.str("SourceArn", s.SourceArn)
	f.strings("ReplyToAddresses", s.ReplyToAddresses)
	f.str("ReturnPath", s.ReturnPath)
	f.str("ReturnPathArn", s.ReturnPathArn)
	f.str("ConfigurationSetName", s.ConfigurationSetName)
	addNestedList(f, "DefaultTags", s.DefaultTags)
	f.str("Template", s.Template)
	f.str("TemplateArn", s.TemplateArn)
	f.str("DefaultTemplateData", s.DefaultTemplateData)
	addNestedList(f, "Destinations", s.Destinations)
	return f.String()
}

func (s *SendBulkTemplatedEmailRequest) Equal(other *SendBulkTemplatedEmailRequest) bool {
	return equalRecords(s, other)
}

func (s *SendBulkTemplatedEmailRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SendBulkTemplatedEmailRequest) Clone() *SendBulkTemplatedEmailRequest {
	return cloneRecord(s)
}

// SendBulkTemplatedEmailResult holds one status per requested destination,
// in request order.
type SendBulkTemplatedEmailResult struct {
	Status []*BulkEmailDestinationStatus `json:"Status,omitempty"`
}

func NewSendBulkTemplatedEmailResult() *SendBulkTemplatedEmailResult {
	return &SendBulkTemplatedEmailResult{Status: []*BulkEmailDestinationStatus{}}
}

func (s *SendBulkTemplatedEmailResult) SetStatus(v []*BulkEmailDestinationStatus) *SendBulkTemplatedEmailResult {
	s.Status = copyRecords(v)
	return s
}

func (s *SendBulkTemplatedEmailResult) AddStatus(v ...*BulkEmailDestinationStatus) *SendBulkTemplatedEmailResult {
	if s.Status == nil {
		s.Status = make([]*BulkEmailDestinationStatus, 0, len(v))
	}
	s.Status = append(s.Status, v...)
	return s
}

// Failed returns the statuses of destinations that were not accepted.
func (s *SendBulkTemplatedEmailResult) Failed() []*BulkEmailDestinationStatus {
	var failed []*BulkEmailDestinationStatus
	if s == nil {
		return failed
	}
	for _, st := range s.Status {
		if st != nil && st.Status != BulkEmailStatusSuccess {
			failed = append(failed, st)
		}
	}
	return failed
}

func (s *SendBulkTemplatedEmailResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNestedList(f, "Status", s.Status)
	return f.String()
}

func (s *SendBulkTemplatedEmailResult) Equal(other *SendBulkTemplatedEmailResult) bool {
	return equalRecords(s, other)
}

func (s *SendBulkTemplatedEmailResult) Hash() uint64 {
	return hashRecord(s)
}

package sesmodel

// Destination lists the recipients of a message. The combined number of
// To, Cc and Bcc addresses is limited by the service, not here.
type Destination struct {
	ToAddresses  []string `json:"ToAddresses,omitempty"`
	CcAddresses  []string `json:"CcAddresses,omitempty"`
	BccAddresses []string `json:"BccAddresses,omitempty"`
}

func NewDestination(toAddresses ...string) *Destination {
	return &Destination{
		ToAddresses:  append([]string{}, toAddresses...),
		CcAddresses:  []string{},
		BccAddresses: []string{},
	}
}

// SetToAddresses replaces the ToAddresses list with a copy of v.
func (s *Destination) SetToAddresses(v []string) *Destination {
	s.ToAddresses = copyStrings(v)
	return s
}

// AddToAddresses appends to the ToAddresses list.
func (s *Destination) AddToAddresses(v ...string) *Destination {
	if s.ToAddresses == nil {
		s.ToAddresses = make([]string, 0, len(v))
	}
	s.ToAddresses = append(s.ToAddresses, v...)
	return s
}

// SetCcAddresses replaces the CcAddresses list with a copy of v.
func (s *Destination) SetCcAddresses(v []string) *Destination {
	s.CcAddresses = copyStrings(v)
	return s
}

// AddCcAddresses appends to the CcAddresses list.
func (s *Destination) AddCcAddresses(v ...string) *Destination {
	if s.CcAddresses == nil {
		s.CcAddresses = make([]string, 0, len(v))
	}
	s.CcAddresses = append(s.CcAddresses, v...)
	return s
}

// SetBccAddresses replaces the BccAddresses list with a copy of v.
func (s *Destination) SetBccAddresses(v []string) *Destination {
	s.BccAddresses = copyStrings(v)
	return s
}

// AddBccAddresses appends to the BccAddresses list.
func (s *Destination) AddBccAddresses(v ...string) *Destination {
	if s.BccAddresses == nil {
		s.BccAddresses = make([]string, 0, len(v))
	}
	s.BccAddresses = append(s.BccAddresses, v...)
	return s
}

// Count returns the total number of recipients.
func (s *Destination) Count() int {
	if s == nil {
		return 0
	}
	return len(s.ToAddresses) + len(s.CcAddresses) + len(s.BccAddresses)
}

func (s *Destination) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.strings("ToAddresses", s.ToAddresses)
	f.strings("CcAddresses", s.CcAddresses)
	f.strings("BccAddresses", s.BccAddresses)
	return f.String()
}

func (s *Destination) Equal(other *Destination) bool {
	return equalRecords(s, other)
}

func (s *Destination) Hash() uint64 {
	return hashRecord(s)
}

func (s *Destination) Clone() *Destination {
	return cloneRecord(s)
}

// BulkEmailDestination is one recipient group of a bulk templated send,
// with its own tags and template data overriding the request defaults.
type BulkEmailDestination struct {
	Destination             *Destination  `json:"Destination,omitempty"`
	ReplacementTags         []*MessageTag `json:"ReplacementTags,omitempty"`
	ReplacementTemplateData *string       `json:"ReplacementTemplateData,omitempty"`
}

func NewBulkEmailDestination(destination *Destination) *BulkEmailDestination {
	return &BulkEmailDestination{
		Destination:     destination,
		ReplacementTags: []*MessageTag{},
	}
}

func (s *BulkEmailDestination) SetDestination(v *Destination) *BulkEmailDestination {
	s.Destination = v
	return s
}

// SetReplacementTags replaces the ReplacementTags list with a copy of v.
func (s *BulkEmailDestination) SetReplacementTags(v []*MessageTag) *BulkEmailDestination {
	s.ReplacementTags = copyRecords(v)
	return s
}

// AddReplacementTags appends to the ReplacementTags list.
func (s *BulkEmailDestination) AddReplacementTags(v ...*MessageTag) *BulkEmailDestination {
	if s.ReplacementTags == nil {
		s.ReplacementTags = make([]*MessageTag, 0, len(v))
	}
	s.ReplacementTags = append(s.ReplacementTags, v...)
	return s
}

func (s *BulkEmailDestination) SetReplacementTemplateData(v string) *BulkEmailDestination {
	s.ReplacementTemplateData = &v
	return s
}

func (s *BulkEmailDestination) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Destination", s.Destination)
	addNestedList(f, "ReplacementTags", s.ReplacementTags)
	f.str("ReplacementTemplateData", s.ReplacementTemplateData)
	return f.String()
}

func (s *BulkEmailDestination) Equal(other *BulkEmailDestination) bool {
	return equalRecords(s, other)
}

func (s *BulkEmailDestination) Hash() uint64 {
	return hashRecord(s)
}

func (s *BulkEmailDestination) Clone() *BulkEmailDestination {
	return cloneRecord(s)
}

// MessageTag is a name/value pair applied to a sent message and published
// with its sending events.
type MessageTag struct {
	Name  *string `json:"Name,omitempty"`
	Value *string `json:"Value,omitempty"`
}

func NewMessageTag(name, value string) *MessageTag {
	return &MessageTag{Name: &name, Value: &value}
}

func (s *MessageTag) SetName(v string) *MessageTag {
	s.Name = &v
	return s
}

func (s *MessageTag) SetValue(v string) *MessageTag {
	s.Value = &v
	return s
}

func (s *MessageTag) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Name", s.Name)
	f.str("Value", s.Value)
	return f.String()
}

func (s *MessageTag) Equal(other *MessageTag) bool {
	return equalRecords(s, other)
}

func (s *MessageTag) Hash() uint64 {
	return hashRecord(s)
}

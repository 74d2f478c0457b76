package sesmodel

import "time"

// RecipientDsnFields are the per-recipient fields of a delivery status
// notification (RFC 3464).
type RecipientDsnFields struct {
	// Address the bounce message was originally addressed to, including the
	// address type, e.g. "rfc822; user@example.com".
	FinalRecipient *string `json:"FinalRecipient,omitempty"`

	Action          DsnAction  `json:"Action,omitempty"`
	RemoteMta       *string    `json:"RemoteMta,omitempty"`
	Status          *string    `json:"Status,omitempty"`
	DiagnosticCode  *string    `json:"DiagnosticCode,omitempty"`
	LastAttemptDate *time.Time `json:"LastAttemptDate,omitempty"`

	// Additional X- headers, in order.
	ExtensionFields []*ExtensionField `json:"ExtensionFields,omitempty"`
}

func NewRecipientDsnFields() *RecipientDsnFields {
	return &RecipientDsnFields{ExtensionFields: []*ExtensionField{}}
}

// SetFinalRecipient sets the FinalRecipient field's value.
func (s *RecipientDsnFields) SetFinalRecipient(v string) *RecipientDsnFields {
	s.FinalRecipient = &v
	return s
}

// SetAction sets the Action field's value.
func (s *RecipientDsnFields) SetAction(v DsnAction) *RecipientDsnFields {
	s.Action = v
	return s
}

// SetRemoteMta sets the RemoteMta field's value.
func (s *RecipientDsnFields) SetRemoteMta(v string) *RecipientDsnFields {
	s.RemoteMta = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *RecipientDsnFields) SetStatus(v string) *RecipientDsnFields {
	s.Status = &v
	return s
}

// SetDiagnosticCode sets the DiagnosticCode field's value.
func (s *RecipientDsnFields) SetDiagnosticCode(v string) *RecipientDsnFields {
	s.DiagnosticCode = &v
	return s
}

// SetLastAttemptDate sets the LastAttemptDate field's value.
func (s *RecipientDsnFields) SetLastAttemptDate(v time.Time) *RecipientDsnFields {
	s.LastAttemptDate = &v
	return s
}

// SetExtensionFields replaces the ExtensionFields list with a copy of v.
func (s *RecipientDsnFields) SetExtensionFields(v []*ExtensionField) *RecipientDsnFields {
	s.ExtensionFields = copyRecords(v)
	return s
}

// AddExtensionFields appends to the ExtensionFields list.
func (s *RecipientDsnFields) AddExtensionFields(v ...*ExtensionField) *RecipientDsnFields {
	if s.ExtensionFields == nil {
		s.ExtensionFields = make([]*ExtensionField, 0, len(v))
	}
	s.ExtensionFields = append(s.ExtensionFields, v...)
	return s
}

func (s *RecipientDsnFields) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("FinalRecipient", s.FinalRecipient)
	f.enum("Action", string(s.Action))
	f.str("RemoteMta", s.RemoteMta)
	f.str("Status", s.Status)
	f.str("DiagnosticCode", s.DiagnosticCode)
	f.time("LastAttemptDate", s.LastAttemptDate)
	addNestedList(f, "ExtensionFields", s.ExtensionFields)
	return f.String()
}

func (s *RecipientDsnFields) Equal(other *RecipientDsnFields) bool {
	return equalRecords(s, other)
}

func (s *RecipientDsnFields) Hash() uint64 {
	return hashRecord(s)
}

func (s *RecipientDsnFields) Clone() *RecipientDsnFields {
	return cloneRecord(s)
}

// ExtensionField is a name/value header pair added to a DSN.
type ExtensionField struct {
	Name  *string `json:"Name,omitempty"`
	Value *string `json:"Value,omitempty"`
}

func NewExtensionField(name, value string) *ExtensionField {
	return &ExtensionField{Name: &name, Value: &value}
}

func (s *ExtensionField) SetName(v string) *ExtensionField {
	s.Name = &v
	return s
}

func (s *ExtensionField) SetValue(v string) *ExtensionField {
	s.Value = &v
	return s
}

func (s *ExtensionField) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Name", s.Name)
	f.str("Value", s.Value)
	return f.String()
}

func (s *ExtensionField) Equal(other *ExtensionField) bool {
	return equalRecords(s, other)
}

func (s *ExtensionField) Hash() uint64 {
	return hashRecord(s)
}

func (s *ExtensionField) Clone() *ExtensionField {
	return cloneRecord(s)
}

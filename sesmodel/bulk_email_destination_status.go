package sesmodel

// BulkEmailDestinationStatus is the per-destination outcome of a
// SendBulkTemplatedEmail call, in the order the destinations were sent.
type BulkEmailDestinationStatus struct {
	Status BulkEmailStatus `json:"Status,omitempty"`

	// Description of the failure, absent when Status is Success.
	Error *string `json:"Error,omitempty"`

	MessageId *string `json:"MessageId,omitempty"`
}

func NewBulkEmailDestinationStatus() *BulkEmailDestinationStatus {
	return &BulkEmailDestinationStatus{}
}

// SetStatus sets the Status field's value.
func (s *BulkEmailDestinationStatus) SetStatus(v BulkEmailStatus) *BulkEmailDestinationStatus {
	s.Status = v
	return s
}

// SetError sets the Error field's value.
func (s *BulkEmailDestinationStatus) SetError(v string) *BulkEmailDestinationStatus {
	s.Error = &v
	return s
}

// SetMessageId sets the MessageId field's value.
func (s *BulkEmailDestinationStatus) SetMessageId(v string) *BulkEmailDestinationStatus {
	s.MessageId = &v
	return s
}

func (s *BulkEmailDestinationStatus) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.enum("Status", string(s.Status))
	f.str("Error", s.Error)
	f.str("MessageId", s.MessageId)
	return f.String()
}

func (s *BulkEmailDestinationStatus) Equal(other *BulkEmailDestinationStatus) bool {
	return equalRecords(s, other)
}

func (s *BulkEmailDestinationStatus) Hash() uint64 {
	return hashRecord(s)
}

func (s *BulkEmailDestinationStatus) Clone() *BulkEmailDestinationStatus {
	return cloneRecord(s)
}

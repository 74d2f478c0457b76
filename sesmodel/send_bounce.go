package sesmodel

import "time"

// MessageDsn holds the message-level fields of a bounce DSN.
type MessageDsn struct {
	ReportingMta    *string           `json:"ReportingMta,omitempty"`
	ArrivalDate     *time.Time        `json:"ArrivalDate,omitempty"`
	ExtensionFields []*ExtensionField `json:"ExtensionFields,omitempty"`
}

func NewMessageDsn(reportingMta string) *MessageDsn {
	return &MessageDsn{ReportingMta: &reportingMta, ExtensionFields: []*ExtensionField{}}
}

func (s *MessageDsn) SetReportingMta(v string) *MessageDsn {
	s.ReportingMta = &v
	return s
}

func (s *MessageDsn) SetArrivalDate(v time.Time) *MessageDsn {
	s.ArrivalDate = &v
	return s
}

func (s *MessageDsn) SetExtensionFields(v []*ExtensionField) *MessageDsn {
	s.ExtensionFields = copyRecords(v)
	return s
}

func (s *MessageDsn) AddExtensionFields(v ...*ExtensionField) *MessageDsn {
	if s.ExtensionFields == nil {
		s.ExtensionFields = make([]*ExtensionField, 0, len(v))
	}
	s.ExtensionFields = append(s.ExtensionFields, v...)
	return s
}

func (s *MessageDsn) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("ReportingMta", s.ReportingMta)
	f.time("ArrivalDate", s.ArrivalDate)
	addNestedList(f, "ExtensionFields", s.ExtensionFields)
	return f.String()
}

func (s *MessageDsn) Equal(other *MessageDsn) bool {
	return equalRecords(s, other)
}

func (s *MessageDsn) Hash() uint64 {
	return hashRecord(s)
}

// BouncedRecipientInfo describes one recipient of a custom bounce. Either
// BounceType or RecipientDsnFields is expected.
type BouncedRecipientInfo struct {
	Recipient          *string             `json:"Recipient,omitempty"`
	RecipientArn       *string             `json:"RecipientArn,omitempty"`
	BounceType         BounceType          `json:"BounceType,omitempty"`
	RecipientDsnFields *RecipientDsnFields `json:"RecipientDsnFields,omitempty"`
}

func NewBouncedRecipientInfo(recipient string) *BouncedRecipientInfo {
	return &BouncedRecipientInfo{Recipient: &recipient}
}

func (s *BouncedRecipientInfo) SetRecipient(v string) *BouncedRecipientInfo {
	s.Recipient = &v
	return s
}

func (s *BouncedRecipientInfo) SetRecipientArn(v string) *BouncedRecipientInfo {
	s.RecipientArn = &v
	return s
}

func (s *BouncedRecipientInfo) SetBounceType(v BounceType) *BouncedRecipientInfo {
	s.BounceType = v
	return s
}

func (s *BouncedRecipientInfo) SetRecipientDsnFields(v *RecipientDsnFields) *BouncedRecipientInfo {
	s.RecipientDsnFields = v
	return s
}

func (s *BouncedRecipientInfo) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Recipient", s.Recipient)
	f.str("RecipientArn", s.RecipientArn)
	f.enum("BounceType", string(s.BounceType))
	addNested(f, "RecipientDsnFields", s.RecipientDsnFields)
	return f.String()
}

func (s *BouncedRecipientInfo) Equal(other *BouncedRecipientInfo) bool {
	return equalRecords(s, other)
}

func (s *BouncedRecipientInfo) Hash() uint64 {
	return hashRecord(s)
}

// SendBounceRequest generates and sends a bounce for a message received
// through SES.
type SendBounceRequest struct {
	OriginalMessageId        *string                 `json:"OriginalMessageId,omitempty"`
	BounceSender             *string                 `json:"BounceSender,omitempty"`
	Explanation              *string                 `json:"Explanation,omitempty"`
	MessageDsn               *MessageDsn             `json:"MessageDsn,omitempty"`
	BouncedRecipientInfoList []*BouncedRecipientInfo `json:"BouncedRecipientInfoList,omitempty"`
	BounceSenderArn          *string                 `json:"BounceSenderArn,omitempty"`
}

func NewSendBounceRequest() *SendBounceRequest {
	return &SendBounceRequest{BouncedRecipientInfoList: []*BouncedRecipientInfo{}}
}

// SetOriginalMessageId sets the OriginalMessageId field's value.
func (s *SendBounceRequest) SetOriginalMessageId(v string) *SendBounceRequest {
	s.OriginalMessageId = &v
	return s
}

// SetBounceSender sets the BounceSender field's value.
func (s *SendBounceRequest) SetBounceSender(v string) *SendBounceRequest {
	s.BounceSender = &v
	return s
}

// SetExplanation sets the Explanation field's value.
func (s *SendBounceRequest) SetExplanation(v string) *SendBounceRequest {
	s.Explanation = &v
	return s
}

// SetMessageDsn sets the MessageDsn field's value.
func (s *SendBounceRequest) SetMessageDsn(v *MessageDsn) *SendBounceRequest {
	s.MessageDsn = v
	return s
}

// SetBouncedRecipientInfoList replaces the list with a copy of v.
func (s *SendBounceRequest) SetBouncedRecipientInfoList(v []*BouncedRecipientInfo) *SendBounceRequest {
	s.BouncedRecipientInfoList = copyRecords(v)
	return s
}

// AddBouncedRecipientInfoList appends to the BouncedRecipientInfoList.
func (s *SendBounceRequest) AddBouncedRecipientInfoList(v ...*BouncedRecipientInfo) *SendBounceRequest {
	if s.BouncedRecipientInfoList == nil {
		s.BouncedRecipientInfoList = make([]*BouncedRecipientInfo, 0, len(v))
	}
	s.BouncedRecipientInfoList = append(s.BouncedRecipientInfoList, v...)
	return s
}

// SetBounceSenderArn sets the BounceSenderArn field's value.
func (s *SendBounceRequest) SetBounceSenderArn(v string) *SendBounceRequest {
	s.BounceSenderArn = &v
	return s
}

func (s *SendBounceRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("OriginalMessageId", s.OriginalMessageId)
	f.str("BounceSender", s.BounceSender)
	f.str("Explanation", s.Explanation)
	addNested(f, "MessageDsn", s.MessageDsn)
	addNestedList(f, "BouncedRecipientInfoList", s.BouncedRecipientInfoList)
	f.str("BounceSenderArn", s.BounceSenderArn)
	return f.String()
}

func (s *SendBounceRequest) Equal(other *SendBounceRequest) bool {
	return equalRecords(s, other)
}

func (s *SendBounceRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SendBounceRequest) Clone() *SendBounceRequest {
	return cloneRecord(s)
}

type SendBounceResult struct {
	MessageId *string `json:"MessageId,omitempty"`
}

func (s *SendBounceResult) SetMessageId(v string) *SendBounceResult {
	s.MessageId = &v
	return s
}

func (s *SendBounceResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("MessageId", s.MessageId)
	return f.String()
}

func (s *SendBounceResult) Equal(other *SendBounceResult) bool {
	return equalRecords(s, other)
}

func (s *SendBounceResult) Hash() uint64 {
	return hashRecord(s)
}

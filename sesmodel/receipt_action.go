package sesmodel

// ReceiptAction is one step of a receipt rule. Exactly one of the action
// fields is expected to be set; this is not checked locally.
type ReceiptAction struct {
	S3Action        *S3Action        `json:"S3Action,omitempty"`
	BounceAction    *BounceAction    `json:"BounceAction,omitempty"`
	WorkmailAction  *WorkmailAction  `json:"WorkmailAction,omitempty"`
	LambdaAction    *LambdaAction    `json:"LambdaAction,omitempty"`
	StopAction      *StopAction      `json:"StopAction,omitempty"`
	AddHeaderAction *AddHeaderAction `json:"AddHeaderAction,omitempty"`
	SNSAction       *SNSAction       `json:"SNSAction,omitempty"`
}

func NewReceiptAction() *ReceiptAction {
	return &ReceiptAction{}
}

// SetS3Action sets the S3Action field's value.
func (s *ReceiptAction) SetS3Action(v *S3Action) *ReceiptAction {
	s.S3Action = v
	return s
}

// SetBounceAction sets the BounceAction field's value.
func (s *ReceiptAction) SetBounceAction(v *BounceAction) *ReceiptAction {
	s.BounceAction = v
	return s
}

// SetWorkmailAction sets the WorkmailAction field's value.
func (s *ReceiptAction) SetWorkmailAction(v *WorkmailAction) *ReceiptAction {
	s.WorkmailAction = v
	return s
}

// SetLambdaAction sets the LambdaAction field's value.
func (s *ReceiptAction) SetLambdaAction(v *LambdaAction) *ReceiptAction {
	s.LambdaAction = v
	return s
}

// SetStopAction sets the StopAction field's value.
func (s *ReceiptAction) SetStopAction(v *StopAction) *ReceiptAction {
	s.StopAction = v
	return s
}

// SetAddHeaderAction sets the AddHeaderAction field's value.
func (s *ReceiptAction) SetAddHeaderAction(v *AddHeaderAction) *ReceiptAction {
	s.AddHeaderAction = v
	return s
}

// SetSNSAction sets the SNSAction field's value.
func (s *ReceiptAction) SetSNSAction(v *SNSAction) *ReceiptAction {
	s.SNSAction = v
	return s
}

func (s *ReceiptAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "S3Action", s.S3Action)
	addNested(f, "BounceAction", s.BounceAction)
	addNested(f, "WorkmailAction", s.WorkmailAction)
	addNested(f, "LambdaAction", s.LambdaAction)
	addNested(f, "StopAction", s.StopAction)
	addNested(f, "AddHeaderAction", s.AddHeaderAction)
	addNested(f, "SNSAction", s.SNSAction)
	return f.String()
}

func (s *ReceiptAction) Equal(other *ReceiptAction) bool {
	return equalRecords(s, other)
}

func (s *ReceiptAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptAction) Clone() *ReceiptAction {
	return cloneRecord(s)
}

// AddHeaderAction adds a header to the received mail.
type AddHeaderAction struct {
	HeaderName  *string `json:"HeaderName,omitempty"`
	HeaderValue *string `json:"HeaderValue,omitempty"`
}

func NewAddHeaderAction(name, value string) *AddHeaderAction {
	return &AddHeaderAction{HeaderName: &name, HeaderValue: &value}
}

func (s *AddHeaderAction) SetHeaderName(v string) *AddHeaderAction {
	s.HeaderName = &v
	return s
}

func (s *AddHeaderAction) SetHeaderValue(v string) *AddHeaderAction {
	s.HeaderValue = &v
	return s
}

func (s *AddHeaderAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("HeaderName", s.HeaderName)
	f.str("HeaderValue", s.HeaderValue)
	return f.String()
}

func (s *AddHeaderAction) Equal(other *AddHeaderAction) bool {
	return equalRecords(s, other)
}

func (s *AddHeaderAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *AddHeaderAction) Clone() *AddHeaderAction {
	return cloneRecord(s)
}

// SNSAction publishes the received mail to an SNS topic.
type SNSAction struct {
	TopicArn *string           `json:"TopicArn,omitempty"`
	Encoding SNSActionEncoding `json:"Encoding,omitempty"`
}

func NewSNSAction() *SNSAction {
	return &SNSAction{}
}

func (s *SNSAction) SetTopicArn(v string) *SNSAction {
	s.TopicArn = &v
	return s
}

func (s *SNSAction) SetEncoding(v SNSActionEncoding) *SNSAction {
	s.Encoding = v
	return s
}

func (s *SNSAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("TopicArn", s.TopicArn)
	f.enum("Encoding", string(s.Encoding))
	return f.String()
}

func (s *SNSAction) Equal(other *SNSAction) bool {
	return equalRecords(s, other)
}

func (s *SNSAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *SNSAction) Clone() *SNSAction {
	return cloneRecord(s)
}

// StopAction terminates evaluation of the receipt rule set.
type StopAction struct {
	Scope    StopScope `json:"Scope,omitempty"`
	TopicArn *string   `json:"TopicArn,omitempty"`
}

func NewStopAction() *StopAction {
	return &StopAction{}
}

func (s *StopAction) SetScope(v StopScope) *StopAction {
	s.Scope = v
	return s
}

func (s *StopAction) SetTopicArn(v string) *StopAction {
	s.TopicArn = &v
	return s
}

func (s *StopAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.enum("Scope", string(s.Scope))
	f.str("TopicArn", s.TopicArn)
	return f.String()
}

func (s *StopAction) Equal(other *StopAction) bool {
	return equalRecords(s, other)
}

func (s *StopAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *StopAction) Clone() *StopAction {
	return cloneRecord(s)
}

// WorkmailAction hands the received mail to Amazon WorkMail.
type WorkmailAction struct {
	TopicArn        *string `json:"TopicArn,omitempty"`
	OrganizationArn *string `json:"OrganizationArn,omitempty"`
}

func NewWorkmailAction() *WorkmailAction {
	return &WorkmailAction{}
}

func (s *WorkmailAction) SetTopicArn(v string) *WorkmailAction {
	s.TopicArn = &v
	return s
}

func (s *WorkmailAction) SetOrganizationArn(v string) *WorkmailAction {
	s.OrganizationArn = &v
	return s
}

func (s *WorkmailAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("TopicArn", s.TopicArn)
	f.str("OrganizationArn", s.OrganizationArn)
	return f.String()
}

func (s *WorkmailAction) Equal(other *WorkmailAction) bool {
	return equalRecords(s, other)
}

func (s *WorkmailAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *WorkmailAction) Clone() *WorkmailAction {
	return cloneRecord(s)
}

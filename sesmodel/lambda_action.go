package sesmodel

// LambdaAction calls an AWS Lambda function and, optionally, publishes a
// notification to Amazon SNS.
type LambdaAction struct {
	TopicArn    *string `json:"TopicArn,omitempty"`
	FunctionArn *string `json:"FunctionArn,omitempty"`

	// Event invokes the function asynchronously; RequestResponse waits for
	// it and lets the result control mail flow.
	InvocationType InvocationType `json:"InvocationType,omitempty"`
}

func NewLambdaAction() *LambdaAction {
	return &LambdaAction{}
}

// SetTopicArn sets the TopicArn field's value.
func (s *LambdaAction) SetTopicArn(v string) *LambdaAction {
	s.TopicArn = &v
	return s
}

// SetFunctionArn sets the FunctionArn field's value.
func (s *LambdaAction) SetFunctionArn(v string) *LambdaAction {
	s.FunctionArn = &v
	return s
}

// SetInvocationType sets the InvocationType field's value.
func (s *LambdaAction) SetInvocationType(v InvocationType) *LambdaAction {
	s.InvocationType = v
	return s
}

func (s *LambdaAction) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("TopicArn", s.TopicArn)
	f.str("FunctionArn", s.FunctionArn)
	f.enum("InvocationType", string(s.InvocationType))
	return f.String()
}

func (s *LambdaAction) Equal(other *LambdaAction) bool {
	return equalRecords(s, other)
}

func (s *LambdaAction) Hash() uint64 {
	return hashRecord(s)
}

func (s *LambdaAction) Clone() *LambdaAction {
	return cloneRecord(s)
}

package sesmodel

// ReceiptRule describes what SES does with mail received for a set of
// recipients. Actions run in the order they appear in Actions.
type ReceiptRule struct {
	Name        *string          `json:"Name,omitempty"`
	Enabled     *bool            `json:"Enabled,omitempty"`
	TlsPolicy   TlsPolicy        `json:"TlsPolicy,omitempty"`
	Recipients  []string         `json:"Recipients,omitempty"`
	Actions     []*ReceiptAction `json:"Actions,omitempty"`
	ScanEnabled *bool            `json:"ScanEnabled,omitempty"`
}

// NewReceiptRule returns a rule with empty recipient and action lists.
func NewReceiptRule() *ReceiptRule {
	return &ReceiptRule{
		Recipients: []string{},
		Actions:    []*ReceiptAction{},
	}
}

// SetName sets the Name field's value.
func (s *ReceiptRule) SetName(v string) *ReceiptRule {
	s.Name = &v
	return s
}

// SetEnabled sets the Enabled field's value.
func (s *ReceiptRule) SetEnabled(v bool) *ReceiptRule {
	s.Enabled = &v
	return s
}

// SetTlsPolicy sets the TlsPolicy field's value.
func (s *ReceiptRule) SetTlsPolicy(v TlsPolicy) *ReceiptRule {
	s.TlsPolicy = v
	return s
}

// SetRecipients replaces the Recipients list with a copy of v.
func (s *ReceiptRule) SetRecipients(v []string) *ReceiptRule {
	s.Recipients = copyStrings(v)
	return s
}

// AddRecipients appends to the Recipients list.
func (s *ReceiptRule) AddRecipients(v ...string) *ReceiptRule {
	if s.Recipients == nil {
		s.Recipients = make([]string, 0, len(v))
	}
	s.Recipients = append(s.Recipients, v...)
	return s
}

// SetActions replaces the Actions list with a copy of v.
func (s *ReceiptRule) SetActions(v []*ReceiptAction) *ReceiptRule {
	s.Actions = copyRecords(v)
	return s
}

// AddActions appends to the Actions list.
func (s *ReceiptRule) AddActions(v ...*ReceiptAction) *ReceiptRule {
	if s.Actions == nil {
		s.Actions = make([]*ReceiptAction, 0, len(v))
	}
	s.Actions = append(s.Actions, v...)
	return s
}

// SetScanEnabled sets the ScanEnabled field's value.
func (s *ReceiptRule) SetScanEnabled(v bool) *ReceiptRule {
	s.ScanEnabled = &v
	return s
}

func (s *ReceiptRule) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Name", s.Name)
	f.boolean("Enabled", s.Enabled)
	f.enum("TlsPolicy", string(s.TlsPolicy))
	f.strings("Recipients", s.Recipients)
	addNestedList(f, "Actions", s.Actions)
	f.boolean("ScanEnabled", s.ScanEnabled)
	return f.String()
}

func (s *ReceiptRule) Equal(other *ReceiptRule) bool {
	return equalRecords(s, other)
}

func (s *ReceiptRule) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptRule) Clone() *ReceiptRule {
	return cloneRecord(s)
}

// CreateReceiptRuleRequest adds Rule to a rule set, after the rule named
// After or first when After is absent.
type CreateReceiptRuleRequest struct {
	RuleSetName *string      `json:"RuleSetName,omitempty"`
	After       *string      `json:"After,omitempty"`
	Rule        *ReceiptRule `json:"Rule,omitempty"`
}

func NewCreateReceiptRuleRequest(ruleSetName string, rule *ReceiptRule) *CreateReceiptRuleRequest {
	return &CreateReceiptRuleRequest{RuleSetName: &ruleSetName, Rule: rule}
}

func (s *CreateReceiptRuleRequest) SetRuleSetName(v string) *CreateReceiptRuleRequest {
	s.RuleSetName = &v
	return s
}

func (s *CreateReceiptRuleRequest) SetAfter(v string) *CreateReceiptRuleRequest {
	s.After = &v
	return s
}

func (s *CreateReceiptRuleRequest) SetRule(v *ReceiptRule) *CreateReceiptRuleRequest {
	s.Rule = v
	return s
}

func (s *CreateReceiptRuleRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	f.str("After", s.After)
	addNested(f, "Rule", s.Rule)
	return f.String()
}

func (s *CreateReceiptRuleRequest) Equal(other *CreateReceiptRuleRequest) bool {
	return equalRecords(s, other)
}

func (s *CreateReceiptRuleRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *CreateReceiptRuleRequest) Clone() *CreateReceiptRuleRequest {
	return cloneRecord(s)
}

// UpdateReceiptRuleRequest replaces the rule of the same name in a rule set.
type UpdateReceiptRuleRequest struct {
	RuleSetName *string      `json:"RuleSetName,omitempty"`
	Rule        *ReceiptRule `json:"Rule,omitempty"`
}

func NewUpdateReceiptRuleRequest(ruleSetName string, rule *ReceiptRule) *UpdateReceiptRuleRequest {
	return &UpdateReceiptRuleRequest{RuleSetName: &ruleSetName, Rule: rule}
}

func (s *UpdateReceiptRuleRequest) SetRuleSetName(v string) *UpdateReceiptRuleRequest {
	s.RuleSetName = &v
	return s
}

func (s *UpdateReceiptRuleRequest) SetRule(v *ReceiptRule) *UpdateReceiptRuleRequest {
	s.Rule = v
	return s
}

func (s *UpdateReceiptRuleRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	addNested(f, "Rule", s.Rule)
	return f.String()
}

func (s *UpdateReceiptRuleRequest) Equal(other *UpdateReceiptRuleRequest) bool {
	return equalRecords(s, other)
}

func (s *UpdateReceiptRuleRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *UpdateReceiptRuleRequest) Clone() *UpdateReceiptRuleRequest {
	return cloneRecord(s)
}

// ReceiptRuleRef names a single rule within a rule set. It is the request
// shape of DescribeReceiptRule and DeleteReceiptRule.
type ReceiptRuleRef struct {
	RuleSetName *string `json:"RuleSetName,omitempty"`
	RuleName    *string `json:"RuleName,omitempty"`
}

type (
	DescribeReceiptRuleRequest = ReceiptRuleRef
	DeleteReceiptRuleRequest   = ReceiptRuleRef
)

func NewReceiptRuleRef(ruleSetName, ruleName string) *ReceiptRuleRef {
	return &ReceiptRuleRef{RuleSetName: &ruleSetName, RuleName: &ruleName}
}

func (s *ReceiptRuleRef) SetRuleSetName(v string) *ReceiptRuleRef {
	s.RuleSetName = &v
	return s
}

func (s *ReceiptRuleRef) SetRuleName(v string) *ReceiptRuleRef {
	s.RuleName = &v
	return s
}

func (s *ReceiptRuleRef) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	f.str("RuleName", s.RuleName)
	return f.String()
}

func (s *ReceiptRuleRef) Equal(other *ReceiptRuleRef) bool {
	return equalRecords(s, other)
}

func (s *ReceiptRuleRef) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptRuleRef) Clone() *ReceiptRuleRef {
	return cloneRecord(s)
}

type DescribeReceiptRuleResult struct {
	Rule *ReceiptRule `json:"Rule,omitempty"`
}

func (s *DescribeReceiptRuleResult) SetRule(v *ReceiptRule) *DescribeReceiptRuleResult {
	s.Rule = v
	return s
}

func (s *DescribeReceiptRuleResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Rule", s.Rule)
	return f.String()
}

func (s *DescribeReceiptRuleResult) Equal(other *DescribeReceiptRuleResult) bool {
	return equalRecords(s, other)
}

func (s *DescribeReceiptRuleResult) Hash() uint64 {
	return hashRecord(s)
}

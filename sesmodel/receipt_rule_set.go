package sesmodel

import "time"

// ReceiptRuleSetMetadata names a rule set and when it was created.
type ReceiptRuleSetMetadata struct {
	Name             *string    `json:"Name,omitempty"`
	CreatedTimestamp *time.Time `json:"CreatedTimestamp,omitempty"`
}

func NewReceiptRuleSetMetadata(name string) *ReceiptRuleSetMetadata {
	return &ReceiptRuleSetMetadata{Name: &name}
}

func (s *ReceiptRuleSetMetadata) SetName(v string) *ReceiptRuleSetMetadata {
	s.Name = &v
	return s
}

func (s *ReceiptRuleSetMetadata) SetCreatedTimestamp(v time.Time) *ReceiptRuleSetMetadata {
	s.CreatedTimestamp = &v
	return s
}

func (s *ReceiptRuleSetMetadata) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Name", s.Name)
	f.time("CreatedTimestamp", s.CreatedTimestamp)
	return f.String()
}

func (s *ReceiptRuleSetMetadata) Equal(other *ReceiptRuleSetMetadata) bool {
	return equalRecords(s, other)
}

func (s *ReceiptRuleSetMetadata) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptRuleSetMetadata) Clone() *ReceiptRuleSetMetadata {
	return cloneRecord(s)
}

// ReceiptRuleSet is a rule set with its rules in evaluation order. Metadata
// is absent when DescribeActiveReceiptRuleSet finds no active set.
type ReceiptRuleSet struct {
	Metadata *ReceiptRuleSetMetadata `json:"Metadata,omitempty"`
	Rules    []*ReceiptRule          `json:"Rules,omitempty"`
}

type (
	DescribeReceiptRuleSetResult       = ReceiptRuleSet
	DescribeActiveReceiptRuleSetResult = ReceiptRuleSet
)

func NewReceiptRuleSet(metadata *ReceiptRuleSetMetadata) *ReceiptRuleSet {
	return &ReceiptRuleSet{Metadata: metadata, Rules: []*ReceiptRule{}}
}

func (s *ReceiptRuleSet) SetMetadata(v *ReceiptRuleSetMetadata) *ReceiptRuleSet {
	s.Metadata = v
	return s
}

// SetRules replaces the Rules list with a copy of v.
func (s *ReceiptRuleSet) SetRules(v []*ReceiptRule) *ReceiptRuleSet {
	s.Rules = copyRecords(v)
	return s
}

// AddRules appends to the Rules list.
func (s *ReceiptRuleSet) AddRules(v ...*ReceiptRule) *ReceiptRuleSet {
	if s.Rules == nil {
		s.Rules = make([]*ReceiptRule, 0, len(v))
	}
	s.Rules = append(s.Rules, v...)
	return s
}

func (s *ReceiptRuleSet) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Metadata", s.Metadata)
	addNestedList(f, "Rules", s.Rules)
	return f.String()
}

func (s *ReceiptRuleSet) Equal(other *ReceiptRuleSet) bool {
	return equalRecords(s, other)
}

func (s *ReceiptRuleSet) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptRuleSet) Clone() *ReceiptRuleSet {
	return cloneRecord(s)
}

// ReceiptRuleSetRef names a rule set. For SetActiveReceiptRuleSet an absent
// RuleSetName deactivates the active set.
type ReceiptRuleSetRef struct {
	RuleSetName *string `json:"RuleSetName,omitempty"`
}

type (
	CreateReceiptRuleSetRequest    = ReceiptRuleSetRef
	DeleteReceiptRuleSetRequest    = ReceiptRuleSetRef
	DescribeReceiptRuleSetRequest  = ReceiptRuleSetRef
	SetActiveReceiptRuleSetRequest = ReceiptRuleSetRef
)

func NewReceiptRuleSetRef(ruleSetName string) *ReceiptRuleSetRef {
	return &ReceiptRuleSetRef{RuleSetName: &ruleSetName}
}

func (s *ReceiptRuleSetRef) SetRuleSetName(v string) *ReceiptRuleSetRef {
	s.RuleSetName = &v
	return s
}

func (s *ReceiptRuleSetRef) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	return f.String()
}

func (s *ReceiptRuleSetRef) Equal(other *ReceiptRuleSetRef) bool {
	return equalRecords(s, other)
}

func (s *ReceiptRuleSetRef) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptRuleSetRef) Clone() *ReceiptRuleSetRef {
	return cloneRecord(s)
}

// CloneReceiptRuleSetRequest creates RuleSetName as a copy of every rule in
// OriginalRuleSetName.
type CloneReceiptRuleSetRequest struct {
	RuleSetName         *string `json:"RuleSetName,omitempty"`
	OriginalRuleSetName *string `json:"OriginalRuleSetName,omitempty"`
}

func NewCloneReceiptRuleSetRequest(ruleSetName, originalRuleSetName string) *CloneReceiptRuleSetRequest {
	return &CloneReceiptRuleSetRequest{RuleSetName: &ruleSetName, OriginalRuleSetName: &originalRuleSetName}
}

func (s *CloneReceiptRuleSetRequest) SetRuleSetName(v string) *CloneReceiptRuleSetRequest {
	s.RuleSetName = &v
	return s
}

func (s *CloneReceiptRuleSetRequest) SetOriginalRuleSetName(v string) *CloneReceiptRuleSetRequest {
	s.OriginalRuleSetName = &v
	return s
}

func (s *CloneReceiptRuleSetRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	f.str("OriginalRuleSetName", s.OriginalRuleSetName)
	return f.String()
}

func (s *CloneReceiptRuleSetRequest) Equal(other *CloneReceiptRuleSetRequest) bool {
	return equalRecords(s, other)
}

func (s *CloneReceiptRuleSetRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *CloneReceiptRuleSetRequest) Clone() *CloneReceiptRuleSetRequest {
	return cloneRecord(s)
}

// ReorderReceiptRuleSetRequest sets the evaluation order of a rule set.
// RuleNames must name every rule in the set exactly once.
type ReorderReceiptRuleSetRequest struct {
	RuleSetName *string  `json:"RuleSetName,omitempty"`
	RuleNames   []string `json:"RuleNames,omitempty"`
}

func NewReorderReceiptRuleSetRequest(ruleSetName string, ruleNames ...string) *ReorderReceiptRuleSetRequest {
	return &ReorderReceiptRuleSetRequest{
		RuleSetName: &ruleSetName,
		RuleNames:   append([]string{}, ruleNames...),
	}
}

func (s *ReorderReceiptRuleSetRequest) SetRuleSetName(v string) *ReorderReceiptRuleSetRequest {
	s.RuleSetName = &v
	return s
}

// SetRuleNames replaces the RuleNames list with a copy of v.
func (s *ReorderReceiptRuleSetRequest) SetRuleNames(v []string) *ReorderReceiptRuleSetRequest {
	s.RuleNames = copyStrings(v)
	return s
}

// AddRuleNames appends to the RuleNames list.
func (s *ReorderReceiptRuleSetRequest) AddRuleNames(v ...string) *ReorderReceiptRuleSetRequest {
	if s.RuleNames == nil {
		s.RuleNames = make([]string, 0, len(v))
	}
	s.RuleNames = append(s.RuleNames, v...)
	return s
}

func (s *ReorderReceiptRuleSetRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	f.strings("RuleNames", s.RuleNames)
	return f.String()
}

func (s *ReorderReceiptRuleSetRequest) Equal(other *ReorderReceiptRuleSetRequest) bool {
	return equalRecords(s, other)
}

func (s *ReorderReceiptRuleSetRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReorderReceiptRuleSetRequest) Clone() *ReorderReceiptRuleSetRequest {
	return cloneRecord(s)
}

// SetReceiptRulePositionRequest moves a rule to just after the rule named
// After, or to the front when After is absent.
type SetReceiptRulePositionRequest struct {
	RuleSetName *string `json:"RuleSetName,omitempty"`
	RuleName    *string `json:"RuleName,omitempty"`
	After       *string `json:"After,omitempty"`
}

func NewSetReceiptRulePositionRequest(ruleSetName, ruleName string) *SetReceiptRulePositionRequest {
	return &SetReceiptRulePositionRequest{RuleSetName: &ruleSetName, RuleName: &ruleName}
}

func (s *SetReceiptRulePositionRequest) SetRuleSetName(v string) *SetReceiptRulePositionRequest {
	s.RuleSetName = &v
	return s
}

func (s *SetReceiptRulePositionRequest) SetRuleName(v string) *SetReceiptRulePositionRequest {
	s.RuleName = &v
	return s
}

func (s *SetReceiptRulePositionRequest) SetAfter(v string) *SetReceiptRulePositionRequest {
	s.After = &v
	return s
}

func (s *SetReceiptRulePositionRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("RuleSetName", s.RuleSetName)
	f.str("RuleName", s.RuleName)
	f.str("After", s.After)
	return f.String()
}

func (s *SetReceiptRulePositionRequest) Equal(other *SetReceiptRulePositionRequest) bool {
	return equalRecords(s, other)
}

func (s *SetReceiptRulePositionRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *SetReceiptRulePositionRequest) Clone() *SetReceiptRulePositionRequest {
	return cloneRecord(s)
}

type ListReceiptRuleSetsRequest struct {
	NextToken *string `json:"NextToken,omitempty"`
}

func (s *ListReceiptRuleSetsRequest) SetNextToken(v string) *ListReceiptRuleSetsRequest {
	s.NextToken = &v
	return s
}

func (s *ListReceiptRuleSetsRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("NextToken", s.NextToken)
	return f.String()
}

func (s *ListReceiptRuleSetsRequest) Equal(other *ListReceiptRuleSetsRequest) bool {
	return equalRecords(s, other)
}

func (s *ListReceiptRuleSetsRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *ListReceiptRuleSetsRequest) Clone() *ListReceiptRuleSetsRequest {
	return cloneRecord(s)
}

// ListReceiptRuleSetsResult is one page of rule sets. NextToken is present
// when more pages follow.
type ListReceiptRuleSetsResult struct {
	RuleSets  []*ReceiptRuleSetMetadata `json:"RuleSets,omitempty"`
	NextToken *string                   `json:"NextToken,omitempty"`
}

func NewListReceiptRuleSetsResult() *ListReceiptRuleSetsResult {
	return &ListReceiptRuleSetsResult{RuleSets: []*ReceiptRuleSetMetadata{}}
}

// SetRuleSets replaces the RuleSets list with a copy of v.
func (s *ListReceiptRuleSetsResult) SetRuleSets(v []*ReceiptRuleSetMetadata) *ListReceiptRuleSetsResult {
	s.RuleSets = copyRecords(v)
	return s
}

// AddRuleSets appends to the RuleSets list.
func (s *ListReceiptRuleSetsResult) AddRuleSets(v ...*ReceiptRuleSetMetadata) *ListReceiptRuleSetsResult {
	if s.RuleSets == nil {
		s.RuleSets = make([]*ReceiptRuleSetMetadata, 0, len(v))
	}
	s.RuleSets = append(s.RuleSets, v...)
	return s
}

func (s *ListReceiptRuleSetsResult) SetNextToken(v string) *ListReceiptRuleSetsResult {
	s.NextToken = &v
	return s
}

func (s *ListReceiptRuleSetsResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNestedList(f, "RuleSets", s.RuleSets)
	f.str("NextToken", s.NextToken)
	return f.String()
}

func (s *ListReceiptRuleSetsResult) Equal(other *ListReceiptRuleSetsResult) bool {
	return equalRecords(s, other)
}

func (s *ListReceiptRuleSetsResult) Hash() uint64 {
	return hashRecord(s)
}

func (s *ListReceiptRuleSetsResult) Clone() *ListReceiptRuleSetsResult {
	return cloneRecord(s)
}

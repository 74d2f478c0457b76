package sesmodel

// ReceiptIpFilter blocks or allows mail from a single IPv4 address or CIDR
// range, e.g. "10.0.0.1" or "10.0.0.1/24".
type ReceiptIpFilter struct {
	Policy ReceiptFilterPolicy `json:"Policy,omitempty"`
	Cidr   *string             `json:"Cidr,omitempty"`
}

func NewReceiptIpFilter(policy ReceiptFilterPolicy, cidr string) *ReceiptIpFilter {
	return &ReceiptIpFilter{Policy: policy, Cidr: &cidr}
}

func (s *ReceiptIpFilter) SetPolicy(v ReceiptFilterPolicy) *ReceiptIpFilter {
	s.Policy = v
	return s
}

func (s *ReceiptIpFilter) SetCidr(v string) *ReceiptIpFilter {
	s.Cidr = &v
	return s
}

func (s *ReceiptIpFilter) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.enum("Policy", string(s.Policy))
	f.str("Cidr", s.Cidr)
	return f.String()
}

func (s *ReceiptIpFilter) Equal(other *ReceiptIpFilter) bool {
	return equalRecords(s, other)
}

func (s *ReceiptIpFilter) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptIpFilter) Clone() *ReceiptIpFilter {
	return cloneRecord(s)
}

// ReceiptFilter is an account-wide IP filter applied before any receipt
// rule.
type ReceiptFilter struct {
	Name     *string          `json:"Name,omitempty"`
	IpFilter *ReceiptIpFilter `json:"IpFilter,omitempty"`
}

func NewReceiptFilter(name string, ipFilter *ReceiptIpFilter) *ReceiptFilter {
	return &ReceiptFilter{Name: &name, IpFilter: ipFilter}
}

func (s *ReceiptFilter) SetName(v string) *ReceiptFilter {
	s.Name = &v
	return s
}

func (s *ReceiptFilter) SetIpFilter(v *ReceiptIpFilter) *ReceiptFilter {
	s.IpFilter = v
	return s
}

func (s *ReceiptFilter) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Name", s.Name)
	addNested(f, "IpFilter", s.IpFilter)
	return f.String()
}

func (s *ReceiptFilter) Equal(other *ReceiptFilter) bool {
	return equalRecords(s, other)
}

func (s *ReceiptFilter) Hash() uint64 {
	return hashRecord(s)
}

func (s *ReceiptFilter) Clone() *ReceiptFilter {
	return cloneRecord(s)
}

type CreateReceiptFilterRequest struct {
	Filter *ReceiptFilter `json:"Filter,omitempty"`
}

func NewCreateReceiptFilterRequest(filter *ReceiptFilter) *CreateReceiptFilterRequest {
	return &CreateReceiptFilterRequest{Filter: filter}
}

func (s *CreateReceiptFilterRequest) SetFilter(v *ReceiptFilter) *CreateReceiptFilterRequest {
	s.Filter = v
	return s
}

func (s *CreateReceiptFilterRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Filter", s.Filter)
	return f.String()
}

func (s *CreateReceiptFilterRequest) Equal(other *CreateReceiptFilterRequest) bool {
	return equalRecords(s, other)
}

func (s *CreateReceiptFilterRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *CreateReceiptFilterRequest) Clone() *CreateReceiptFilterRequest {
	return cloneRecord(s)
}

type DeleteReceiptFilterRequest struct {
	FilterName *string `json:"FilterName,omitempty"`
}

func NewDeleteReceiptFilterRequest(filterName string) *DeleteReceiptFilterRequest {
	return &DeleteReceiptFilterRequest{FilterName: &filterName}
}

func (s *DeleteReceiptFilterRequest) SetFilterName(v string) *DeleteReceiptFilterRequest {
	s.FilterName = &v
	return s
}

func (s *DeleteReceiptFilterRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("FilterName", s.FilterName)
	return f.String()
}

func (s *DeleteReceiptFilterRequest) Equal(other *DeleteReceiptFilterRequest) bool {
	return equalRecords(s, other)
}

func (s *DeleteReceiptFilterRequest) Hash() uint64 {
	return hashRecord(s)
}

func (s *DeleteReceiptFilterRequest) Clone() *DeleteReceiptFilterRequest {
	return cloneRecord(s)
}

type ListReceiptFiltersResult struct {
	Filters []*ReceiptFilter `json:"Filters,omitempty"`
}

func NewListReceiptFiltersResult() *ListReceiptFiltersResult {
	return &ListReceiptFiltersResult{Filters: []*ReceiptFilter{}}
}

// SetFilters replaces the Filters list with a copy of v.
func (s *ListReceiptFiltersResult) SetFilters(v []*ReceiptFilter) *ListReceiptFiltersResult {
	s.Filters = copyRecords(v)
	return s
}

// AddFilters appends to the Filters list.
func (s *ListReceiptFiltersResult) AddFilters(v ...*ReceiptFilter) *ListReceiptFiltersResult {
	if s.Filters == nil {
		s.Filters = make([]*ReceiptFilter, 0, len(v))
	}
	s.Filters = append(s.Filters, v...)
	return s
}

func (s *ListReceiptFiltersResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNestedList(f, "Filters", s.Filters)
	return f.String()
}

func (s *ListReceiptFiltersResult) Equal(other *ListReceiptFiltersResult) bool {
	return equalRecords(s, other)
}

func (s *ListReceiptFiltersResult) Hash() uint64 {
	return hashRecord(s)
}

func (s *ListReceiptFiltersResult) Clone() *ListReceiptFiltersResult {
	return cloneRecord(s)
}

package sesmodel

import (
	"maps"
	"slices"
	"strings"
)

// IdentityNotificationAttributes holds the SNS topics and feedback settings
// of a verified identity.
type IdentityNotificationAttributes struct {
	BounceTopic    *string `json:"BounceTopic,omitempty"`
	ComplaintTopic *string `json:"ComplaintTopic,omitempty"`
	DeliveryTopic  *string `json:"DeliveryTopic,omitempty"`

	// When true, bounces and complaints are also forwarded by email.
	ForwardingEnabled *bool `json:"ForwardingEnabled,omitempty"`

	HeadersInBounceNotificationsEnabled    *bool `json:"HeadersInBounceNotificationsEnabled,omitempty"`
	HeadersInComplaintNotificationsEnabled *bool `json:"HeadersInComplaintNotificationsEnabled,omitempty"`
	HeadersInDeliveryNotificationsEnabled  *bool `json:"HeadersInDeliveryNotificationsEnabled,omitempty"`
}

func NewIdentityNotificationAttributes() *IdentityNotificationAttributes {
	return &IdentityNotificationAttributes{}
}

// SetBounceTopic sets the BounceTopic field's value.
func (s *IdentityNotificationAttributes) SetBounceTopic(v string) *IdentityNotificationAttributes {
	s.BounceTopic = &v
	return s
}

// SetComplaintTopic sets the ComplaintTopic field's value.
func (s *IdentityNotificationAttributes) SetComplaintTopic(v string) *IdentityNotificationAttributes {
	s.ComplaintTopic = &v
	return s
}

// SetDeliveryTopic sets the DeliveryTopic field's value.
func (s *IdentityNotificationAttributes) SetDeliveryTopic(v string) *IdentityNotificationAttributes {
	s.DeliveryTopic = &v
	return s
}

// SetForwardingEnabled sets the ForwardingEnabled field's value.
func (s *IdentityNotificationAttributes) SetForwardingEnabled(v bool) *IdentityNotificationAttributes {
	s.ForwardingEnabled = &v
	return s
}

// SetHeadersInBounceNotificationsEnabled sets the HeadersInBounceNotificationsEnabled field's value.
func (s *IdentityNotificationAttributes) SetHeadersInBounceNotificationsEnabled(v bool) *IdentityNotificationAttributes {
	s.HeadersInBounceNotificationsEnabled = &v
	return s
}

// SetHeadersInComplaintNotificationsEnabled sets the HeadersInComplaintNotificationsEnabled field's value.
func (s *IdentityNotificationAttributes) SetHeadersInComplaintNotificationsEnabled(v bool) *IdentityNotificationAttributes {
	s.HeadersInComplaintNotificationsEnabled = &v
	return s
}

// SetHeadersInDeliveryNotificationsEnabled sets the HeadersInDeliveryNotificationsEnabled field's value.
func (s *IdentityNotificationAttributes) SetHeadersInDeliveryNotificationsEnabled(v bool) *IdentityNotificationAttributes {
	s.HeadersInDeliveryNotificationsEnabled = &v
	return s
}

// Topic returns the topic configured for the given notification type.
func (s *IdentityNotificationAttributes) Topic(t NotificationType) *string {
	if s == nil {
		return nil
	}
	switch t {
	case NotificationTypeBounce:
		return s.BounceTopic
	case NotificationTypeComplaint:
		return s.ComplaintTopic
	case NotificationTypeDelivery:
		return s.DeliveryTopic
	default:
		return nil
	}
}

func (s *IdentityNotificationAttributes) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("BounceTopic", s.BounceTopic)
	f.str("ComplaintTopic", s.ComplaintTopic)
	f.str("DeliveryTopic", s.DeliveryTopic)
	f.boolean("ForwardingEnabled", s.ForwardingEnabled)
	f.boolean("HeadersInBounceNotificationsEnabled", s.HeadersInBounceNotificationsEnabled)
	f.boolean("HeadersInComplaintNotificationsEnabled", s.HeadersInComplaintNotificationsEnabled)
	f.boolean("HeadersInDeliveryNotificationsEnabled", s.HeadersInDeliveryNotificationsEnabled)
	return f.String()
}

func (s *IdentityNotificationAttributes) Equal(other *IdentityNotificationAttributes) bool {
	return equalRecords(s, other)
}

func (s *IdentityNotificationAttributes) Hash() uint64 {
	return hashRecord(s)
}

func (s *IdentityNotificationAttributes) Clone() *IdentityNotificationAttributes {
	return cloneRecord(s)
}

// SetIdentityNotificationTopicRequest points one notification type of an
// identity at an SNS topic. An absent SnsTopic disables publishing.
type SetIdentityNotificationTopicRequest struct {
	Identity         *string          `json:"Identity,omitempty"`
	NotificationType NotificationType `json:"NotificationType,omitempty"`
	SnsTopic         *string          `json:"SnsTopic,omitempty"`
}

func NewSetIdentityNotificationTopicRequest(identity string, notificationType NotificationType) *SetIdentityNotificationTopicRequest {
	return &SetIdentityNotificationTopicRequest{Identity: &identity, NotificationType: notificationType}
}

func (s *SetIdentityNotificationTopicRequest) SetIdentity(v string) *SetIdentityNotificationTopicRequest {
	s.Identity = &v
	return s
}

func (s *SetIdentityNotificationTopicRequest) SetNotificationType(v NotificationType) *SetIdentityNotificationTopicRequest {
	s.NotificationType = v
	return s
}

func (s *SetIdentityNotificationTopicRequest) SetSnsTopic(v string) *SetIdentityNotificationTopicRequest {
	s.SnsTopic = &v
	return s
}

func (s *SetIdentityNotificationTopicRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Identity", s.Identity)
	f.enum("NotificationType", string(s.NotificationType))
	f.str("SnsTopic", s.SnsTopic)
	return f.String()
}

func (s *SetIdentityNotificationTopicRequest) Equal(other *SetIdentityNotificationTopicRequest) bool {
	return equalRecords(s, other)
}

func (s *SetIdentityNotificationTopicRequest) Hash() uint64 {
	return hashRecord(s)
}

type SetIdentityFeedbackForwardingEnabledRequest struct {
	Identity          *string `json:"Identity,omitempty"`
	ForwardingEnabled *bool   `json:"ForwardingEnabled,omitempty"`
}

func (s *SetIdentityFeedbackForwardingEnabledRequest) SetIdentity(v string) *SetIdentityFeedbackForwardingEnabledRequest {
	s.Identity = &v
	return s
}

func (s *SetIdentityFeedbackForwardingEnabledRequest) SetForwardingEnabled(v bool) *SetIdentityFeedbackForwardingEnabledRequest {
	s.ForwardingEnabled = &v
	return s
}

func (s *SetIdentityFeedbackForwardingEnabledRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Identity", s.Identity)
	f.boolean("ForwardingEnabled", s.ForwardingEnabled)
	return f.String()
}

func (s *SetIdentityFeedbackForwardingEnabledRequest) Equal(other *SetIdentityFeedbackForwardingEnabledRequest) bool {
	return equalRecords(s, other)
}

func (s *SetIdentityFeedbackForwardingEnabledRequest) Hash() uint64 {
	return hashRecord(s)
}

type SetIdentityHeadersInNotificationsEnabledRequest struct {
	Identity         *string          `json:"Identity,omitempty"`
	NotificationType NotificationType `json:"NotificationType,omitempty"`
	Enabled          *bool            `json:"Enabled,omitempty"`
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) SetIdentity(v string) *SetIdentityHeadersInNotificationsEnabledRequest {
	s.Identity = &v
	return s
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) SetNotificationType(v NotificationType) *SetIdentityHeadersInNotificationsEnabledRequest {
	s.NotificationType = v
	return s
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) SetEnabled(v bool) *SetIdentityHeadersInNotificationsEnabledRequest {
	s.Enabled = &v
	return s
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Identity", s.Identity)
	f.enum("NotificationType", string(s.NotificationType))
	f.boolean("Enabled", s.Enabled)
	return f.String()
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) Equal(other *SetIdentityHeadersInNotificationsEnabledRequest) bool {
	return equalRecords(s, other)
}

func (s *SetIdentityHeadersInNotificationsEnabledRequest) Hash() uint64 {
	return hashRecord(s)
}

type GetIdentityNotificationAttributesRequest struct {
	Identities []string `json:"Identities,omitempty"`
}

func NewGetIdentityNotificationAttributesRequest() *GetIdentityNotificationAttributesRequest {
	return &GetIdentityNotificationAttributesRequest{Identities: []string{}}
}

// SetIdentities replaces the Identities list with a copy of v.
func (s *GetIdentityNotificationAttributesRequest) SetIdentities(v []string) *GetIdentityNotificationAttributesRequest {
	s.Identities = copyStrings(v)
	return s
}

// AddIdentities appends to the Identities list.
func (s *GetIdentityNotificationAttributesRequest) AddIdentities(v ...string) *GetIdentityNotificationAttributesRequest {
	if s.Identities == nil {
		s.Identities = make([]string, 0, len(v))
	}
	s.Identities = append(s.Identities, v...)
	return s
}

func (s *GetIdentityNotificationAttributesRequest) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.strings("Identities", s.Identities)
	return f.String()
}

func (s *GetIdentityNotificationAttributesRequest) Equal(other *GetIdentityNotificationAttributesRequest) bool {
	return equalRecords(s, other)
}

func (s *GetIdentityNotificationAttributesRequest) Hash() uint64 {
	return hashRecord(s)
}

type GetIdentityNotificationAttributesResult struct {
	NotificationAttributes map[string]*IdentityNotificationAttributes `json:"NotificationAttributes,omitempty"`
}

func NewGetIdentityNotificationAttributesResult() *GetIdentityNotificationAttributesResult {
	return &GetIdentityNotificationAttributesResult{
		NotificationAttributes: map[string]*IdentityNotificationAttributes{},
	}
}

// SetNotificationAttributes replaces the map with a copy of v.
func (s *GetIdentityNotificationAttributesResult) SetNotificationAttributes(v map[string]*IdentityNotificationAttributes) *GetIdentityNotificationAttributesResult {
	s.NotificationAttributes = maps.Clone(v)
	return s
}

// AddNotificationAttributesEntry sets one identity's attributes.
func (s *GetIdentityNotificationAttributesResult) AddNotificationAttributesEntry(identity string, v *IdentityNotificationAttributes) *GetIdentityNotificationAttributesResult {
	if s.NotificationAttributes == nil {
		s.NotificationAttributes = map[string]*IdentityNotificationAttributes{}
	}
	s.NotificationAttributes[identity] = v
	return s
}

// String renders map entries sorted by identity.
func (s *GetIdentityNotificationAttributesResult) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	if s.NotificationAttributes != nil {
		entries := make([]string, 0, len(s.NotificationAttributes))
		for _, k := range slices.Sorted(maps.Keys(s.NotificationAttributes)) {
			entries = append(entries, k+"="+s.NotificationAttributes[k].String())
		}
		f.add("NotificationAttributes", "{"+strings.Join(entries, ", ")+"}")
	}
	return f.String()
}

func (s *GetIdentityNotificationAttributesResult) Equal(other *GetIdentityNotificationAttributesResult) bool {
	return equalRecords(s, other)
}

func (s *GetIdentityNotificationAttributesResult) Hash() uint64 {
	return hashRecord(s)
}

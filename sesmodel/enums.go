package sesmodel

import "slices"

// Enumerated fields are typed strings. A typed constant and the equivalent
// raw literal store the same value, and a raw conversion such as
// TlsPolicy("Strict") is still accepted so values added by the service later
// can pass through. Use the ParseX functions where unknown values must be
// rejected.

func parseEnum[T ~string](enum, s string, values []T) (T, error) {
	v := T(s)
	if !slices.Contains(values, v) {
		return "", NewUnknownEnumValueError(enum, s)
	}
	return v, nil
}

// TlsPolicy specifies whether a receipt rule requires inbound mail to arrive
// over TLS.
type TlsPolicy string

const (
	TlsPolicyRequire  TlsPolicy = "Require"
	TlsPolicyOptional TlsPolicy = "Optional"
)

// Values returns all known values for TlsPolicy. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TlsPolicy) Values() []TlsPolicy {
	return []TlsPolicy{
		"Require",
		"Optional",
	}
}

func (e TlsPolicy) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseTlsPolicy(s string) (TlsPolicy, error) {
	return parseEnum("TlsPolicy", s, TlsPolicy("").Values())
}

// InvocationType is how a LambdaAction invokes its function.
type InvocationType string

const (
	InvocationTypeEvent           InvocationType = "Event"
	InvocationTypeRequestResponse InvocationType = "RequestResponse"
)

// Values returns all known values for InvocationType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (InvocationType) Values() []InvocationType {
	return []InvocationType{
		"Event",
		"RequestResponse",
	}
}

func (e InvocationType) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseInvocationType(s string) (InvocationType, error) {
	return parseEnum("InvocationType", s, InvocationType("").Values())
}

// BulkEmailStatus is the outcome of sending to a single bulk destination.
type BulkEmailStatus string

const (
	BulkEmailStatusSuccess                       BulkEmailStatus = "Success"
	BulkEmailStatusMessageRejected               BulkEmailStatus = "MessageRejected"
	BulkEmailStatusMailFromDomainNotVerified     BulkEmailStatus = "MailFromDomainNotVerified"
	BulkEmailStatusConfigurationSetDoesNotExist  BulkEmailStatus = "ConfigurationSetDoesNotExist"
	BulkEmailStatusTemplateDoesNotExist          BulkEmailStatus = "TemplateDoesNotExist"
	BulkEmailStatusAccountSuspended              BulkEmailStatus = "AccountSuspended"
	BulkEmailStatusAccountThrottled              BulkEmailStatus = "AccountThrottled"
	BulkEmailStatusAccountDailyQuotaExceeded     BulkEmailStatus = "AccountDailyQuotaExceeded"
	BulkEmailStatusInvalidSendingPoolName        BulkEmailStatus = "InvalidSendingPoolName"
	BulkEmailStatusAccountSendingPaused          BulkEmailStatus = "AccountSendingPaused"
	BulkEmailStatusConfigurationSetSendingPaused BulkEmailStatus = "ConfigurationSetSendingPaused"
	BulkEmailStatusInvalidParameterValue         BulkEmailStatus = "InvalidParameterValue"
	BulkEmailStatusTransientFailure              BulkEmailStatus = "TransientFailure"
	BulkEmailStatusFailed                        BulkEmailStatus = "Failed"
)

// Values returns all known values for BulkEmailStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (BulkEmailStatus) Values() []BulkEmailStatus {
	return []BulkEmailStatus{
		"Success",
		"MessageRejected",
		"MailFromDomainNotVerified",
		"ConfigurationSetDoesNotExist",
		"TemplateDoesNotExist",
		"AccountSuspended",
		"AccountThrottled",
		"AccountDailyQuotaExceeded",
		"InvalidSendingPoolName",
		"AccountSendingPaused",
		"ConfigurationSetSendingPaused",
		"InvalidParameterValue",
		"TransientFailure",
		"Failed",
	}
}

func (e BulkEmailStatus) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

// Retryable reports whether resending to the destination may succeed
// without changing the request.
func (e BulkEmailStatus) Retryable() bool {
	switch e {
	case BulkEmailStatusAccountThrottled, BulkEmailStatusTransientFailure:
		return true
	default:
		return false
	}
}

func ParseBulkEmailStatus(s string) (BulkEmailStatus, error) {
	return parseEnum("BulkEmailStatus", s, BulkEmailStatus("").Values())
}

// DsnAction is the RFC 3464 action field of a recipient DSN.
type DsnAction string

const (
	DsnActionFailed    DsnAction = "failed"
	DsnActionDelayed   DsnAction = "delayed"
	DsnActionDelivered DsnAction = "delivered"
	DsnActionRelayed   DsnAction = "relayed"
	DsnActionExpanded  DsnAction = "expanded"
)

// Values returns all known values for DsnAction. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (DsnAction) Values() []DsnAction {
	return []DsnAction{
		"failed",
		"delayed",
		"delivered",
		"relayed",
		"expanded",
	}
}

func (e DsnAction) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseDsnAction(s string) (DsnAction, error) {
	return parseEnum("DsnAction", s, DsnAction("").Values())
}

type BounceType string

const (
	BounceTypeDoesNotExist     BounceType = "DoesNotExist"
	BounceTypeMessageTooLarge  BounceType = "MessageTooLarge"
	BounceTypeExceededQuota    BounceType = "ExceededQuota"
	BounceTypeContentRejected  BounceType = "ContentRejected"
	BounceTypeUndefined        BounceType = "Undefined"
	BounceTypeTemporaryFailure BounceType = "TemporaryFailure"
)

// Values returns all known values for BounceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (BounceType) Values() []BounceType {
	return []BounceType{
		"DoesNotExist",
		"MessageTooLarge",
		"ExceededQuota",
		"ContentRejected",
		"Undefined",
		"TemporaryFailure",
	}
}

func (e BounceType) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseBounceType(s string) (BounceType, error) {
	return parseEnum("BounceType", s, BounceType("").Values())
}

// NotificationType selects which identity notification a topic or header
// setting applies to.
type NotificationType string

const (
	NotificationTypeBounce    NotificationType = "Bounce"
	NotificationTypeComplaint NotificationType = "Complaint"
	NotificationTypeDelivery  NotificationType = "Delivery"
)

// Values returns all known values for NotificationType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (NotificationType) Values() []NotificationType {
	return []NotificationType{
		"Bounce",
		"Complaint",
		"Delivery",
	}
}

func (e NotificationType) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseNotificationType(s string) (NotificationType, error) {
	return parseEnum("NotificationType", s, NotificationType("").Values())
}

type SNSActionEncoding string

const (
	SNSActionEncodingUtf8   SNSActionEncoding = "UTF-8"
	SNSActionEncodingBase64 SNSActionEncoding = "Base64"
)

// Values returns all known values for SNSActionEncoding. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (SNSActionEncoding) Values() []SNSActionEncoding {
	return []SNSActionEncoding{
		"UTF-8",
		"Base64",
	}
}

func (e SNSActionEncoding) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseSNSActionEncoding(s string) (SNSActionEncoding, error) {
	return parseEnum("SNSActionEncoding", s, SNSActionEncoding("").Values())
}

type StopScope string

const (
	StopScopeRuleSet StopScope = "RuleSet"
)

// Values returns all known values for StopScope. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (StopScope) Values() []StopScope {
	return []StopScope{
		"RuleSet",
	}
}

func (e StopScope) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseStopScope(s string) (StopScope, error) {
	return parseEnum("StopScope", s, StopScope("").Values())
}

// ReceiptFilterPolicy is whether a receipt filter accepts or rejects mail
// from its IP range.
type ReceiptFilterPolicy string

const (
	ReceiptFilterPolicyBlock ReceiptFilterPolicy = "Block"
	ReceiptFilterPolicyAllow ReceiptFilterPolicy = "Allow"
)

// Values returns all known values for ReceiptFilterPolicy. Note that this can
// be expanded in the future, and so it is only as up to date as the client.
func (ReceiptFilterPolicy) Values() []ReceiptFilterPolicy {
	return []ReceiptFilterPolicy{
		"Block",
		"Allow",
	}
}

func (e ReceiptFilterPolicy) IsKnown() bool {
	return slices.Contains(e.Values(), e)
}

func ParseReceiptFilterPolicy(s string) (ReceiptFilterPolicy, error) {
	return parseEnum("ReceiptFilterPolicy", s, ReceiptFilterPolicy("").Values())
}

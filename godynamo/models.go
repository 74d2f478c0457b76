package godynamo

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

/* Tables */

// Table represents a table and holds basic information about it.
type Table struct {
	TableName      string
	PrimaryKeyName string
	PrimaryKeyType types.ScalarAttributeType
	SortKeyName    string
	SortKeyType    types.ScalarAttributeType
	TTLAttribute   string
}

type ListTableParams struct {
	StartTable *string `json:"start_table"`
	Limit      *int32  `json:"limit"`
}

// Attribute names of the feedback table.
const (
	AttrAddress   = "email"
	AttrSortKey   = "sk"
	AttrType      = "type"
	AttrExpiresAt = "expires_at"
)

// FeedbackTable returns the schema FeedbackRecord items are stored with:
// one partition per address, sorted by arrival.
func FeedbackTable(name string) *Table {
	return &Table{
		TableName:      name,
		PrimaryKeyName: AttrAddress,
		PrimaryKeyType: types.ScalarAttributeTypeS,
		SortKeyName:    AttrSortKey,
		SortKeyType:    types.ScalarAttributeTypeS,
		TTLAttribute:   AttrExpiresAt,
	}
}

/* Feedback */

type FeedbackType string

const (
	FeedbackHardBounce FeedbackType = "hard_bounce"
	FeedbackSoftBounce FeedbackType = "soft_bounce"
	FeedbackComplaint  FeedbackType = "complaint"
)

// Suppresses reports whether mail to an address with this feedback should
// stop.
func (t FeedbackType) Suppresses() bool {
	return t == FeedbackHardBounce || t == FeedbackComplaint
}

// FeedbackRecord is one bounce or complaint for one recipient.
type FeedbackRecord struct {
	Address    string       `dynamodbav:"email" json:"email"`
	SortKey    string       `dynamodbav:"sk" json:"-"`
	Type       FeedbackType `dynamodbav:"type" json:"type"`
	SubType    string       `dynamodbav:"sub_type,omitempty" json:"sub_type,omitempty"`
	From       string       `dynamodbav:"from,omitempty" json:"from,omitempty"`
	MessageID  string       `dynamodbav:"message_id,omitempty" json:"message_id,omitempty"`
	FeedbackID string       `dynamodbav:"feedback_id,omitempty" json:"feedback_id,omitempty"`
	Diagnostic string       `dynamodbav:"diagnostic,omitempty" json:"diagnostic,omitempty"`
	ReceivedAt time.Time    `dynamodbav:"received_at" json:"received_at"`
	ExpiresAt  int64        `dynamodbav:"expires_at,omitempty" json:"expires_at,omitempty"`
}

// sortKeyLayout has a fixed width so sort keys order by time.
const sortKeyLayout = "2006-01-02T15:04:05.000000000Z"

func sortKeyPrefix(t time.Time) string {
	return t.UTC().Format(sortKeyLayout)
}

func sortKey(t time.Time, feedbackID string) string {
	return fmt.Sprintf("%s#%s", sortKeyPrefix(t), feedbackID)
}

// NormalizeAddress returns the form addresses are stored under.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

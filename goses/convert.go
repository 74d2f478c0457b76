package goses

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/ggarcia209/go-ses/sesmodel"
)

var bulkStatuses = map[types.BulkEmailStatus]sesmodel.BulkEmailStatus{
	"SUCCESS":                          sesmodel.BulkEmailStatusSuccess,
	"MESSAGE_REJECTED":                 sesmodel.BulkEmailStatusMessageRejected,
	"MAIL_FROM_DOMAIN_NOT_VERIFIED":    sesmodel.BulkEmailStatusMailFromDomainNotVerified,
	"CONFIGURATION_SET_NOT_FOUND":      sesmodel.BulkEmailStatusConfigurationSetDoesNotExist,
	"TEMPLATE_NOT_FOUND":               sesmodel.BulkEmailStatusTemplateDoesNotExist,
	"ACCOUNT_SUSPENDED":                sesmodel.BulkEmailStatusAccountSuspended,
	"ACCOUNT_THROTTLED":                sesmodel.BulkEmailStatusAccountThrottled,
	"ACCOUNT_DAILY_QUOTA_EXCEEDED":     sesmodel.BulkEmailStatusAccountDailyQuotaExceeded,
	"INVALID_SENDING_POOL_NAME":        sesmodel.BulkEmailStatusInvalidSendingPoolName,
	"ACCOUNT_SENDING_PAUSED":           sesmodel.BulkEmailStatusAccountSendingPaused,
	"CONFIGURATION_SET_SENDING_PAUSED": sesmodel.BulkEmailStatusConfigurationSetSendingPaused,
	"INVALID_PARAMETER":                sesmodel.BulkEmailStatusInvalidParameterValue,
	"TRANSIENT_FAILURE":                sesmodel.BulkEmailStatusTransientFailure,
	"FAILED":                           sesmodel.BulkEmailStatusFailed,
}

// fromBulkStatus passes statuses it does not know through unchanged.
func fromBulkStatus(v types.BulkEmailStatus) sesmodel.BulkEmailStatus {
	if st, ok := bulkStatuses[v]; ok {
		return st
	}
	return sesmodel.BulkEmailStatus(v)
}

func fromBulkEntryResult(r types.BulkEmailEntryResult) *sesmodel.BulkEmailDestinationStatus {
	return &sesmodel.BulkEmailDestinationStatus{
		Status:    fromBulkStatus(r.Status),
		Error:     r.Error,
		MessageId: r.MessageId,
	}
}

func toDestination(d *sesmodel.Destination) *types.Destination {
	if d == nil {
		return nil
	}
	return &types.Destination{
		ToAddresses:  d.ToAddresses,
		CcAddresses:  d.CcAddresses,
		BccAddresses: d.BccAddresses,
	}
}

// toContent defaults the charset to UTF-8.
func toContent(c *sesmodel.Content) *types.Content {
	if c == nil {
		return nil
	}
	charset := c.Charset
	if charset == nil {
		charset = aws.String(CharSet)
	}
	return &types.Content{
		Data:    c.Data,
		Charset: charset,
	}
}

func toMessage(m *sesmodel.Message) *types.Message {
	msg := &types.Message{
		Subject: toContent(m.Subject),
	}
	if m.Body != nil {
		msg.Body = &types.Body{
			Text: toContent(m.Body.Text),
			Html: toContent(m.Body.Html),
		}
	}
	return msg
}

func toTags(tags []*sesmodel.MessageTag) []types.MessageTag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.MessageTag, 0, len(tags))
	for _, t := range tags {
		if t == nil {
			continue
		}
		out = append(out, types.MessageTag{Name: t.Name, Value: t.Value})
	}
	return out
}

func toBulkEntry(d *sesmodel.BulkEmailDestination) types.BulkEmailEntry {
	if d == nil {
		return types.BulkEmailEntry{}
	}
	entry := types.BulkEmailEntry{
		Destination:     toDestination(d.Destination),
		ReplacementTags: toTags(d.ReplacementTags),
	}
	if d.ReplacementTemplateData != nil {
		entry.ReplacementEmailContent = &types.ReplacementEmailContent{
			ReplacementTemplate: &types.ReplacementTemplate{
				ReplacementTemplateData: d.ReplacementTemplateData,
			},
		}
	}
	return entry
}

// fromArn prefers FromArn, which raw messages use for the From header
// identity, over SourceArn.
func fromArn(from, source *string) *string {
	if from != nil {
		return from
	}
	return source
}

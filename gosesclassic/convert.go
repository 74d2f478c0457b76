package gosesclassic

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"

	"github.com/ggarcia209/go-ses/sesmodel"
)

// enumString leaves unset enum fields out of the request.
func enumString(v string) *string {
	if v == "" {
		return nil
	}
	return aws.String(v)
}

func toReceiptRule(r *sesmodel.ReceiptRule) *ses.ReceiptRule {
	if r == nil {
		return nil
	}
	out := &ses.ReceiptRule{
		Name:        r.Name,
		Enabled:     r.Enabled,
		ScanEnabled: r.ScanEnabled,
		TlsPolicy:   enumString(string(r.TlsPolicy)),
		Recipients:  aws.StringSlice(r.Recipients),
	}
	for _, a := range r.Actions {
		if a != nil {
			out.Actions = append(out.Actions, toReceiptAction(a))
		}
	}
	return out
}

func toReceiptAction(a *sesmodel.ReceiptAction) *ses.ReceiptAction {
	out := &ses.ReceiptAction{}
	if v := a.S3Action; v != nil {
		out.S3Action = &ses.S3Action{
			TopicArn:        v.TopicArn,
			BucketName:      v.BucketName,
			ObjectKeyPrefix: v.ObjectKeyPrefix,
			KmsKeyArn:       v.KmsKeyArn,
		}
	}
	if v := a.BounceAction; v != nil {
		out.BounceAction = &ses.BounceAction{
			TopicArn:      v.TopicArn,
			SmtpReplyCode: v.SmtpReplyCode,
			StatusCode:    v.StatusCode,
			Message:       v.Message,
			Sender:        v.Sender,
		}
	}
	if v := a.WorkmailAction; v != nil {
		out.WorkmailAction = &ses.WorkmailAction{
			TopicArn:        v.TopicArn,
			OrganizationArn: v.OrganizationArn,
		}
	}
	if v := a.LambdaAction; v != nil {
		out.LambdaAction = &ses.LambdaAction{
			TopicArn:       v.TopicArn,
			FunctionArn:    v.FunctionArn,
			InvocationType: enumString(string(v.InvocationType)),
		}
	}
	if v := a.StopAction; v != nil {
		out.StopAction = &ses.StopAction{
			Scope:    enumString(string(v.Scope)),
			TopicArn: v.TopicArn,
		}
	}
	if v := a.AddHeaderAction; v != nil {
		out.AddHeaderAction = &ses.AddHeaderAction{
			HeaderName:  v.HeaderName,
			HeaderValue: v.HeaderValue,
		}
	}
	if v := a.SNSAction; v != nil {
		out.SNSAction = &ses.SNSAction{
			TopicArn: v.TopicArn,
			Encoding: enumString(string(v.Encoding)),
		}
	}
	return out
}

func fromReceiptRule(r *ses.ReceiptRule) *sesmodel.ReceiptRule {
	if r == nil {
		return nil
	}
	out := &sesmodel.ReceiptRule{
		Name:        r.Name,
		Enabled:     r.Enabled,
		ScanEnabled: r.ScanEnabled,
		TlsPolicy:   sesmodel.TlsPolicy(aws.StringValue(r.TlsPolicy)),
		Recipients:  aws.StringValueSlice(r.Recipients),
		Actions:     make([]*sesmodel.ReceiptAction, 0, len(r.Actions)),
	}
	for _, a := range r.Actions {
		if a != nil {
			out.Actions = append(out.Actions, fromReceiptAction(a))
		}
	}
	return out
}

func fromReceiptAction(a *ses.ReceiptAction) *sesmodel.ReceiptAction {
	out := sesmodel.NewReceiptAction()
	if v := a.S3Action; v != nil {
		out.S3Action = &sesmodel.S3Action{
			TopicArn:        v.TopicArn,
			BucketName:      v.BucketName,
			ObjectKeyPrefix: v.ObjectKeyPrefix,
			KmsKeyArn:       v.KmsKeyArn,
		}
	}
	if v := a.BounceAction; v != nil {
		out.BounceAction = &sesmodel.BounceAction{
			TopicArn:      v.TopicArn,
			SmtpReplyCode: v.SmtpReplyCode,
			StatusCode:    v.StatusCode,
			Message:       v.Message,
			Sender:        v.Sender,
		}
	}
	if v := a.WorkmailAction; v != nil {
		out.WorkmailAction = &sesmodel.WorkmailAction{
			TopicArn:        v.TopicArn,
			OrganizationArn: v.OrganizationArn,
		}
	}
	if v := a.LambdaAction; v != nil {
		out.LambdaAction = &sesmodel.LambdaAction{
			TopicArn:       v.TopicArn,
			FunctionArn:    v.FunctionArn,
			InvocationType: sesmodel.InvocationType(aws.StringValue(v.InvocationType)),
		}
	}
	if v := a.StopAction; v != nil {
		out.StopAction = &sesmodel.StopAction{
			Scope:    sesmodel.StopScope(aws.StringValue(v.Scope)),
			TopicArn: v.TopicArn,
		}
	}
	if v := a.AddHeaderAction; v != nil {
		out.AddHeaderAction = &sesmodel.AddHeaderAction{
			HeaderName:  v.HeaderName,
			HeaderValue: v.HeaderValue,
		}
	}
	if v := a.SNSAction; v != nil {
		out.SNSAction = &sesmodel.SNSAction{
			TopicArn: v.TopicArn,
			Encoding: sesmodel.SNSActionEncoding(aws.StringValue(v.Encoding)),
		}
	}
	return out
}

func toExtensionFields(fields []*sesmodel.ExtensionField) []*ses.ExtensionField {
	var out []*ses.ExtensionField
	for _, f := range fields {
		if f != nil {
			out = append(out, &ses.ExtensionField{Name: f.Name, Value: f.Value})
		}
	}
	return out
}

func toSendBounceInput(req *sesmodel.SendBounceRequest) *ses.SendBounceInput {
	input := &ses.SendBounceInput{
		OriginalMessageId: req.OriginalMessageId,
		BounceSender:      req.BounceSender,
		BounceSenderArn:   req.BounceSenderArn,
		Explanation:       req.Explanation,
	}
	if dsn := req.MessageDsn; dsn != nil {
		input.MessageDsn = &ses.MessageDsn{
			ReportingMta:    dsn.ReportingMta,
			ArrivalDate:     dsn.ArrivalDate,
			ExtensionFields: toExtensionFields(dsn.ExtensionFields),
		}
	}
	for _, info := range req.BouncedRecipientInfoList {
		if info == nil {
			continue
		}
		out := &ses.BouncedRecipientInfo{
			Recipient:    info.Recipient,
			RecipientArn: info.RecipientArn,
			BounceType:   enumString(string(info.BounceType)),
		}
		if f := info.RecipientDsnFields; f != nil {
			out.RecipientDsnFields = &ses.RecipientDsnFields{
				FinalRecipient:  f.FinalRecipient,
				Action:          enumString(string(f.Action)),
				RemoteMta:       f.RemoteMta,
				Status:          f.Status,
				DiagnosticCode:  f.DiagnosticCode,
				LastAttemptDate: f.LastAttemptDate,
				ExtensionFields: toExtensionFields(f.ExtensionFields),
			}
		}
		input.BouncedRecipientInfoList = append(input.BouncedRecipientInfoList, out)
	}
	return input
}

func fromNotificationAttributes(a *ses.IdentityNotificationAttributes) *sesmodel.IdentityNotificationAttributes {
	if a == nil {
		return nil
	}
	return &sesmodel.IdentityNotificationAttributes{
		BounceTopic:                            a.BounceTopic,
		ComplaintTopic:                         a.ComplaintTopic,
		DeliveryTopic:                          a.DeliveryTopic,
		ForwardingEnabled:                      a.ForwardingEnabled,
		HeadersInBounceNotificationsEnabled:    a.HeadersInBounceNotificationsEnabled,
		HeadersInComplaintNotificationsEnabled: a.HeadersInComplaintNotificationsEnabled,
		HeadersInDeliveryNotificationsEnabled:  a.HeadersInDeliveryNotificationsEnabled,
	}
}

func fromRuleSetMetadata(m *ses.ReceiptRuleSetMetadata) *sesmodel.ReceiptRuleSetMetadata {
	if m == nil {
		return nil
	}
	return &sesmodel.ReceiptRuleSetMetadata{
		Name:             m.Name,
		CreatedTimestamp: m.CreatedTimestamp,
	}
}

func fromRuleSet(m *ses.ReceiptRuleSetMetadata, rules []*ses.ReceiptRule) *sesmodel.ReceiptRuleSet {
	out := sesmodel.NewReceiptRuleSet(fromRuleSetMetadata(m))
	for _, r := range rules {
		if r != nil {
			out.AddRules(fromReceiptRule(r))
		}
	}
	return out
}

func toReceiptFilter(f *sesmodel.ReceiptFilter) *ses.ReceiptFilter {
	if f == nil {
		return nil
	}
	out := &ses.ReceiptFilter{Name: f.Name}
	if ip := f.IpFilter; ip != nil {
		out.IpFilter = &ses.ReceiptIpFilter{
			Policy: enumString(string(ip.Policy)),
			Cidr:   ip.Cidr,
		}
	}
	return out
}

func fromReceiptFilter(f *ses.ReceiptFilter) *sesmodel.ReceiptFilter {
	out := &sesmodel.ReceiptFilter{Name: f.Name}
	if ip := f.IpFilter; ip != nil {
		out.IpFilter = &sesmodel.ReceiptIpFilter{
			Policy: sesmodel.ReceiptFilterPolicy(aws.StringValue(ip.Policy)),
			Cidr:   ip.Cidr,
		}
	}
	return out
}

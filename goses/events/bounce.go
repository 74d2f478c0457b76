package events

import (
	"time"

	"github.com/ggarcia209/go-ses/sesmodel"
)

// Bounce type values reported by SES.
const (
	BounceTypeUndetermined = "Undetermined"
	BounceTypePermanent    = "Permanent"
	BounceTypeTransient    = "Transient"
)

// Bounce containts info for bounce events.
type Bounce struct {
	BounceType        string            `json:"bounceType"`
	BounceSubType     string            `json:"bounceSubType"`
	BouncedRecipients []bounceRecipient `json:"bouncedRecipients"`
	Timestamp         string            `json:"timestamp"`
	FeedbackId        string            `json:"feedbackId"`
	RemoteMtaIp       string            `json:"remoteMtaIp"`
	ReportingMTA      string            `json:"reportingMTA"`
}

type bounceRecipient struct {
	EmailAddress   string `json:"emailAddress"`
	Action         string `json:"action"`
	Status         string `json:"status"`
	DiagnosticCode string `json:"diagnosticCode"`
}

// Permanent reports whether the recipients should be removed from the
// mailing list.
func (b *Bounce) Permanent() bool {
	return b.BounceType == BounceTypePermanent
}

// Recipients returns the bounced addresses.
func (b *Bounce) Recipients() []string {
	addrs := make([]string, 0, len(b.BouncedRecipients))
	for _, r := range b.BouncedRecipients {
		addrs = append(addrs, r.EmailAddress)
	}
	return addrs
}

// RecipientDsnFields converts the bounced recipients into DSN records, e.g.
// to forward them with SendBounce. Action values are taken as reported.
// Recipients without DSN data only get FinalRecipient.
func (b *Bounce) RecipientDsnFields() []*sesmodel.RecipientDsnFields {
	var lastAttempt *time.Time
	if ts, err := time.Parse(time.RFC3339Nano, b.Timestamp); err == nil {
		lastAttempt = &ts
	}

	out := make([]*sesmodel.RecipientDsnFields, 0, len(b.BouncedRecipients))
	for _, r := range b.BouncedRecipients {
		f := sesmodel.NewRecipientDsnFields().SetFinalRecipient(r.EmailAddress)
		if r.Action != "" {
			f.SetAction(sesmodel.DsnAction(r.Action))
		}
		if r.Status != "" {
			f.SetStatus(r.Status)
		}
		if r.DiagnosticCode != "" {
			f.SetDiagnosticCode(r.DiagnosticCode)
		}
		if lastAttempt != nil {
			f.SetLastAttemptDate(*lastAttempt)
		}
		out = append(out, f)
	}
	return out
}

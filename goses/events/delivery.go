package events

// Delivery contains info for Delivery events.
type Delivery struct {
	Timestamp            string   `json:"timestamp"`
	ProcessingTimeMillis int64    `json:"processingTimeMillis"`
	Recipients           []string `json:"recipients"`
	SmtpResponse         string   `json:"smtpResponse"`
	RemoteMtaIp          string   `json:"remoteMtaIp"`
	ReportingMTA         string   `json:"reportingMTA"`
}

// DeliveryDelay contains info for the DeliveryDelay events.
type DeliveryDelay struct {
	DelayType         string             `json:"delayType"`
	DelayedRecipients []delayedRecipient `json:"delayedRecipients"`
	Timestamp         string             `json:"timestamp"`
	ExpirationTime    string             `json:"expirationTime"`
	ReportingMTA      string             `json:"reportingMTA"`
}

type delayedRecipient struct {
	EmailAddress   string `json:"emailAddress"`
	Status         string `json:"status"`
	DiagnosticCode string `json:"diagnosticCode"`
}

package events

// Receipt describes an inbound message delivered by a receipt rule.
type Receipt struct {
	Timestamp            string        `json:"timestamp"`
	ProcessingTimeMillis int64         `json:"processingTimeMillis"`
	Recipients           []string      `json:"recipients"`
	SpamVerdict          verdict       `json:"spamVerdict"`
	VirusVerdict         verdict       `json:"virusVerdict"`
	SPFVerdict           verdict       `json:"spfVerdict"`
	DKIMVerdict          verdict       `json:"dkimVerdict"`
	DMARCVerdict         verdict       `json:"dmarcVerdict"`
	DMARCPolicy          string        `json:"dmarcPolicy"`
	Action               receiptAction `json:"action"`
}

type verdict struct {
	Status string `json:"status"`
}

// receiptAction is the action that published the notification. Only the
// fields of that action type are set.
type receiptAction struct {
	Type            string `json:"type"`
	TopicArn        string `json:"topicArn"`
	BucketName      string `json:"bucketName"`
	ObjectKeyPrefix string `json:"objectKeyPrefix"`
	ObjectKey       string `json:"objectKey"`
	FunctionArn     string `json:"functionArn"`
	InvocationType  string `json:"invocationType"`
	Encoding        string `json:"encoding"`
	SmtpReplyCode   string `json:"smtpReplyCode"`
	StatusCode      string `json:"statusCode"`
	Message         string `json:"message"`
	Sender          string `json:"sender"`
}

// Passed reports whether every security verdict on the message is PASS.
func (r *Receipt) Passed() bool {
	for _, v := range []verdict{r.SpamVerdict, r.VirusVerdict, r.SPFVerdict, r.DKIMVerdict} {
		if v.Status != "PASS" {
			return false
		}
	}
	return true
}

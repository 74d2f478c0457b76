package events

type Complaint struct {
	ComplainedRecipients  []complaintRecipient `json:"complainedRecipients"`
	Timestamp             string               `json:"timestamp"`
	FeedbackId            string               `json:"feedbackId"`
	ComplaintSubType      string               `json:"complaintSubType"`
	UserAgent             string               `json:"userAgent"`
	ComplaintFeedbackType string               `json:"complaintFeedbackType"`
	ArrivalDate           string               `json:"arrivalDate"`
}

type complaintRecipient struct {
	EmailAddress string `json:"emailAddress"`
}

func (c *Complaint) Recipients() []string {
	addrs := make([]string, 0, len(c.ComplainedRecipients))
	for _, r := range c.ComplainedRecipients {
		addrs = append(addrs, r.EmailAddress)
	}
	return addrs
}

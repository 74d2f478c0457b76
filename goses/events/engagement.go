package events

// Open contains info for the Open events.
type Open struct {
	IpAddress string `json:"ipAddress"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent"`
}

// Click contains info for the Click events.
type Click struct {
	IpAddress string              `json:"ipAddress"`
	Timestamp string              `json:"timestamp"`
	UserAgent string              `json:"userAgent"`
	Link      string              `json:"link"`
	LinkTags  map[string][]string `json:"linkTags"`
}

// Reject contains info for Reject events. SES only rejects messages that
// contain a virus.
type Reject struct {
	Reason string `json:"reason"`
}

// RenderingFailure contains info for the RenderingFailure events.
type RenderingFailure struct {
	TemplateName string `json:"templateName"`
	ErrorMessage string `json:"errorMessage"`
}

package sesmodel

// Content is a piece of message text with an optional charset.
type Content struct {
	Data    *string `json:"Data,omitempty"`
	Charset *string `json:"Charset,omitempty"`
}

func NewContent(data string) *Content {
	return &Content{Data: &data}
}

func (s *Content) SetData(v string) *Content {
	s.Data = &v
	return s
}

func (s *Content) SetCharset(v string) *Content {
	s.Charset = &v
	return s
}

func (s *Content) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("Data", s.Data)
	f.str("Charset", s.Charset)
	return f.String()
}

func (s *Content) Equal(other *Content) bool {
	return equalRecords(s, other)
}

func (s *Content) Hash() uint64 {
	return hashRecord(s)
}

// Body holds the text and/or HTML parts of a message.
type Body struct {
	Text *Content `json:"Text,omitempty"`
	Html *Content `json:"Html,omitempty"`
}

func NewBody(text *Content) *Body {
	return &Body{Text: text}
}

func (s *Body) SetText(v *Content) *Body {
	s.Text = v
	return s
}

func (s *Body) SetHtml(v *Content) *Body {
	s.Html = v
	return s
}

func (s *Body) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Text", s.Text)
	addNested(f, "Html", s.Html)
	return f.String()
}

func (s *Body) Equal(other *Body) bool {
	return equalRecords(s, other)
}

func (s *Body) Hash() uint64 {
	return hashRecord(s)
}

// Message is a structured message: a subject and a body.
type Message struct {
	Subject *Content `json:"Subject,omitempty"`
	Body    *Body    `json:"Body,omitempty"`
}

func NewMessage(subject *Content, body *Body) *Message {
	return &Message{Subject: subject, Body: body}
}

func (s *Message) SetSubject(v *Content) *Message {
	s.Subject = v
	return s
}

func (s *Message) SetBody(v *Body) *Message {
	s.Body = v
	return s
}

func (s *Message) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	addNested(f, "Subject", s.Subject)
	addNested(f, "Body", s.Body)
	return f.String()
}

func (s *Message) Equal(other *Message) bool {
	return equalRecords(s, other)
}

func (s *Message) Hash() uint64 {
	return hashRecord(s)
}

func (s *Message) Clone() *Message {
	return cloneRecord(s)
}

// RawMessage is a complete MIME message: headers, a blank line, then the
// body. The SDK base64 encodes Data on the wire.
type RawMessage struct {
	Data []byte `json:"Data,omitempty"`
}

// NewRawMessage stores a copy of data.
func NewRawMessage(data []byte) *RawMessage {
	return &RawMessage{Data: append([]byte(nil), data...)}
}

// SetData replaces Data with a copy of v.
func (s *RawMessage) SetData(v []byte) *RawMessage {
	if v == nil {
		s.Data = nil
		return s
	}
	s.Data = append(make([]byte, 0, len(v)), v...)
	return s
}

func (s *RawMessage) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.blob("Data", s.Data)
	return f.String()
}

func (s *RawMessage) Equal(other *RawMessage) bool {
	return equalRecords(s, other)
}

func (s *RawMessage) Hash() uint64 {
	return hashRecord(s)
}

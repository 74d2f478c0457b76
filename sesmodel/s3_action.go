package sesmodel

// S3Action saves received mail to an Amazon S3 bucket and, optionally,
// publishes a notification to Amazon SNS.
type S3Action struct {
	TopicArn *string `json:"TopicArn,omitempty"`

	// Bucket the mail is written to.
	BucketName *string `json:"BucketName,omitempty"`

	// Key prefix of the stored object. The object key is the prefix followed
	// by the SES message id.
	ObjectKeyPrefix *string `json:"ObjectKeyPrefix,omitempty"`

	// KMS key used to encrypt the stored mail, either the SES default master
	// key alias or a customer managed key ARN.
	KmsKeyArn *string `json:"KmsKeyArn,omitempty"`
}

func NewS3Action() *S3Action {
	return &S3Action{}
}

// SetTopicArn sets the TopicArn field's value.
func (s *S3Action) SetTopicArn(v string) *S3Action {
	s.TopicArn = &v
	return s
}

// SetBucketName sets the BucketName field's value.
func (s *S3Action) SetBucketName(v string) *S3Action {
	s.BucketName = &v
	return s
}

// SetObjectKeyPrefix sets the ObjectKeyPrefix field's value.
func (s *S3Action) SetObjectKeyPrefix(v string) *S3Action {
	s.ObjectKeyPrefix = &v
	return s
}

// SetKmsKeyArn sets the KmsKeyArn field's value.
func (s *S3Action) SetKmsKeyArn(v string) *S3Action {
	s.KmsKeyArn = &v
	return s
}

// ObjectKey returns the key SES writes the given message to.
func (s *S3Action) ObjectKey(messageID string) string {
	if s == nil || s.ObjectKeyPrefix == nil {
		return messageID
	}
	return *s.ObjectKeyPrefix + messageID
}

func (s *S3Action) String() string {
	if s == nil {
		return nilRecord
	}
	f := &fieldList{}
	f.str("TopicArn", s.TopicArn)
	f.str("BucketName", s.BucketName)
	f.str("ObjectKeyPrefix", s.ObjectKeyPrefix)
	f.str("KmsKeyArn", s.KmsKeyArn)
	return f.String()
}

func (s *S3Action) Equal(other *S3Action) bool {
	return equalRecords(s, other)
}

func (s *S3Action) Hash() uint64 {
	return hashRecord(s)
}

func (s *S3Action) Clone() *S3Action {
	return cloneRecord(s)
}

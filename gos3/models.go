package gos3

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/ggarcia209/go-ses/sesmodel"
)

// Location is the bucket and key SES writes a received message to.
type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// MessageLocation resolves where a receipt rule's S3 action stored the
// message with the given id: the action's bucket, under its object key
// prefix.
func MessageLocation(action *sesmodel.S3Action, messageID string) (Location, error) {
	if action == nil || action.BucketName == nil || *action.BucketName == "" {
		return Location{}, NewInvalidLocationError("missing bucket name")
	}
	if messageID == "" {
		return Location{}, NewInvalidLocationError("missing message id")
	}

	key := messageID
	if action.ObjectKeyPrefix != nil {
		key = *action.ObjectKeyPrefix + messageID
	}
	return Location{Bucket: *action.BucketName, Key: key}, nil
}

type SHA256Checksum string

// NewSHA256Checksum returns the base64 encoded SHA-256 digest S3 expects.
func NewSHA256Checksum(data []byte) SHA256Checksum {
	sum := sha256.Sum256(data)
	return SHA256Checksum(base64.StdEncoding.EncodeToString(sum[:]))
}

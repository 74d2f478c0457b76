package gos3

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type ItemNotFoundError struct {
	*goaws.ClientErr
}

func NewItemNotFoundError(item string) error {
	return &ItemNotFoundError{
		goaws.NewClientError(fmt.Errorf("item not found: %s", item)),
	}
}

// InvalidLocationError is returned when an S3 action has no bucket or the
// message id is empty.
type InvalidLocationError struct {
	*goaws.ClientErr
}

func NewInvalidLocationError(message string) error {
	return &InvalidLocationError{
		goaws.NewClientError(fmt.Errorf("invalid location: %s", message)),
	}
}

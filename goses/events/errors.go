package events

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type InvalidNotificationError struct {
	*goaws.ClientErr
}

func NewInvalidNotificationError(msg string) *InvalidNotificationError {
	return &InvalidNotificationError{
		goaws.NewClientError(fmt.Errorf("invalid notification: %s", msg)),
	}
}

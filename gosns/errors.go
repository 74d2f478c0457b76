package gosns

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type InvalidProtocolError struct {
	*goaws.ClientErr
}

func NewInvalidProtocolError(protocol string) error {
	return &InvalidProtocolError{goaws.NewClientError(fmt.Errorf("invalid protocol: %s", protocol))}
}

type InvalidTopicNameError struct {
	*goaws.ClientErr
}

func NewInvalidTopicNameError(name string) error {
	return &InvalidTopicNameError{goaws.NewClientError(fmt.Errorf("invalid topic name: %q", name))}
}

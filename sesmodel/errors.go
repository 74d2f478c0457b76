package sesmodel

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type UnknownEnumValueError struct {
	*goaws.ClientErr
}

func NewUnknownEnumValueError(enum, value string) *UnknownEnumValueError {
	return &UnknownEnumValueError{
		goaws.NewClientError(fmt.Errorf("unknown %s value: %q", enum, value)),
	}
}

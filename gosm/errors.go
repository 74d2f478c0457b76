package gosm

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type SecretNotFoundError struct {
	*goaws.ClientErr
}

func NewSecretNotFoundError(key string) *SecretNotFoundError {
	return &SecretNotFoundError{
		goaws.NewClientError(fmt.Errorf("secret not found: %s", key)),
	}
}

type SecretPermissionsError struct {
	*goaws.ClientErr
}

func NewSecretPermissionsError(key string) *SecretPermissionsError {
	return &SecretPermissionsError{
		goaws.NewClientError(fmt.Errorf("secret permissions error: %s", key)),
	}
}

type SecretFieldNotFoundError struct {
	*goaws.ClientErr
}

func NewSecretFieldNotFoundError(key, field string) *SecretFieldNotFoundError {
	return &SecretFieldNotFoundError{
		goaws.NewClientError(fmt.Errorf("secret %s has no field %q", key, field)),
	}
}

// MissingResponseDataError is returned when GetSecretValue succeeds without
// a field every secret carries.
type MissingResponseDataError struct {
	*goaws.InternalError
}

func NewMissingResponseDataError(field string) *MissingResponseDataError {
	return &MissingResponseDataError{
		goaws.NewInternalError(fmt.Errorf("missing response data: %s", field)),
	}
}

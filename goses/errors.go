package goses

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type InvalidRecipientError struct {
	*goaws.ClientErr
}

func NewInvalidRecipientError() *InvalidRecipientError {
	return &InvalidRecipientError{
		goaws.NewClientError(fmt.Errorf("invalid recipient")),
	}
}

type UnverifiedDomainError struct {
	*goaws.ClientErr
}

func NewUnverifiedDomainError(domain string) *UnverifiedDomainError {
	return &UnverifiedDomainError{
		goaws.NewClientError(fmt.Errorf("unverified domain: %s", domain)),
	}
}

type InvalidSendRequestError struct {
	*goaws.ClientErr
}

func NewInvalidSendRequestError(message string) *InvalidSendRequestError {
	return &InvalidSendRequestError{
		goaws.NewClientError(fmt.Errorf("invalid send request: %s", message)),
	}
}

// MessageRejectedError is returned when SES refuses the message content,
// e.g. because it contains a virus.
type MessageRejectedError struct {
	*goaws.ClientErr
}

func NewMessageRejectedError(message string) *MessageRejectedError {
	return &MessageRejectedError{
		goaws.NewClientError(fmt.Errorf("message rejected: %s", message)),
	}
}

// ResourceNotFoundError covers missing configuration sets and templates.
type ResourceNotFoundError struct {
	*goaws.ClientErr
}

func NewResourceNotFoundError(message string) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		goaws.NewClientError(fmt.Errorf("resource not found: %s", message)),
	}
}

type SendingPausedError struct {
	*goaws.ClientErr
}

func NewSendingPausedError(message string) *SendingPausedError {
	return &SendingPausedError{
		goaws.NewClientError(fmt.Errorf("sending paused: %s", message)),
	}
}

// AccountSuspendedError is returned when SES has shut off sending for the
// whole account. Unlike a pause it is not lifted by the caller.
type AccountSuspendedError struct {
	*goaws.ClientErr
}

func NewAccountSuspendedError(message string) *AccountSuspendedError {
	return &AccountSuspendedError{
		goaws.NewClientError(fmt.Errorf("account suspended: %s", message)),
	}
}

type InvalidDkimKeyError struct {
	*goaws.ClientErr
}

func NewInvalidDkimKeyError(message string) *InvalidDkimKeyError {
	return &InvalidDkimKeyError{
		goaws.NewClientError(fmt.Errorf("invalid dkim signing key: %s", message)),
	}
}

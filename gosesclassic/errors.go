package gosesclassic

import (
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type InvalidRequestError struct {
	*goaws.ClientErr
}

func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{
		goaws.NewClientError(fmt.Errorf("invalid request: %s", message)),
	}
}

type RuleDoesNotExistError struct {
	*goaws.ClientErr
}

func NewRuleDoesNotExistError(message string) *RuleDoesNotExistError {
	return &RuleDoesNotExistError{
		goaws.NewClientError(fmt.Errorf("rule does not exist: %s", message)),
	}
}

type RuleSetDoesNotExistError struct {
	*goaws.ClientErr
}

func NewRuleSetDoesNotExistError(message string) *RuleSetDoesNotExistError {
	return &RuleSetDoesNotExistError{
		goaws.NewClientError(fmt.Errorf("rule set does not exist: %s", message)),
	}
}

type AlreadyExistsError struct {
	*goaws.ClientErr
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		goaws.NewClientError(fmt.Errorf("already exists: %s", message)),
	}
}

// CannotDeleteError is returned when deleting the active rule set.
type CannotDeleteError struct {
	*goaws.ClientErr
}

func NewCannotDeleteError(message string) *CannotDeleteError {
	return &CannotDeleteError{
		goaws.NewClientError(fmt.Errorf("cannot delete: %s", message)),
	}
}

// InvalidActionTargetError is returned when a receipt rule action names an
// S3 bucket, SNS topic or Lambda function SES cannot use.
type InvalidActionTargetError struct {
	*goaws.ClientErr
}

func NewInvalidActionTargetError(message string) *InvalidActionTargetError {
	return &InvalidActionTargetError{
		goaws.NewClientError(fmt.Errorf("invalid action target: %s", message)),
	}
}

type LimitExceededError struct {
	*goaws.ClientErr
}

func NewLimitExceededError(message string) *LimitExceededError {
	return &LimitExceededError{
		goaws.NewClientError(fmt.Errorf("limit exceeded: %s", message)),
	}
}

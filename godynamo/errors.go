package godynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-ses/goaws"
)

type TableNotFoundError struct {
	*goaws.ClientErr
}

func NewTableNotFoundError(tableName string) *TableNotFoundError {
	return &TableNotFoundError{goaws.NewClientError(fmt.Errorf("table not found: %s", tableName))}
}

type ConditionCheckFailedError struct {
	*goaws.ClientErr
}

func NewConditionCheckFailedError(msg string) *ConditionCheckFailedError {
	return &ConditionCheckFailedError{goaws.NewClientError(fmt.Errorf("condition check failed: %s", msg))}
}

type RateLimitExceededError struct {
	*goaws.RetryableClientError
}

func NewRateLimitExceededError() *RateLimitExceededError {
	return &RateLimitExceededError{goaws.NewRetryableClientError(fmt.Errorf("rate limit exceeded"))}
}

type ResourceInUseError struct {
	*goaws.RetryableClientError
}

func NewResourceInUseError(resource string) *ResourceInUseError {
	return &ResourceInUseError{goaws.NewRetryableClientError(fmt.Errorf("resource in use: %s", resource))}
}

type MaxRetriesExceededError struct {
	*goaws.RetryableInternalError
}

func NewMaxRetriesExceededError(unprocessed int) *MaxRetriesExceededError {
	return &MaxRetriesExceededError{goaws.NewRetryableInternalError(fmt.Errorf("max retries exceeded with %d unprocessed items", unprocessed))}
}

type InvalidAddressError struct {
	*goaws.ClientErr
}

func NewInvalidAddressError() *InvalidAddressError {
	return &InvalidAddressError{goaws.NewClientError(errors.New("empty address"))}
}

// handleErr maps DynamoDB exceptions to typed errors and classifies the
// rest.
func handleErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		provisionedThroughputExceeded *types.ProvisionedThroughputExceededException
		requestLimitExceeded          *types.RequestLimitExceeded
		resourceNotFound              *types.ResourceNotFoundException
		resourceInUse                 *types.ResourceInUseException
		conditionalCheckFailed        *types.ConditionalCheckFailedException
	)
	switch {
	case errors.As(err, &provisionedThroughputExceeded), errors.As(err, &requestLimitExceeded):
		return NewRateLimitExceededError()
	case errors.As(err, &resourceNotFound):
		return NewTableNotFoundError(resourceNotFound.ErrorMessage())
	case errors.As(err, &resourceInUse):
		return NewResourceInUseError(resourceInUse.ErrorMessage())
	case errors.As(err, &conditionalCheckFailed):
		return NewConditionCheckFailedError(conditionalCheckFailed.ErrorMessage())
	default:
		return goaws.ClassifyAPIError(op, err)
	}
}

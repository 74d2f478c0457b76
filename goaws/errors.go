package goaws

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/smithy-go"
)

// AwsError is the error every service package returns. Retryable errors
// may succeed if the same call is made again later; client errors are
// caused by the request and will not.
//
// Service packages embed one of the concrete types below in their own
// typed errors: a rejected or malformed message, an unknown queue, secret
// or table is a ClientErr; throttling is a RetryableClientError; a 5xx or
// a batch that kept coming back unprocessed is a RetryableInternalError;
// anything unrecognized is an InternalError.
type AwsError interface {
	Error() string
	Retryable() bool
	ClientError() bool
}

// cause keeps the message of the wrapped error and the error itself, so
// errors.As still reaches the SDK error.
type cause struct {
	msg string
	err error
}

func newCause(err error) cause {
	return cause{msg: err.Error(), err: err}
}

func (c cause) Error() string {
	return c.msg
}

func (c cause) Unwrap() error {
	return c.err
}

type InternalError struct {
	cause
}

func (e *InternalError) Retryable() bool {
	return false
}

func (e *InternalError) ClientError() bool {
	return false
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		return nil
	}
	return &InternalError{newCause(err)}
}

type ClientErr struct {
	cause
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{newCause(err)}
}

type RetryableInternalError struct {
	cause
}

func (e *RetryableInternalError) Retryable() bool {
	return true
}

func (e *RetryableInternalError) ClientError() bool {
	return false
}

func NewRetryableInternalError(err error) *RetryableInternalError {
	if err == nil {
		return nil
	}
	return &RetryableInternalError{newCause(err)}
}

type RetryableClientError struct {
	cause
}

func (e *RetryableClientError) Retryable() bool {
	return true
}

func (e *RetryableClientError) ClientError() bool {
	return true
}

func NewRetryableClientError(err error) *RetryableClientError {
	if err == nil {
		return nil
	}
	return &RetryableClientError{newCause(err)}
}

// IsRetryable reports whether err, or an error it wraps, is a retryable
// AwsError.
func IsRetryable(err error) bool {
	var awsErr AwsError
	return errors.As(err, &awsErr) && awsErr.Retryable()
}

// IsPermanentClientError reports whether err is a client error that will
// fail the same way if retried.
func IsPermanentClientError(err error) bool {
	var awsErr AwsError
	return errors.As(err, &awsErr) && awsErr.ClientError() && !awsErr.Retryable()
}

// ClassifyAPIError converts an SDK v2 operation error into an AwsError.
// Throttling and 429 responses are retryable client errors, 5xx and server
// faults are retryable internal errors, other 4xx and client faults are
// client errors. Anything else is an InternalError. The message is prefixed
// with op.
func ClassifyAPIError(op string, err error) AwsError {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("%s: %w", op, err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && isThrottleCode(apiErr.ErrorCode()) {
		return NewRetryableClientError(wrapped)
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.ResponseError != nil && respErr.Response != nil {
		if e := classifyStatus(respErr.HTTPStatusCode(), wrapped); e != nil {
			return e
		}
	}

	if apiErr != nil {
		switch apiErr.ErrorFault() {
		case smithy.FaultClient:
			return NewClientError(wrapped)
		case smithy.FaultServer:
			return NewRetryableInternalError(wrapped)
		}
	}

	return NewInternalError(wrapped)
}

// ClassifyRequestError is ClassifyAPIError for SDK v1 errors.
func ClassifyRequestError(op string, err error) AwsError {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("%s: %w", op, err)

	var aerr awserr.Error
	if errors.As(err, &aerr) && isThrottleCode(aerr.Code()) {
		return NewRetryableClientError(wrapped)
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		if e := classifyStatus(reqErr.StatusCode(), wrapped); e != nil {
			return e
		}
	}

	return NewInternalError(wrapped)
}

func classifyStatus(status int, err error) AwsError {
	switch {
	case status == http.StatusTooManyRequests:
		return NewRetryableClientError(err)
	case status >= http.StatusInternalServerError:
		return NewRetryableInternalError(err)
	case status >= http.StatusBadRequest:
		return NewClientError(err)
	default:
		return nil
	}
}

func isThrottleCode(code string) bool {
	_, ok := retry.DefaultThrottleErrorCodes[code]
	return ok
}

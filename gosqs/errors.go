package gosqs

import (
	"errors"
	"fmt"

	"github.com/ggarcia209/go-ses/goaws"
)

type EmptyQueueUrlInRequestError struct {
	*goaws.ClientErr
}

func NewEmptyQueueUrlInRequestError() *EmptyQueueUrlInRequestError {
	return &EmptyQueueUrlInRequestError{
		goaws.NewClientError(errors.New("empty queue url in request")),
	}
}

type EmptyQueueUrlInResponseError struct {
	*goaws.InternalError
}

func NewEmptyQueueUrlInResponseError() *EmptyQueueUrlInResponseError {
	return &EmptyQueueUrlInResponseError{
		goaws.NewInternalError(errors.New("empty queue url in response")),
	}
}

type InvalidReceiptHandlesError struct {
	*goaws.ClientErr
}

func NewInvalidReceiptHandlesError(messageIds, receiptHandles int) *InvalidReceiptHandlesError {
	return &InvalidReceiptHandlesError{
		goaws.NewClientError(fmt.Errorf("must be equal number of message IDs (%d) and receipt handles (%d)", messageIds, receiptHandles)),
	}
}

type NoMessageIDsInBatchRequestError struct {
	*goaws.ClientErr
}

func NewNoMessageIDsInBatchRequestError() *NoMessageIDsInBatchRequestError {
	return &NoMessageIDsInBatchRequestError{
		goaws.NewClientError(errors.New("no message IDs in request")),
	}
}

type MaxMessagesInBatchRequestError struct {
	*goaws.ClientErr
}

func NewMaxMessagesExceededError(msgs int) *MaxMessagesInBatchRequestError {
	return &MaxMessagesInBatchRequestError{
		goaws.NewClientError(fmt.Errorf("max %d messages per request (%d)", maxBatchEntries, msgs)),
	}
}

type QueueNotFoundError struct {
	*goaws.ClientErr
}

func NewQueueNotFoundError(name string) *QueueNotFoundError {
	return &QueueNotFoundError{
		goaws.NewClientError(fmt.Errorf("queue '%s' does not exist", name)),
	}
}

type InvalidAddressError struct {
	*goaws.ClientErr
}

func NewInvalidAddressError(address string) *InvalidAddressError {
	return &InvalidAddressError{
		goaws.NewClientError(fmt.Errorf("invalid address '%s'", address)),
	}
}

type MissingQueueArnError struct {
	*goaws.InternalError
}

func NewMissingQueueArnError(url string) *MissingQueueArnError {
	return &MissingQueueArnError{
		goaws.NewInternalError(fmt.Errorf("no QueueArn attribute for '%s'", url)),
	}
}

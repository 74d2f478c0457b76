package gosqs

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/goses/events"
)

// Handler processes one SES notification. A nil return deletes the
// message; an error makes it visible again after the retry delay.
type Handler func(ctx context.Context, n *events.EmailNotification) error

// Feedback consumes SES notifications an SNS topic delivers to an SQS
// queue.
type Feedback struct {
	messages    MessagesLogic
	logger      *zap.Logger
	options     RecMsgOptions
	concurrency int
	retryDelay  time.Duration
	newBackOff  func() backoff.BackOff
}

type FeedbackOption func(*Feedback)

func WithLogger(logger *zap.Logger) FeedbackOption {
	return func(f *Feedback) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithConcurrency sets how many notifications of a batch are handled at
// once.
func WithConcurrency(n int) FeedbackOption {
	return func(f *Feedback) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// maxVisibilityTimeout is the longest SQS lets a message stay invisible.
const maxVisibilityTimeout = 12 * time.Hour

// WithRetryDelay sets how long a message the handler failed on stays
// invisible before it is received again, at most 12 hours.
func WithRetryDelay(d time.Duration) FeedbackOption {
	return func(f *Feedback) {
		if d >= 0 {
			f.retryDelay = min(d, maxVisibilityTimeout)
		}
	}
}

// WithReceiveOptions replaces RecMsgDefault. QueueURL is ignored.
func WithReceiveOptions(options RecMsgOptions) FeedbackOption {
	return func(f *Feedback) {
		f.options = options
	}
}

// WithBackOff sets the policy Poll waits by after a failed receive.
func WithBackOff(newBackOff func() backoff.BackOff) FeedbackOption {
	return func(f *Feedback) {
		if newBackOff != nil {
			f.newBackOff = newBackOff
		}
	}
}

func NewFeedback(messages MessagesLogic, opts ...FeedbackOption) *Feedback {
	f := &Feedback{
		messages:    messages,
		logger:      zap.NewNop(),
		options:     RecMsgDefault,
		concurrency: 4,
		retryDelay:  time.Minute,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 0
			return b
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Poll receives from queueURL until ctx is done, which is not an error.
// Receive failures are retried with backoff unless they are non-retryable
// client errors, such as a missing queue, which end the loop.
func (f *Feedback) Poll(ctx context.Context, queueURL string, handler Handler) error {
	b := backoff.WithContext(f.newBackOff(), ctx)

	for ctx.Err() == nil {
		n, err := f.PollOnce(ctx, queueURL, handler)
		if err == nil {
			b.Reset()
			if n > 0 {
				f.logger.Debug("feedback batch handled", zap.String("queueUrl", queueURL), zap.Int("handled", n))
			}
			continue
		}
		if ctx.Err() != nil {
			break
		}

		if goaws.IsPermanentClientError(err) {
			f.logger.Error("feedback polling stopped", zap.String("queueUrl", queueURL), zap.Error(err))
			return err
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			if ctx.Err() != nil {
				break
			}
			return err
		}
		f.logger.Warn("feedback poll failed",
			zap.String("queueUrl", queueURL),
			zap.Duration("retryIn", wait),
			zap.Error(err),
		)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
		case <-t.C:
		}
	}

	f.logger.Info("feedback polling done", zap.String("queueUrl", queueURL))
	return nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeHandled
	outcomeFailed
)

// PollOnce receives one batch from queueURL and returns how many
// notifications the handler accepted. Accepted messages are deleted and
// failed ones are released after the retry delay. Messages that do not
// decode are left alone so the queue's redrive policy can move them.
func (f *Feedback) PollOnce(ctx context.Context, queueURL string, handler Handler) (int, error) {
	options := f.options
	options.QueueURL = queueURL

	res, err := f.messages.ReceiveMessage(ctx, options)
	if err != nil {
		return 0, err
	}
	if len(res.Messages) == 0 {
		return 0, nil
	}

	outcomes := make([]outcome, len(res.Messages))
	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for i, msg := range res.Messages {
		g.Go(func() error {
			outcomes[i] = f.handle(ctx, msg, handler)
			return nil
		})
	}
	_ = g.Wait()

	var handled, failed BatchRequest
	handled.QueueURL, failed.QueueURL = queueURL, queueURL
	for i, msg := range res.Messages {
		switch outcomes[i] {
		case outcomeHandled:
			handled.MessageIDs = append(handled.MessageIDs, msg.MessageId)
			handled.ReceiptHandles = append(handled.ReceiptHandles, msg.ReceiptHandle)
		case outcomeFailed:
			failed.MessageIDs = append(failed.MessageIDs, msg.MessageId)
			failed.ReceiptHandles = append(failed.ReceiptHandles, msg.ReceiptHandle)
		}
	}

	// use a fresh context so a cancelled poll still settles its batch
	settleCtx := context.WithoutCancel(ctx)
	var errs []error
	for req := range chunks(handled) {
		out, err := f.messages.DeleteMessageBatch(settleCtx, req)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f.logFailedEntries("delete failed", out)
	}
	for req := range chunks(failed) {
		out, err := f.messages.ChangeMessageVisibilityBatch(settleCtx, ChangeVisibilityBatchRequest{
			BatchRequest:   req,
			TimeoutSeconds: int32(f.retryDelay / time.Second),
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f.logFailedEntries("release failed", out)
	}

	return len(handled.MessageIDs), errors.Join(errs...)
}

func (f *Feedback) handle(ctx context.Context, msg *Message, handler Handler) outcome {
	n, err := events.DecodeNotification([]byte(msg.Body))
	if err != nil {
		f.logger.Warn("undecodable feedback message",
			zap.String("messageId", msg.MessageId),
			zap.String("receiveCount", msg.Attributes["ApproximateReceiveCount"]),
			zap.Error(err),
		)
		return outcomeSkipped
	}

	if err := handler(ctx, n); err != nil {
		f.logger.Warn("feedback handler failed",
			zap.String("messageId", msg.MessageId),
			zap.String("type", n.Type()),
			zap.Error(err),
		)
		return outcomeFailed
	}
	return outcomeHandled
}

func (f *Feedback) logFailedEntries(msg string, out *BatchResponse) {
	for _, e := range out.Failed {
		f.logger.Warn(msg,
			zap.String("messageId", e.MessageID),
			zap.String("code", e.ErrorCode),
			zap.String("error", e.ErrorMessage),
		)
	}
}

// chunks splits a batch into requests SQS accepts.
func chunks(req BatchRequest) func(yield func(BatchRequest) bool) {
	return func(yield func(BatchRequest) bool) {
		ids := slices.Collect(slices.Chunk(req.MessageIDs, maxBatchEntries))
		handles := slices.Collect(slices.Chunk(req.ReceiptHandles, maxBatchEntries))
		for i := range ids {
			if !yield(BatchRequest{QueueURL: req.QueueURL, MessageIDs: ids[i], ReceiptHandles: handles[i]}) {
				return
			}
		}
	}
}

package godynamo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/goaws"
	"github.com/ggarcia209/go-ses/goses/events"
)

// BatchWriteItem accepts at most this many requests.
const maxBatchWrite = 25

// StoreLogic records SES bounce and complaint feedback per recipient and
// answers whether an address should still be mailed.
//
//go:generate mockgen -destination=../mocks/godynamomock/store.go -package=godynamomock . StoreLogic
type StoreLogic interface {
	RecordNotification(ctx context.Context, n *events.EmailNotification) ([]*FeedbackRecord, error)
	PutRecord(ctx context.Context, rec *FeedbackRecord) error
	IsSuppressed(ctx context.Context, address string) (bool, error)
	ListFeedback(ctx context.Context, address string, since time.Time) ([]*FeedbackRecord, error)
	DeleteFeedback(ctx context.Context, address string) (int, error)
}

// DynamoDBStoreClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./store_client_api_test.go -package=godynamo . DynamoDBStoreClientAPI
type DynamoDBStoreClientAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type Store struct {
	svc           DynamoDBStoreClientAPI
	table         *Table
	logger        *zap.Logger
	fc            *FailConfig
	softBounceTTL time.Duration
	now           func() time.Time
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithFailConfig(fc *FailConfig) Option {
	return func(s *Store) {
		if fc != nil {
			s.fc = fc
		}
	}
}

// WithSoftBounceTTL sets how long soft bounces are kept. Zero keeps them
// until deleted. Hard bounces and complaints never expire.
func WithSoftBounceTTL(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.softBounceTTL = d
		}
	}
}

func newStore(svc DynamoDBStoreClientAPI, tableName string, opts ...Option) *Store {
	s := &Store{
		svc:           svc,
		table:         FeedbackTable(tableName),
		logger:        zap.NewNop(),
		fc:            DefaultFailConfig,
		softBounceTTL: 14 * 24 * time.Hour,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordNotification stores one record per bounced or complained
// recipient and returns them. Other notification types store nothing.
func (s *Store) RecordNotification(ctx context.Context, n *events.EmailNotification) ([]*FeedbackRecord, error) {
	if n == nil {
		return nil, events.NewInvalidNotificationError("nil notification")
	}

	recs := s.records(n)
	if len(recs) == 0 {
		return recs, nil
	}

	reqs := make([]types.WriteRequest, 0, len(recs))
	for _, rec := range recs {
		item, err := attributevalue.MarshalMap(rec)
		if err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.MarshalMap: %w", err))
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
	}
	if err := s.batchWrite(ctx, reqs); err != nil {
		return nil, err
	}

	for _, rec := range recs {
		s.logger.Info("stored feedback",
			zap.String("email", rec.Address),
			zap.String("type", string(rec.Type)),
			zap.String("messageId", rec.MessageID),
		)
	}
	return recs, nil
}

// PutRecord stores rec, filling in the sort key, and the expiry of soft
// bounces, when they are unset.
func (s *Store) PutRecord(ctx context.Context, rec *FeedbackRecord) error {
	rec.Address = NormalizeAddress(rec.Address)
	if rec.Address == "" {
		return NewInvalidAddressError()
	}
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = s.now()
	}
	if rec.SortKey == "" {
		rec.SortKey = sortKey(rec.ReceivedAt, rec.FeedbackID)
	}
	if rec.ExpiresAt == 0 {
		rec.ExpiresAt = s.expiry(rec.Type, rec.ReceivedAt)
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return goaws.NewInternalError(fmt.Errorf("attributevalue.MarshalMap: %w", err))
	}
	if _, err := s.svc.PutItem(ctx, &dynamodb.PutItemInput{
		Item:      item,
		TableName: aws.String(s.table.TableName),
	}); err != nil {
		return handleErr("s.svc.PutItem", err)
	}
	return nil
}

// IsSuppressed reports whether address has a hard bounce or complaint on
// record.
func (s *Store) IsSuppressed(ctx context.Context, address string) (bool, error) {
	address = NormalizeAddress(address)
	if address == "" {
		return false, NewInvalidAddressError()
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(AttrAddress).Equal(expression.Value(address))).
		WithFilter(expression.Name(AttrType).In(
			expression.Value(FeedbackHardBounce),
			expression.Value(FeedbackComplaint),
		)).
		Build()
	if err != nil {
		return false, goaws.NewInternalError(fmt.Errorf("expression.Build: %w", err))
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.table.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Select:                    types.SelectCount,
	}
	// filters apply per page, so an empty page does not mean no match
	for {
		out, err := s.svc.Query(ctx, input)
		if err != nil {
			return false, handleErr("s.svc.Query", err)
		}
		if out.Count > 0 {
			return true, nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return false, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// ListFeedback returns the feedback recorded for address since the given
// time, oldest first. A zero since returns everything. Expired soft
// bounces the table has not yet removed are skipped.
func (s *Store) ListFeedback(ctx context.Context, address string, since time.Time) ([]*FeedbackRecord, error) {
	address = NormalizeAddress(address)
	if address == "" {
		return nil, NewInvalidAddressError()
	}

	keyCond := expression.Key(AttrAddress).Equal(expression.Value(address))
	if !since.IsZero() {
		keyCond = keyCond.And(expression.Key(AttrSortKey).GreaterThanEqual(expression.Value(sortKeyPrefix(since))))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("expression.Build: %w", err))
	}

	items, err := s.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, err
	}

	var recs []*FeedbackRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &recs); err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalListOfMaps: %w", err))
	}
	now := s.now().Unix()
	return slices.DeleteFunc(recs, func(r *FeedbackRecord) bool {
		return r.ExpiresAt > 0 && r.ExpiresAt <= now
	}), nil
}

// DeleteFeedback removes every record for address, lifting a suppression.
// It returns how many records were deleted.
func (s *Store) DeleteFeedback(ctx context.Context, address string) (int, error) {
	address = NormalizeAddress(address)
	if address == "" {
		return 0, NewInvalidAddressError()
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(AttrAddress).Equal(expression.Value(address))).
		WithProjection(expression.NamesList(expression.Name(AttrAddress), expression.Name(AttrSortKey))).
		Build()
	if err != nil {
		return 0, goaws.NewInternalError(fmt.Errorf("expression.Build: %w", err))
	}

	keys, err := s.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	reqs := make([]types.WriteRequest, 0, len(keys))
	for _, key := range keys {
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: key}})
	}
	if err := s.batchWrite(ctx, reqs); err != nil {
		return 0, err
	}

	s.logger.Info("deleted feedback", zap.String("email", address), zap.Int("records", len(keys)))
	return len(keys), nil
}

func (s *Store) query(ctx context.Context, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := s.svc.Query(ctx, input)
		if err != nil {
			return nil, handleErr("s.svc.Query", err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// batchWrite writes reqs in batches, retrying throttled calls and
// unprocessed items with exponential backoff.
func (s *Store) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	for chunk := range slices.Chunk(reqs, maxBatchWrite) {
		pending := map[string][]types.WriteRequest{s.table.TableName: chunk}
		r := s.fc.newRetries()
		for len(pending) > 0 {
			out, err := s.svc.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				err = handleErr("s.svc.BatchWriteItem", err)
				if !goaws.IsRetryable(err) {
					return err
				}
			} else {
				pending = out.UnprocessedItems
				if len(pending) == 0 {
					break
				}
			}

			if !r.wait(ctx) {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return NewMaxRetriesExceededError(len(pending[s.table.TableName]))
			}
		}
	}
	return nil
}

func (s *Store) records(n *events.EmailNotification) []*FeedbackRecord {
	var recs []*FeedbackRecord
	add := func(addr string, typ FeedbackType, subType, feedbackID, diagnostic, timestamp string) {
		addr = NormalizeAddress(addr)
		if addr == "" {
			return
		}
		if feedbackID == "" {
			feedbackID = n.Mail.MessageId
		}
		at, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			at = s.now()
		}
		recs = append(recs, &FeedbackRecord{
			Address:    addr,
			SortKey:    sortKey(at, feedbackID),
			Type:       typ,
			SubType:    subType,
			From:       n.Mail.Source,
			MessageID:  n.Mail.MessageId,
			FeedbackID: feedbackID,
			Diagnostic: diagnostic,
			ReceivedAt: at.UTC(),
			ExpiresAt:  s.expiry(typ, at),
		})
	}

	switch n.Type() {
	case events.TypeBounce:
		b := n.Bounce
		typ := FeedbackHardBounce
		if b.BounceType == events.BounceTypeTransient {
			typ = FeedbackSoftBounce
		}
		for _, r := range b.BouncedRecipients {
			add(r.EmailAddress, typ, b.BounceSubType, b.FeedbackId, r.DiagnosticCode, b.Timestamp)
		}
	case events.TypeComplaint:
		c := n.Complaint
		for _, r := range c.ComplainedRecipients {
			add(r.EmailAddress, FeedbackComplaint, c.ComplaintFeedbackType, c.FeedbackId, "", c.Timestamp)
		}
	}
	return recs
}

func (s *Store) expiry(typ FeedbackType, at time.Time) int64 {
	if typ != FeedbackSoftBounce || s.softBounceTTL == 0 {
		return 0
	}
	return at.Add(s.softBounceTTL).Unix()
}

package godynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TablesLogic defines common methods interacting with dynamo db tables
//
//go:generate mockgen -destination=../mocks/godynamomock/tables.go -package=godynamomock . TablesLogic
type TablesLogic interface {
	ListTables(ctx context.Context, params ListTableParams) ([]string, int, error)
	CreateTable(ctx context.Context, table *Table) error
	WaitForTable(ctx context.Context, tableName string, maxWait time.Duration) error
	EnableTTL(ctx context.Context, table *Table) error
	DeleteTable(ctx context.Context, tableName string) error
}

// DynamoDBTablesClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./tables_client_api_test.go -package=godynamo . DynamoDBTablesClientAPI
type DynamoDBTablesClientAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

type Tables struct {
	svc DynamoDBTablesClientAPI
}

func NewTables(svc DynamoDBTablesClientAPI) *Tables {
	return &Tables{svc: svc}
}

// ListTables lists the tables in the database.
func (t *Tables) ListTables(ctx context.Context, params ListTableParams) ([]string, int, error) {
	names := []string{}
	input := &dynamodb.ListTablesInput{
		ExclusiveStartTableName: params.StartTable,
		Limit:                   params.Limit,
	}

	for {
		result, err := t.svc.ListTables(ctx, input)
		if err != nil {
			return nil, 0, handleErr("t.svc.ListTables", err)
		}
		names = append(names, result.TableNames...)

		// a call returns at most 100 names
		input.ExclusiveStartTableName = result.LastEvaluatedTableName
		if result.LastEvaluatedTableName == nil {
			break
		}
	}
	return names, len(names), nil
}

// CreateTable creates a new table with the parameters passed to the Table struct.
// NOTE: CreateTable creates Table in * On-Demand * billing mode.
func (t *Tables) CreateTable(ctx context.Context, table *Table) error {
	input := &dynamodb.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{{
			AttributeName: aws.String(table.PrimaryKeyName),
			AttributeType: table.PrimaryKeyType,
		}},
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(table.PrimaryKeyName),
			KeyType:       types.KeyTypeHash,
		}},
		TableName: aws.String(table.TableName),
	}
	if table.SortKeyName != "" {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(table.SortKeyName),
			AttributeType: table.SortKeyType,
		})
		input.KeySchema = append(input.KeySchema, types.KeySchemaElement{
			AttributeName: aws.String(table.SortKeyName),
			KeyType:       types.KeyTypeRange,
		})
	}

	if _, err := t.svc.CreateTable(ctx, input); err != nil {
		return handleErr("t.svc.CreateTable", err)
	}
	return nil
}

// WaitForTable blocks until the table is ACTIVE or maxWait has passed.
func (t *Tables) WaitForTable(ctx context.Context, tableName string, maxWait time.Duration) error {
	w := dynamodb.NewTableExistsWaiter(t.svc)
	if err := w.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}, maxWait); err != nil {
		return handleErr("w.Wait", fmt.Errorf("table %s: %w", tableName, err))
	}
	return nil
}

// EnableTTL turns on expiry by table.TTLAttribute. The table must be ACTIVE.
func (t *Tables) EnableTTL(ctx context.Context, table *Table) error {
	if table.TTLAttribute == "" {
		return nil
	}
	if _, err := t.svc.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(table.TableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String(table.TTLAttribute),
			Enabled:       aws.Bool(true),
		},
	}); err != nil {
		return handleErr("t.svc.UpdateTimeToLive", err)
	}
	return nil
}

// DeleteTable deletes the selected table.
func (t *Tables) DeleteTable(ctx context.Context, tableName string) error {
	if _, err := t.svc.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(tableName),
	}); err != nil {
		return handleErr("t.svc.DeleteTable", err)
	}
	return nil
}

// Package godynamo stores SES bounce and complaint feedback in DynamoDB and
// answers suppression lookups. Records are partitioned by recipient address
// and sorted by arrival time.
package godynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/ggarcia209/go-ses/goaws"
)

type DynamoDB struct {
	Tables TablesLogic
	Store  StoreLogic
}

// NewDynamoDB returns a client for the feedback table named tableName.
func NewDynamoDB(config goaws.AwsConfig, tableName string, opts ...Option) *DynamoDB {
	svc := dynamodb.NewFromConfig(config.Config)
	return &DynamoDB{
		Tables: NewTables(svc),
		Store:  newStore(svc, tableName, opts...),
	}
}

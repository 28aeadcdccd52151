package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/shopspring/decimal"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Decimals are stored as strings so quantities and costs round-trip exactly.
func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func decimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// translateWriteError maps a failed attribute_not_exists(id) condition to
// interfaces.ErrDuplicateEntry.
func translateWriteError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.ErrorCode() {
	case "ConditionalCheckFailedException":
		return fmt.Errorf("%w: %s", interfaces.ErrDuplicateEntry, apiErr.ErrorMessage())
	case "TransactionCanceledException":
		if strings.Contains(apiErr.ErrorMessage(), "ConditionalCheckFailed") {
			return fmt.Errorf("%w: %s", interfaces.ErrDuplicateEntry, apiErr.ErrorMessage())
		}
	}
	return err
}

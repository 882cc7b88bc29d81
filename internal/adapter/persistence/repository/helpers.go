package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// updateBuilder returns the update expression, values and names for one
// UpdateItem call. now is the RFC3339 timestamp of the write.
type updateBuilder func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string)

// updateItem applies an update to an existing item and returns the new
// attributes. A missing item yields nil attributes and no error.
func updateItem(
	ctx context.Context,
	ddb *dynamodb.Client,
	table string,
	key map[string]types.AttributeValue,
	keyAttr string,
	build updateBuilder,
) (map[string]types.AttributeValue, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": keyAttr}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return entities.DateKey(*t)
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := entities.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// Money is stored as its exact decimal string.
func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

package repository

import (
	"context"
	"sort"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	OrderID            string `dynamodbav:"order_id"`
	PhotographerID     string `dynamodbav:"photographer_id,omitempty"`
	Amount             string `dynamodbav:"amount"`
	TravelFee          string `dynamodbav:"travel_fee"`
	Status             string `dynamodbav:"status"`
	PaidToPhotographer bool   `dynamodbav:"paid_to_photographer"`
	Method             string `dynamodbav:"method,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	return decodePayment(out.Item)
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		p, err := decodePayment(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PaymentDynamoRepository) SetPaidToPhotographer(ctx context.Context, id string, paid bool) (entities.Payment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #paid = :paid, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberBOOL{Value: paid},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#paid":       "paid_to_photographer",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PaymentDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Payment, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName, idKey(id), "id", build)
	if err != nil || len(attrs) == 0 {
		return entities.Payment{}, err
	}
	return decodePayment(attrs)
}

func decodePayment(av map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		PhotographerID:     p.PhotographerID,
		Amount:             p.Amount.String(),
		TravelFee:          p.TravelFee.String(),
		Status:             string(p.Status),
		PaidToPhotographer: p.PaidToPhotographer,
		Method:             p.Method,
		Notes:              p.Notes,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		PhotographerID:     it.PhotographerID,
		Amount:             parseMoney(it.Amount),
		TravelFee:          parseMoney(it.TravelFee),
		Status:             entities.PaymentStatus(it.Status),
		PaidToPhotographer: it.PaidToPhotographer,
		Method:             it.Method,
		Notes:              it.Notes,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

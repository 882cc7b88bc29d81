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
	defaultOrdersTableName = "orders"
	ordersPropertyIDIndex  = "property_id-index"
)

type travelFeeItem struct {
	PhotographerID string `dynamodbav:"photographer_id"`
	Fee            string `dynamodbav:"fee"`
}

type orderItem struct {
	ID            string                 `dynamodbav:"id"`
	PropertyID    string                 `dynamodbav:"property_id"`
	CustomerID    string                 `dynamodbav:"customer_id,omitempty"`
	Services      []scheduledServiceItem `dynamodbav:"services"`
	ServicesTotal string                 `dynamodbav:"services_total"`
	TravelFees    []travelFeeItem        `dynamodbav:"travel_fees"`
	TravelTotal   string                 `dynamodbav:"travel_total"`
	TotalAmount   string                 `dynamodbav:"total_amount"`
	Status        string                 `dynamodbav:"status"`
	CreatedAt     string                 `dynamodbav:"created_at"`
	DueDate       string                 `dynamodbav:"due_date,omitempty"`
}

// OrderDynamoRepository persists Order snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: property_id-index (PK: property_id)
//
// The services snapshot is stored inline; later edits to the scheduled
// services never reach a stored order.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Item)
}

func (r *OrderDynamoRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPropertyIDIndex),
		KeyConditionExpression: aws.String("property_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: propertyID},
		},
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := decodeOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName, idKey(id), "id", func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
	if err != nil || len(attrs) == 0 {
		return entities.Order{}, err
	}
	return decodeOrder(attrs)
}

func decodeOrder(av map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	services := make([]scheduledServiceItem, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, toScheduledServiceItem(s))
	}
	fees := make([]travelFeeItem, 0, len(o.TravelFees))
	for _, f := range o.TravelFees {
		fees = append(fees, travelFeeItem{PhotographerID: f.PhotographerID, Fee: f.Fee.String()})
	}
	return orderItem{
		ID:            o.ID,
		PropertyID:    o.PropertyID,
		CustomerID:    o.CustomerID,
		Services:      services,
		ServicesTotal: o.ServicesTotal.String(),
		TravelFees:    fees,
		TravelTotal:   o.TravelTotal.String(),
		TotalAmount:   o.TotalAmount.String(),
		Status:        string(o.Status),
		CreatedAt:     formatTime(o.CreatedAt),
		DueDate:       formatDate(o.DueDate),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	services := make([]entities.ScheduledService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, fromScheduledServiceItem(s))
	}
	fees := make([]entities.TravelFee, 0, len(it.TravelFees))
	for _, f := range it.TravelFees {
		fees = append(fees, entities.TravelFee{PhotographerID: f.PhotographerID, Fee: parseMoney(f.Fee)})
	}
	return entities.Order{
		ID:            it.ID,
		PropertyID:    it.PropertyID,
		CustomerID:    it.CustomerID,
		Services:      services,
		ServicesTotal: parseMoney(it.ServicesTotal),
		TravelFees:    fees,
		TravelTotal:   parseMoney(it.TravelTotal),
		TotalAmount:   parseMoney(it.TotalAmount),
		Status:        entities.OrderStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		DueDate:       parseDatePtr(it.DueDate),
	}
}

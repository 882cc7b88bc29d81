package repository

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultScheduledServicesTableName = "scheduled_services"
	scheduledServicesPhotographerIdx  = "photographer_id-index"
)

type scheduleChangeItem struct {
	Action            string `dynamodbav:"action"`
	OldPhotographerID string `dynamodbav:"old_photographer_id,omitempty"`
	NewPhotographerID string `dynamodbav:"new_photographer_id,omitempty"`
	OldDate           string `dynamodbav:"old_date,omitempty"`
	OldTime           string `dynamodbav:"old_time,omitempty"`
	NewDate           string `dynamodbav:"new_date,omitempty"`
	NewTime           string `dynamodbav:"new_time,omitempty"`
	Reason            string `dynamodbav:"reason"`
	ChangedAt         string `dynamodbav:"changed_at"`
}

// photographer_id is omitted when empty so the GSI stays sparse.
type scheduledServiceItem struct {
	PropertyID     string               `dynamodbav:"property_id"`
	ServiceID      string               `dynamodbav:"service_id"`
	PhotographerID string               `dynamodbav:"photographer_id,omitempty"`
	ScheduledDate  string               `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime  string               `dynamodbav:"scheduled_time,omitempty"`
	AddonIDs       []string             `dynamodbav:"addon_ids"`
	Status         string               `dynamodbav:"status"`
	Notes          string               `dynamodbav:"notes,omitempty"`
	History        []scheduleChangeItem `dynamodbav:"history,omitempty"`
	CreatedAt      string               `dynamodbav:"created_at"`
	UpdatedAt      string               `dynamodbav:"updated_at"`
}

// ScheduledServiceDynamoRepository persists ScheduledService entities in
// DynamoDB.
//
// Table requirements:
//   - PK: property_id (string), SK: service_id (string)
//   - GSI: photographer_id-index (PK: photographer_id)
type ScheduledServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduledServiceRepository = (*ScheduledServiceDynamoRepository)(nil)

func NewScheduledServiceDynamoRepository(ddb *dynamodb.Client) *ScheduledServiceDynamoRepository {
	return &ScheduledServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SCHEDULED_SERVICES_TABLE", defaultScheduledServicesTableName),
	}
}

func serviceKey(propertyID, serviceID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"property_id": &types.AttributeValueMemberS{Value: propertyID},
		"service_id":  &types.AttributeValueMemberS{Value: serviceID},
	}
}

func (r *ScheduledServiceDynamoRepository) Get(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            serviceKey(propertyID, serviceID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScheduledService{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScheduledService{}, nil
	}
	var it scheduledServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScheduledService{}, err
	}
	return fromScheduledServiceItem(it), nil
}

func (r *ScheduledServiceDynamoRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.ScheduledService, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("property_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: propertyID},
		},
		ConsistentRead: aws.Bool(true),
	})
}

func (r *ScheduledServiceDynamoRepository) ListByPhotographerID(ctx context.Context, photographerID string) ([]entities.ScheduledService, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(scheduledServicesPhotographerIdx),
		KeyConditionExpression: aws.String("photographer_id = :ph"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ph": &types.AttributeValueMemberS{Value: photographerID},
		},
	})
}

func (r *ScheduledServiceDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.ScheduledService, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	items := make([]entities.ScheduledService, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it scheduledServiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromScheduledServiceItem(it))
		}
	}
	return items, nil
}

// Create stores a new service line; an existing (property, service) pair
// yields interfaces.ErrAlreadyExists.
func (r *ScheduledServiceDynamoRepository) Create(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
	if err := r.put(ctx, s, "attribute_not_exists(#pk)"); err != nil {
		if isConditionFailed(err) {
			return entities.ScheduledService{}, interfaces.ErrAlreadyExists
		}
		return entities.ScheduledService{}, err
	}
	return s, nil
}

// Save replaces an existing service line. A missing item yields a zero value.
func (r *ScheduledServiceDynamoRepository) Save(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
	if err := r.put(ctx, s, "attribute_exists(#pk)"); err != nil {
		if isConditionFailed(err) {
			return entities.ScheduledService{}, nil
		}
		return entities.ScheduledService{}, err
	}
	return s, nil
}

func (r *ScheduledServiceDynamoRepository) put(ctx context.Context, s entities.ScheduledService, cond string) error {
	av, err := attributevalue.MarshalMap(toScheduledServiceItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#pk": "property_id",
		},
	})
	return err
}

func toScheduledServiceItem(s entities.ScheduledService) scheduledServiceItem {
	addons := s.AddonIDs
	if addons == nil {
		addons = []string{}
	}
	var history []scheduleChangeItem
	for _, h := range s.History {
		history = append(history, scheduleChangeItem{
			Action:            string(h.Action),
			OldPhotographerID: h.OldPhotographerID,
			NewPhotographerID: h.NewPhotographerID,
			OldDate:           formatDate(h.OldDate),
			OldTime:           h.OldTime,
			NewDate:           formatDate(h.NewDate),
			NewTime:           h.NewTime,
			Reason:            h.Reason,
			ChangedAt:         formatTime(h.ChangedAt),
		})
	}
	return scheduledServiceItem{
		PropertyID:     s.PropertyID,
		ServiceID:      s.ServiceID,
		PhotographerID: s.PhotographerID,
		ScheduledDate:  formatDate(s.ScheduledDate),
		ScheduledTime:  s.ScheduledTime,
		AddonIDs:       addons,
		Status:         string(s.Status),
		Notes:          s.Notes,
		History:        history,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
	}
}

func fromScheduledServiceItem(it scheduledServiceItem) entities.ScheduledService {
	addons := it.AddonIDs
	if addons == nil {
		addons = []string{}
	}
	var history []entities.ScheduleChange
	for _, h := range it.History {
		history = append(history, entities.ScheduleChange{
			Action:            entities.HistoryAction(h.Action),
			OldPhotographerID: h.OldPhotographerID,
			NewPhotographerID: h.NewPhotographerID,
			OldDate:           parseDatePtr(h.OldDate),
			OldTime:           h.OldTime,
			NewDate:           parseDatePtr(h.NewDate),
			NewTime:           h.NewTime,
			Reason:            h.Reason,
			ChangedAt:         parseTime(h.ChangedAt),
		})
	}
	return entities.ScheduledService{
		PropertyID:     it.PropertyID,
		ServiceID:      it.ServiceID,
		PhotographerID: it.PhotographerID,
		ScheduledDate:  parseDatePtr(it.ScheduledDate),
		ScheduledTime:  it.ScheduledTime,
		AddonIDs:       addons,
		Status:         entities.ScheduledServiceStatus(it.Status),
		Notes:          it.Notes,
		History:        history,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

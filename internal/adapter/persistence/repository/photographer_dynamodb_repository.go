package repository

import (
	"context"
	"sort"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPhotographersTableName = "photographers"

type photographerItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Specialties    []string `dynamodbav:"specialties,omitempty"`
	AvailableDates []string `dynamodbav:"available_dates,stringset,omitempty"`
	TravelFee      string   `dynamodbav:"travel_fee"`
	Rating         float64  `dynamodbav:"rating"`
	CompletedJobs  int      `dynamodbav:"completed_jobs"`
}

// PhotographerDynamoRepository persists the photographer directory in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// available_dates is a string set of YYYY-MM-DD values so single dates can be
// added or removed atomically with ADD / DELETE.
type PhotographerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPhotographerRepository = (*PhotographerDynamoRepository)(nil)

func NewPhotographerDynamoRepository(ddb *dynamodb.Client) *PhotographerDynamoRepository {
	return &PhotographerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PHOTOGRAPHERS_TABLE", defaultPhotographersTableName),
	}
}

func (r *PhotographerDynamoRepository) List(ctx context.Context) ([]entities.Photographer, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var out []entities.Photographer
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it photographerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromPhotographerItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PhotographerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Photographer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Photographer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Photographer{}, nil
	}
	return decodePhotographer(out.Item)
}

// CreateIfAbsent stores p unless a photographer with the same id exists. It
// reports whether the item was written.
func (r *PhotographerDynamoRepository) CreateIfAbsent(ctx context.Context, p entities.Photographer) (bool, error) {
	av, err := attributevalue.MarshalMap(toPhotographerItem(p))
	if err != nil {
		return false, err
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
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PhotographerDynamoRepository) AddAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error) {
	return r.changeDates(ctx, id, "ADD", date)
}

func (r *PhotographerDynamoRepository) RemoveAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error) {
	return r.changeDates(ctx, id, "DELETE", date)
}

func (r *PhotographerDynamoRepository) changeDates(ctx context.Context, id, op string, date time.Time) (entities.Photographer, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName, idKey(id), "id", func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := op + " #available_dates :dates"
		vals := map[string]types.AttributeValue{
			":dates": &types.AttributeValueMemberSS{Value: []string{entities.DateKey(date)}},
		}
		names := map[string]string{
			"#available_dates": "available_dates",
		}
		return expr, vals, names
	})
	if err != nil || len(attrs) == 0 {
		return entities.Photographer{}, err
	}
	return decodePhotographer(attrs)
}

func decodePhotographer(av map[string]types.AttributeValue) (entities.Photographer, error) {
	var it photographerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Photographer{}, err
	}
	return fromPhotographerItem(it), nil
}

func toPhotographerItem(p entities.Photographer) photographerItem {
	dates := make([]string, 0, len(p.AvailableDates))
	seen := make(map[string]struct{}, len(p.AvailableDates))
	for _, d := range p.AvailableDates {
		k := entities.DateKey(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		dates = append(dates, k)
	}
	if len(dates) == 0 {
		// DynamoDB has no empty string set.
		dates = nil
	}
	return photographerItem{
		ID:             p.ID,
		Name:           p.Name,
		Specialties:    p.Specialties,
		AvailableDates: dates,
		TravelFee:      p.TravelFee.String(),
		Rating:         p.Rating,
		CompletedJobs:  p.CompletedJobs,
	}
}

func fromPhotographerItem(it photographerItem) entities.Photographer {
	keys := append([]string(nil), it.AvailableDates...)
	sort.Strings(keys)
	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		if d := parseDatePtr(k); d != nil {
			dates = append(dates, *d)
		}
	}
	specialties := it.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return entities.Photographer{
		ID:             it.ID,
		Name:           it.Name,
		Specialties:    specialties,
		AvailableDates: dates,
		TravelFee:      parseMoney(it.TravelFee),
		Rating:         it.Rating,
		CompletedJobs:  it.CompletedJobs,
	}
}

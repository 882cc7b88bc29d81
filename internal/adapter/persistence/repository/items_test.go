package repository

import (
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entities.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestPhotographerItem_DatesAsStringSet(t *testing.T) {
	p := entities.Photographer{
		ID:             "p1",
		Name:           "Ana",
		Specialties:    []string{"Photography"},
		AvailableDates: []time.Time{date(t, "2026-11-03"), date(t, "2026-11-02"), date(t, "2026-11-03")},
		TravelFee:      decimal.RequireFromString("35.10"),
	}

	av, err := attributevalue.MarshalMap(toPhotographerItem(p))
	require.NoError(t, err)

	ss, ok := av["available_dates"].(*types.AttributeValueMemberSS)
	require.True(t, ok, "available_dates must be a string set")
	assert.ElementsMatch(t, []string{"2026-11-02", "2026-11-03"}, ss.Value)

	got, err := decodePhotographer(av)
	require.NoError(t, err)
	require.Len(t, got.AvailableDates, 2)
	assert.Equal(t, "2026-11-02", entities.DateKey(got.AvailableDates[0]))
	assert.True(t, got.TravelFee.Equal(p.TravelFee))
}

func TestPhotographerItem_NoDates(t *testing.T) {
	av, err := attributevalue.MarshalMap(toPhotographerItem(entities.Photographer{ID: "p2", TravelFee: decimal.Zero}))
	require.NoError(t, err)
	_, present := av["available_dates"]
	assert.False(t, present, "empty sets cannot be stored")

	av, err = attributevalue.MarshalMap(toPhotographerItem(entities.Photographer{ID: "p3", AvailableDates: []time.Time{}}))
	require.NoError(t, err)
	_, present = av["available_dates"]
	assert.False(t, present)

	got, err := decodePhotographer(av)
	require.NoError(t, err)
	assert.Empty(t, got.AvailableDates)
}

func TestScheduledServiceItem_SparsePhotographerIndex(t *testing.T) {
	pending := entities.ScheduledService{PropertyID: "prop-1", ServiceID: "photo", Status: entities.ScheduledServiceStatusPending}

	av, err := attributevalue.MarshalMap(toScheduledServiceItem(pending))
	require.NoError(t, err)
	_, present := av["photographer_id"]
	assert.False(t, present)
	_, present = av["scheduled_date"]
	assert.False(t, present)
	assert.IsType(t, &types.AttributeValueMemberL{}, av["addon_ids"])
}

func TestOrderItem_KeepsSnapshotAndMoney(t *testing.T) {
	d := date(t, "2026-11-02")
	due := date(t, "2026-11-30")
	o := entities.Order{
		ID:         "o-1",
		PropertyID: "prop-1",
		Services: []entities.ScheduledService{{
			PropertyID: "prop-1", ServiceID: "photo", PhotographerID: "p1",
			ScheduledDate: &d, ScheduledTime: "9:00 AM", AddonIDs: []string{"rush"},
			Status: entities.ScheduledServiceStatusScheduled,
			History: []entities.ScheduleChange{{
				Action: entities.HistoryActionRescheduled, NewDate: &d, Reason: "rain",
				ChangedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
			}},
		}},
		ServicesTotal: decimal.RequireFromString("325.10"),
		TravelFees:    []entities.TravelFee{{PhotographerID: "p1", Fee: decimal.RequireFromString("0.20")}},
		TravelTotal:   decimal.RequireFromString("0.20"),
		TotalAmount:   decimal.RequireFromString("325.30"),
		Status:        entities.OrderStatusPending,
		CreatedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		DueDate:       &due,
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	require.NoError(t, err)
	got, err := decodeOrder(av)
	require.NoError(t, err)

	assert.Equal(t, "325.30", got.TotalAmount.StringFixed(2))
	assert.True(t, got.TotalAmount.Equal(got.ServicesTotal.Add(got.TravelTotal)))
	require.Len(t, got.Services, 1)
	assert.Equal(t, "2026-11-02", entities.DateKey(*got.Services[0].ScheduledDate))
	require.Len(t, got.Services[0].History, 1)
	assert.Equal(t, "rain", got.Services[0].History[0].Reason)
	assert.Equal(t, "2026-11-30", entities.DateKey(*got.DueDate))
	assert.True(t, got.CreatedAt.Equal(o.CreatedAt))
}

func TestMergeNames(t *testing.T) {
	assert.Equal(t, map[string]string{"#a": "a"}, mergeNames(nil, map[string]string{"#a": "a"}))
	assert.Equal(t, map[string]string{"#a": "a", "#b": "b"}, mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"}))
}

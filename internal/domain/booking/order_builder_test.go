package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder() *OrderBuilder {
	b := NewOrderBuilder(testCatalog(), NewDirectory(testPhotographers()))
	n := 0
	b.NewID = func() string {
		n++
		return fmt.Sprintf("order-%d", n)
	}
	b.Now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestOrderBuilder_Build(t *testing.T) {
	t.Run("totals services and one travel fee per photographer", func(t *testing.T) {
		services := []entities.ScheduledService{
			scheduled("prop-1", "photo", "p1", "twilight", "rush"), // 450
			scheduled("prop-1", "video", "p1"),                     // 400
			scheduled("prop-1", "drone", "p3"),                     // 150
		}

		res, err := testBuilder().Build("prop-1", services)
		require.NoError(t, err)
		assert.Nil(t, res.Warning)

		o := res.Order
		assert.Equal(t, "order-1", o.ID)
		assert.Equal(t, "prop-1", o.PropertyID)
		assert.Equal(t, entities.OrderStatusPending, o.Status)
		assert.True(t, o.ServicesTotal.Equal(money(1000)), "services total %s", o.ServicesTotal)
		require.Len(t, o.TravelFees, 2)
		assert.Equal(t, "p1", o.TravelFees[0].PhotographerID)
		assert.Equal(t, "p3", o.TravelFees[1].PhotographerID)
		assert.True(t, o.TravelTotal.Equal(money(130)))
		assert.True(t, o.TotalAmount.Equal(money(1130)))
		assert.True(t, o.TotalAmount.Equal(o.ServicesTotal.Add(o.TravelTotal)))
		assert.Len(t, o.Services, 3)
	})

	t.Run("excludes ineligible services with warning", func(t *testing.T) {
		pending := entities.ScheduledService{PropertyID: "prop-1", ServiceID: "drone", Status: entities.ScheduledServiceStatusPending}
		noTime := scheduled("prop-1", "video", "p1")
		noTime.ScheduledTime = ""
		completed := scheduled("prop-1", "video", "p1")
		completed.ServiceID = "video-2"
		completed.Status = entities.ScheduledServiceStatusCompleted
		otherProperty := scheduled("prop-2", "photo", "p2")

		res, err := testBuilder().Build("prop-1", []entities.ScheduledService{
			scheduled("prop-1", "photo", "p2"),
			pending, noTime, completed, otherProperty,
		})
		require.NoError(t, err)
		require.NotNil(t, res.Warning)
		assert.Equal(t, []string{"drone", "video", "video-2", "photo"}, res.Warning.ExcludedServiceIDs)
		require.Len(t, res.Order.Services, 1)
		assert.True(t, res.Order.TotalAmount.Equal(money(285)))
	})

	t.Run("no eligible services", func(t *testing.T) {
		pending := entities.ScheduledService{PropertyID: "prop-1", ServiceID: "photo", Status: entities.ScheduledServiceStatusPending}
		_, err := testBuilder().Build("prop-1", []entities.ScheduledService{pending})
		assert.ErrorIs(t, err, ErrNoEligibleServices)

		_, err = testBuilder().Build("prop-1", nil)
		assert.ErrorIs(t, err, ErrNoEligibleServices)
	})

	t.Run("invalid addon fails the whole order", func(t *testing.T) {
		_, err := testBuilder().Build("prop-1", []entities.ScheduledService{scheduled("prop-1", "video", "p1", "twilight")})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("snapshot is isolated from live services", func(t *testing.T) {
		live := []entities.ScheduledService{scheduled("prop-1", "photo", "p1", "rush")}
		res, err := testBuilder().Build("prop-1", live)
		require.NoError(t, err)

		live[0].AddonIDs[0] = "twilight"
		*live[0].ScheduledDate = day("2027-01-01")
		live[0].PhotographerID = "p2"

		snap := res.Order.Services[0]
		assert.Equal(t, []string{"rush"}, snap.AddonIDs)
		assert.Equal(t, day("2026-11-02"), *snap.ScheduledDate)
		assert.Equal(t, "p1", snap.PhotographerID)
	})

	t.Run("building twice yields two distinct orders with equal content", func(t *testing.T) {
		b := testBuilder()
		services := []entities.ScheduledService{scheduled("prop-1", "photo", "p1"), scheduled("prop-1", "video", "p2")}

		first, err := b.Build("prop-1", services)
		require.NoError(t, err)
		second, err := b.Build("prop-1", services)
		require.NoError(t, err)

		assert.NotEqual(t, first.Order.ID, second.Order.ID)
		assert.True(t, first.Order.TotalAmount.Equal(second.Order.TotalAmount))
		assert.Equal(t, first.Order.Services, second.Order.Services)
	})
}

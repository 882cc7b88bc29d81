package booking

import (
	"testing"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateTravelFees(t *testing.T) {
	dir := NewDirectory(testPhotographers())

	t.Run("one fee per photographer regardless of service count", func(t *testing.T) {
		for _, n := range []int{1, 3, 5} {
			var services []entities.ScheduledService
			for i := 0; i < n; i++ {
				services = append(services, scheduled("prop-1", "photo", "p1"))
			}
			fees, err := ConsolidateTravelFees(services, dir)
			require.NoError(t, err)
			require.Len(t, fees, 1)
			assert.Equal(t, "p1", fees[0].PhotographerID)
			assert.True(t, fees[0].Fee.Equal(money(50)))
		}
	})

	t.Run("first encounter order and unassigned skipped", func(t *testing.T) {
		unassigned := scheduled("prop-1", "drone", "")
		services := []entities.ScheduledService{
			scheduled("prop-1", "photo", "p2"),
			unassigned,
			scheduled("prop-1", "video", "p1"),
			scheduled("prop-1", "drone", "p2"),
		}
		fees, err := ConsolidateTravelFees(services, dir)
		require.NoError(t, err)
		require.Len(t, fees, 2)
		assert.Equal(t, "p2", fees[0].PhotographerID)
		assert.Equal(t, "p1", fees[1].PhotographerID)
		assert.True(t, TravelTotal(fees).Equal(money(85)))
	})

	t.Run("unknown photographer", func(t *testing.T) {
		_, err := ConsolidateTravelFees([]entities.ScheduledService{scheduled("prop-1", "photo", "ghost")}, dir)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty input", func(t *testing.T) {
		fees, err := ConsolidateTravelFees(nil, dir)
		require.NoError(t, err)
		assert.Empty(t, fees)
		assert.True(t, TravelTotal(fees).IsZero())
	})
}

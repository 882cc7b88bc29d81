package booking

import (
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFindEligiblePhotographers(t *testing.T) {
	ps := testPhotographers()

	ids := func(list []entities.Photographer) []string {
		out := []string{}
		for _, p := range list {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(FindEligiblePhotographers(ps, []string{"Photography"})))
	assert.Equal(t, []string{"p1", "p3"}, ids(FindEligiblePhotographers(ps, []string{"Photography", "Videography"})),
		"a photographer covering only one of the requested services must be excluded")
	assert.Equal(t, []string{"p3"}, ids(FindEligiblePhotographers(ps, []string{"Drone", "Videography"})))
	assert.Empty(t, FindEligiblePhotographers(ps, []string{"Matterport"}))
	assert.Len(t, FindEligiblePhotographers(ps, nil), 3)
}

func TestBookedDates(t *testing.T) {
	completed := scheduled("prop-1", "video", "p1")
	completed.ScheduledDate = ptr(day("2026-11-04"))
	completed.Status = entities.ScheduledServiceStatusCompleted

	pending := scheduled("prop-2", "photo", "p1")
	pending.Status = entities.ScheduledServiceStatusPending
	pending.ScheduledDate = ptr(day("2026-11-03"))

	withTime := scheduled("prop-3", "photo", "p1")
	withTime.ScheduledDate = ptr(time.Date(2026, 11, 2, 15, 30, 0, 0, time.UTC))

	services := []entities.ScheduledService{completed, pending, withTime, scheduled("prop-4", "photo", "p2")}

	got := BookedDates("p1", services)
	assert.Equal(t, []time.Time{day("2026-11-04"), day("2026-11-02")}, got)
}

func TestAvailableDatesFor(t *testing.T) {
	p := testPhotographers()[0]

	t.Run("booked dates removed and result sorted", func(t *testing.T) {
		got := AvailableDatesFor(p, []time.Time{time.Date(2026, 11, 3, 14, 0, 0, 0, time.UTC)})
		assert.Equal(t, []time.Time{day("2026-11-02"), day("2026-11-04")}, got)
	})

	t.Run("never returns booked or undeclared dates", func(t *testing.T) {
		booked := []time.Time{day("2026-11-02"), day("2026-12-25")}
		got := AvailableDatesFor(p, booked)
		for _, d := range got {
			assert.True(t, p.IsAvailableOn(d))
			for _, b := range booked {
				assert.NotEqual(t, entities.DateKey(b), entities.DateKey(d))
			}
		}
		assert.Len(t, got, 2)
	})

	t.Run("does not mutate declared dates", func(t *testing.T) {
		before := append([]time.Time(nil), p.AvailableDates...)
		_ = AvailableDatesFor(p, []time.Time{day("2026-11-02")})
		assert.Equal(t, before, p.AvailableDates)
	})

	t.Run("no declared dates", func(t *testing.T) {
		assert.Empty(t, AvailableDatesFor(testPhotographers()[2], nil))
	})
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	assert.Len(t, slots, 10)
	assert.Equal(t, "8:00 AM", slots[0])
	assert.Equal(t, "12:00 PM", slots[4])
	assert.Equal(t, "5:00 PM", slots[len(slots)-1])
	assert.True(t, IsTimeSlot("1:00 PM"))
	assert.False(t, IsTimeSlot("7:00 AM"))
}

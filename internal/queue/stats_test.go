package queue

import (
	"testing"

	"clinic-front-desk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2024-06-10"

func counter(t *testing.T, counters []StatCounter, key string) int {
	t.Helper()
	for _, c := range counters {
		if c.Key == key {
			return c.Count
		}
	}
	t.Fatalf("counter %q not present", key)
	return 0
}

func TestComputeStats_CategoriesOverlap(t *testing.T) {
	// A completed visit dated today belongs to both counters; the
	// categories are deliberately not mutually exclusive.
	records := []entity.Appointment{
		{ID: "a1", Date: today, Status: entity.AppointmentStatusCompleted},
	}

	counters := ComputeStats(records, today)
	assert.Equal(t, 1, counter(t, counters, StatToday))
	assert.Equal(t, 1, counter(t, counters, StatCompleted))
}

func TestComputeStats_Predicates(t *testing.T) {
	records := []entity.Appointment{
		{ID: "t1", Date: today, Status: entity.AppointmentStatusScheduled},
		{ID: "f1", Date: today, Status: entity.AppointmentStatusScheduled, FollowUp: true},
		{ID: "f2", Date: "2024-06-12", Status: entity.AppointmentStatusScheduled, Reason: "Follow-up review"},
		{ID: "u1", Date: "2024-06-11", Status: entity.AppointmentStatusScheduled},
		{ID: "u2", Date: "2024-06-11", Status: entity.AppointmentStatusCancelled},
		{ID: "o1", Date: "2024-06-01", Status: entity.AppointmentStatusNoShow},
		{ID: "o2", Date: "2024-06-01", Status: entity.AppointmentStatusCompleted},
	}

	counters := ComputeStats(records, today)

	assert.Equal(t, 2, counter(t, counters, StatToday))
	// f1 via the flag, f2 via the reason text (case-insensitive).
	assert.Equal(t, 2, counter(t, counters, StatFollowUps))
	assert.Equal(t, 1, counter(t, counters, StatCompleted))
	// u1 and f2; cancelled future visits are not upcoming.
	assert.Equal(t, 2, counter(t, counters, StatUpcoming))
	// o1 only: past completed visits are not "other".
	assert.Equal(t, 1, counter(t, counters, StatOther))
}

func TestComputeStats_OrderIsFixed(t *testing.T) {
	counters := ComputeStats(nil, today)
	require.Len(t, counters, 5)
	keys := make([]string, len(counters))
	for i, c := range counters {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{StatToday, StatFollowUps, StatCompleted, StatUpcoming, StatOther}, keys)
	for _, c := range counters {
		assert.Zero(t, c.Count)
	}
}

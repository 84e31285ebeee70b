package queue

import (
	"testing"

	"clinic-front-desk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apt(id, date, timeOfDay string) entity.Appointment {
	return entity.Appointment{
		ID:     id,
		Date:   date,
		Time:   timeOfDay,
		Status: entity.AppointmentStatusScheduled,
	}
}

func TestStore_LoadReplacesWorkingSet(t *testing.T) {
	store := NewStore()
	store.Load([]entity.Appointment{apt("a1", "2024-06-10", "09:00"), apt("a2", "2024-06-10", "10:00")})
	require.Equal(t, 2, store.Len())

	store.Load([]entity.Appointment{apt("a3", "2024-06-11", "")})
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get("a1")
	assert.False(t, ok, "records from the previous window must be gone")
	_, ok = store.Get("a3")
	assert.True(t, ok)
}

func TestStore_SnapshotKeepsLoadOrder(t *testing.T) {
	store := NewStore()
	store.Load([]entity.Appointment{apt("z", "2024-06-10", ""), apt("a", "2024-06-11", ""), apt("m", "2024-06-12", "")})

	first := store.Snapshot()
	second := store.Snapshot()
	require.Len(t, first, 3)
	assert.Equal(t, first, second, "snapshots of an unchanged store are identical")
	assert.Equal(t, "z", first[0].ID)
	assert.Equal(t, "a", first[1].ID)
	assert.Equal(t, "m", first[2].ID)
}

func TestStore_PatchUpdatesInPlace(t *testing.T) {
	store := NewStore()
	store.Load([]entity.Appointment{apt("a1", "2024-06-10", "09:00"), apt("a2", "2024-06-10", "10:00")})

	status := entity.AppointmentStatusCompleted
	ok := store.Patch("a1", Patch{Status: &status})
	require.True(t, ok)

	got, ok := store.Get("a1")
	require.True(t, ok)
	assert.Equal(t, entity.AppointmentStatusCompleted, got.Status)

	// The other axis and unrelated records are untouched.
	assert.Equal(t, entity.PaymentStatus(""), got.PaymentStatus)
	other, _ := store.Get("a2")
	assert.Equal(t, entity.AppointmentStatusScheduled, other.Status)
}

func TestStore_PatchStaleReferenceIsNoOp(t *testing.T) {
	store := NewStore()
	store.Load([]entity.Appointment{apt("a1", "2024-06-10", "")})

	status := entity.AppointmentStatusCancelled
	ok := store.Patch("gone", Patch{Status: &status})
	assert.False(t, ok, "patching a dropped record signals stale, not error")
	assert.Equal(t, 1, store.Len())

	got, _ := store.Get("a1")
	assert.Equal(t, entity.AppointmentStatusScheduled, got.Status)
}

func TestStore_PatchBillID(t *testing.T) {
	store := NewStore()
	store.Load([]entity.Appointment{apt("a1", "2024-06-10", "")})

	billID := "bill-77"
	payment := entity.PaymentStatusCompleted
	require.True(t, store.Patch("a1", Patch{PaymentStatus: &payment, BillID: &billID}))

	got, _ := store.Get("a1")
	assert.Equal(t, "bill-77", got.BillID)
	assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentStatus)
}

func TestStore_LoadDeduplicatesIDs(t *testing.T) {
	store := NewStore()
	first := apt("a1", "2024-06-10", "09:00")
	second := apt("a1", "2024-06-10", "11:00")
	store.Load([]entity.Appointment{first, second})

	assert.Equal(t, 1, store.Len())
	got, _ := store.Get("a1")
	assert.Equal(t, "11:00", got.Time, "last occurrence wins")
}

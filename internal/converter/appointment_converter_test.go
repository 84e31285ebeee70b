package converter

import (
	"testing"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "10 Jun 2024", DisplayDate("2024-06-10"))
	assert.Equal(t, "not-a-date", DisplayDate("not-a-date"))
	assert.Equal(t, "", DisplayDate(""))
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "09:00 AM", DisplayTime("09:00"))
	assert.Equal(t, "02:30 PM", DisplayTime("14:30"))
	assert.Equal(t, "", DisplayTime(""))
	assert.Equal(t, "soon", DisplayTime("soon"))
}

func TestAppointmentToResponse(t *testing.T) {
	apt := &entity.Appointment{
		ID:              "a1",
		PatientRecordID: "p1",
		PatientName:     "Asha Verma",
		Date:            "2024-06-10",
		Time:            "14:30",
		Reason:          "Follow up visit",
		Status:          entity.AppointmentStatusScheduled,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	resp := AppointmentToResponse(apt)
	require.NotNil(t, resp)

	assert.Equal(t, "a1", resp.ID)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "10 Jun 2024", resp.DateDisplay)
	assert.Equal(t, "02:30 PM", resp.TimeDisplay)
	assert.Equal(t, "scheduled", resp.Status)
	// The reason marks this a follow-up even without the explicit flag.
	assert.True(t, resp.FollowUp)

	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentToCard(t *testing.T) {
	card := AppointmentToCard(&entity.Appointment{
		ID: "a1", PatientName: "Asha Verma", Time: "09:00",
		DoctorName: "Dr. Rao", Status: entity.AppointmentStatusInProgress,
		PaymentStatus: entity.PaymentStatusPartial,
	})
	require.NotNil(t, card)

	assert.Equal(t, "09:00 AM", card.TimeDisplay)
	assert.Equal(t, "in-progress", card.Status)
	assert.Equal(t, "partial", card.PaymentStatus)
}

func TestStatsToResponse_PreservesOrder(t *testing.T) {
	resp := StatsToResponse([]queue.StatCounter{
		{Key: queue.StatToday, Label: "Today's Appointments", Count: 3},
		{Key: queue.StatCompleted, Label: "Completed", Count: 1},
	})

	require.Len(t, resp.Counters, 2)
	assert.Equal(t, queue.StatToday, resp.Counters[0].Key)
	assert.Equal(t, 3, resp.Counters[0].Count)
	assert.Equal(t, queue.StatCompleted, resp.Counters[1].Key)
}

func TestBillReceiptToResponse_NilSafe(t *testing.T) {
	assert.Nil(t, BillReceiptToResponse(nil))
}

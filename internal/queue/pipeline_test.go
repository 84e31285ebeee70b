package queue

import (
	"testing"

	"clinic-front-desk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []entity.Appointment {
	return []entity.Appointment{
		{
			ID: "a1", PatientName: "Asha Verma", UHID: "UH-1001", ContactPhone: "9998881111",
			Date: "2024-06-10", Time: "09:00", DoctorName: "Dr. Rao", Reason: "Fever",
			Tags: "walk-in", Status: entity.AppointmentStatusScheduled,
			PaymentStatus: entity.PaymentStatusPending,
		},
		{
			ID: "a2", PatientName: "Birju Patel", UHID: "UH-1002", ContactPhone: "7776662222",
			Date: "2024-06-10", Time: "08:00", DoctorName: "Dr. Rao", Reason: "Follow up visit",
			Tags: "priority", Status: entity.AppointmentStatusCompleted,
			PaymentStatus: entity.PaymentStatusCompleted,
		},
		{
			ID: "a3", PatientName: "Chitra Nair", UHID: "UH-1003", ContactPhone: "5554443333",
			Date: "2024-06-11", Time: "", DoctorName: "Dr. Menon", Reason: "Consultation",
			Status: entity.AppointmentStatusScheduled, PaymentStatus: entity.PaymentStatusPending,
		},
		{
			ID: "a4", PatientName: "Deepak Singh", UHID: "UH-1004", ContactPhone: "3332229998",
			Date: "2024-06-11", Time: "10:30", DoctorName: "Dr. Menon", Reason: "Vaccination",
			Status: entity.AppointmentStatusInProgress, PaymentStatus: entity.PaymentStatusPartial,
		},
	}
}

func ids(items []entity.Appointment) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRun_Deterministic(t *testing.T) {
	records := sampleRecords()
	q := Query{Search: "dr", Page: 1, PageSize: 2}

	first := Run(records, q)
	second := Run(records, q)

	assert.Equal(t, first, second, "same inputs must produce identical pages")
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Run(records, Query{Page: 1, PageSize: 10})
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(records))
}

func TestRun_SortOrder(t *testing.T) {
	page := Run(sampleRecords(), Query{Page: 1, PageSize: 10})

	// Newest date first; within 2024-06-11 the timeless record sorts before
	// 10:30, within 2024-06-10 08:00 sorts before 09:00.
	assert.Equal(t, []string{"a3", "a4", "a2", "a1"}, ids(page.Items))
}

func TestRun_SearchORSemantics(t *testing.T) {
	// "9998" appears only in a1's phone and a4's phone suffix.
	page := Run(sampleRecords(), Query{Search: "9998", Page: 1, PageSize: 10})
	assert.ElementsMatch(t, []string{"a1", "a4"}, ids(page.Items))

	// A query matched by no field excludes the record entirely.
	page = Run(sampleRecords(), Query{Search: "zzz-no-match", Page: 1, PageSize: 10})
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)

	// Case-insensitive match on doctor name.
	page = Run(sampleRecords(), Query{Search: "dr. menon", Page: 1, PageSize: 10})
	assert.ElementsMatch(t, []string{"a3", "a4"}, ids(page.Items))
}

func TestRun_FiltersAreANDCombined(t *testing.T) {
	page := Run(sampleRecords(), Query{
		Date:   SingleDate("2024-06-10"),
		Status: entity.AppointmentStatusCompleted,
		Page:   1, PageSize: 10,
	})
	assert.Equal(t, []string{"a2"}, ids(page.Items))

	// Same date filter plus a payment status nothing matches.
	page = Run(sampleRecords(), Query{
		Date:          SingleDate("2024-06-10"),
		PaymentStatus: entity.PaymentStatusFailed,
		Page:          1, PageSize: 10,
	})
	assert.Empty(t, page.Items)
}

func TestRun_DateRangeFilter(t *testing.T) {
	page := Run(sampleRecords(), Query{
		Date: ParseDateFilter("2024-06-11 to 2024-06-30"),
		Page: 1, PageSize: 10,
	})
	assert.ElementsMatch(t, []string{"a3", "a4"}, ids(page.Items))
}

func TestRun_VisitTypeTagsAndFollowUpFilters(t *testing.T) {
	page := Run(sampleRecords(), Query{VisitType: "follow", Page: 1, PageSize: 10})
	assert.Equal(t, []string{"a2"}, ids(page.Items))

	page = Run(sampleRecords(), Query{Tags: "PRIORITY", Page: 1, PageSize: 10})
	assert.Equal(t, []string{"a2"}, ids(page.Items))

	page = Run(sampleRecords(), Query{FollowUpOnly: true, Page: 1, PageSize: 10})
	assert.Equal(t, []string{"a2"}, ids(page.Items))
}

func TestRun_PaginationBounds(t *testing.T) {
	records := sampleRecords()

	page := Run(records, Query{Page: 1, PageSize: 3})
	require.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.PageCount)
	assert.Len(t, page.Items, 3)

	page = Run(records, Query{Page: 2, PageSize: 3})
	assert.Len(t, page.Items, 1)

	// Out-of-range page: empty slice, metadata unchanged.
	page = Run(records, Query{Page: 9, PageSize: 3})
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.PageCount)
}

func TestRun_EmptyResultStillHasOnePage(t *testing.T) {
	page := Run(nil, Query{Page: 1, PageSize: 10})
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.PageCount)
	assert.Empty(t, page.Items)
}

func TestRun_DefaultsPageAndSize(t *testing.T) {
	page := Run(sampleRecords(), Query{})
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Len(t, page.Items, 4)
}

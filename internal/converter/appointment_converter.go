package converter

import (
	"time"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/queue"
)

// AppointmentToResponse converts an Appointment entity to its full table row
func AppointmentToResponse(apt *entity.Appointment) *dto.AppointmentResponse {
	if apt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              apt.ID,
		PatientRecordID: apt.PatientRecordID,
		UHID:            apt.UHID,
		PatientName:     apt.PatientName,
		ContactPhone:    apt.ContactPhone,
		Date:            apt.Date,
		Time:            apt.Time,
		DateDisplay:     DisplayDate(apt.Date),
		TimeDisplay:     DisplayTime(apt.Time),
		DoctorName:      apt.DoctorName,
		ClinicName:      apt.ClinicName,
		Reason:          apt.Reason,
		Tags:            apt.Tags,
		FollowUp:        apt.IsFollowUpVisit(),
		Status:          string(apt.Status),
		PaymentStatus:   string(apt.PaymentStatus),
		BillID:          apt.BillID,
	}
}

// AppointmentsToResponses converts a slice of entities to table rows
func AppointmentsToResponses(apts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(apts))
	for i := range apts {
		responses[i] = *AppointmentToResponse(&apts[i])
	}
	return responses
}

// AppointmentToCard converts an entity to the compact card shape
func AppointmentToCard(apt *entity.Appointment) *dto.AppointmentCardResponse {
	if apt == nil {
		return nil
	}

	return &dto.AppointmentCardResponse{
		ID:            apt.ID,
		PatientName:   apt.PatientName,
		TimeDisplay:   DisplayTime(apt.Time),
		DoctorName:    apt.DoctorName,
		Status:        string(apt.Status),
		PaymentStatus: string(apt.PaymentStatus),
	}
}

// AppointmentsToCards converts a slice of entities to cards
func AppointmentsToCards(apts []entity.Appointment) []dto.AppointmentCardResponse {
	cards := make([]dto.AppointmentCardResponse, len(apts))
	for i := range apts {
		cards[i] = *AppointmentToCard(&apts[i])
	}
	return cards
}

// StatsToResponse converts the derived counters, preserving their order
func StatsToResponse(counters []queue.StatCounter) *dto.QueueStatsResponse {
	out := make([]dto.StatCounterResponse, len(counters))
	for i, c := range counters {
		out[i] = dto.StatCounterResponse{Key: c.Key, Label: c.Label, Count: c.Count}
	}
	return &dto.QueueStatsResponse{Counters: out}
}

// BillReceiptToResponse converts a remote bill acknowledgement
func BillReceiptToResponse(receipt *entity.BillReceipt) *dto.BillReceiptResponse {
	if receipt == nil {
		return nil
	}
	return &dto.BillReceiptResponse{
		BillID:        receipt.BillID,
		Amount:        receipt.Amount,
		PaymentStatus: string(receipt.PaymentStatus),
	}
}

// DisplayDate renders "YYYY-MM-DD" as "02 Jan 2006"; unparseable input is
// returned as-is rather than dropped.
func DisplayDate(isoDate string) string {
	t, err := time.Parse(queue.DateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02 Jan 2006")
}

// DisplayTime renders "HH:MM" as 12-hour "03:04 PM"; "" stays ""
func DisplayTime(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("03:04 PM")
}

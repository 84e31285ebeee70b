package dto

import "github.com/shopspring/decimal"

// Request DTOs

// ListAppointmentsRequest carries the queue view's filter state. Date is
// either "YYYY-MM-DD" or "start to end"; View selects the table or compact
// card rendering.
type ListAppointmentsRequest struct {
	Search        string `json:"search"`
	Date          string `json:"date"`
	VisitType     string `json:"visit_type"`
	Tags          string `json:"tags"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending completed partial failed cancelled"`
	Status        string `json:"status" validate:"omitempty,oneof=scheduled in-progress completed cancelled no-show"`
	FollowUp      bool   `json:"follow_up"`
	View          string `json:"view" validate:"omitempty,oneof=table cards"`
	Page          int    `json:"page" validate:"omitempty,min=1"`
	Limit         int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in-progress completed cancelled no-show"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed partial failed cancelled"`
}

type SelectRangeRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              string `json:"id"`
	PatientRecordID string `json:"patient_record_id"`
	UHID            string `json:"uhid"`
	PatientName     string `json:"patient_name"`
	ContactPhone    string `json:"contact_phone"`
	Date            string `json:"date"`
	Time            string `json:"time,omitempty"`
	DateDisplay     string `json:"date_display"`
	TimeDisplay     string `json:"time_display,omitempty"`
	DoctorName      string `json:"doctor_name"`
	ClinicName      string `json:"clinic_name"`
	Reason          string `json:"reason"`
	Tags            string `json:"tags,omitempty"`
	FollowUp        bool   `json:"follow_up"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	BillID          string `json:"bill_id,omitempty"`
}

// AppointmentCardResponse is the compact card rendering of one record
type AppointmentCardResponse struct {
	ID            string `json:"id"`
	PatientName   string `json:"patient_name"`
	TimeDisplay   string `json:"time_display,omitempty"`
	DoctorName    string `json:"doctor_name"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse     `json:"appointments,omitempty"`
	Cards        []AppointmentCardResponse `json:"cards,omitempty"`
}

type StatCounterResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type QueueStatsResponse struct {
	Counters []StatCounterResponse `json:"counters"`
}

type RangeSelectionResponse struct {
	Token string              `json:"token"`
	Scope string              `json:"scope"`
	Page  int                 `json:"page"`
	Total int                 `json:"total"`
	Stats *QueueStatsResponse `json:"stats"`
}

type BillingHandoffResponse struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
}

type BillReceiptResponse struct {
	BillID        string          `json:"bill_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
}

// TransitionResponse is returned by the status and payment endpoints.
// BillingHandoff is set only when the transition completed the visit;
// PaymentPath records which remote contract the payment write used.
type TransitionResponse struct {
	Appointment    *AppointmentResponse    `json:"appointment"`
	Stats          *QueueStatsResponse     `json:"stats"`
	BillingHandoff *BillingHandoffResponse `json:"billing_handoff,omitempty"`
	PaymentPath    string                  `json:"payment_path,omitempty"`
	Bill           *BillReceiptResponse    `json:"bill,omitempty"`
}

type ReminderLinkResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

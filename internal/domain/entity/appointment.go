package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the clinical-workflow state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
)

// IsValid checks the status against the closed set of workflow states
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

// PaymentStatus represents the billing state of an appointment or its bill
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsValid checks the payment status against the closed set of billing states
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusPartial,
		PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents one scheduled patient visit as fetched from the EMR.
// Date is a calendar date "YYYY-MM-DD" and Time a zero-padded 24-hour "HH:MM"
// ("" when the slot has no time); both compare correctly as plain strings,
// which is what the queue pipeline relies on.
type Appointment struct {
	ID              string            `json:"id"`
	PatientRecordID string            `json:"patientRecordId"`
	UHID            string            `json:"uhid"`
	PatientName     string            `json:"patientName"`
	ContactPhone    string            `json:"contactPhone"`
	Date            string            `json:"appointmentDate"`
	Time            string            `json:"appointmentTime,omitempty"`
	DoctorID        string            `json:"doctorId"`
	DoctorName      string            `json:"doctorName"`
	ClinicID        string            `json:"clinicId"`
	ClinicName      string            `json:"clinicName"`
	Reason          string            `json:"reasonForVisit"`
	Tags            string            `json:"tags"`
	FollowUp        bool              `json:"isFollowUp"`
	Status          AppointmentStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	BillID          string            `json:"billId,omitempty"`
}

// IsCompleted checks if the visit has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the visit has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsFollowUpVisit reports whether this is a follow-up, either via the
// explicit flag or a "follow" mention in the visit reason
func (a *Appointment) IsFollowUpVisit() bool {
	return a.FollowUp || strings.Contains(strings.ToLower(a.Reason), "follow")
}

// HasBill reports whether a bill already exists for this appointment
func (a *Appointment) HasBill() bool {
	return a.BillID != ""
}

// BillReceipt is the remote system's acknowledgement of a payment-status
// write. BillID may differ from what the appointment carried when the remote
// side created the bill as part of the write.
type BillReceipt struct {
	BillID        string          `json:"billId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

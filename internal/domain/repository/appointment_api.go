package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/queue"
)

// AppointmentAPI is the boundary to the remote record store that owns
// appointments, bills and patients. Every write here is the authority for a
// lifecycle transition; the in-memory window is only patched after one of
// these calls returns successfully.
type AppointmentAPI interface {
	// FetchAppointments loads the appointment set for a date scope. A zero
	// scope requests the remote default window.
	FetchAppointments(ctx context.Context, scope queue.DateSelection) ([]entity.Appointment, error)

	// UpdateStatus writes a new workflow status for one appointment.
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error

	// UpdateAppointmentPayment writes a payment status against the
	// appointment itself; the remote side locates or creates the bill.
	UpdateAppointmentPayment(ctx context.Context, id string, status entity.PaymentStatus) (*entity.BillReceipt, error)

	// UpdateBillPayment writes a payment status directly against an
	// existing bill.
	UpdateBillPayment(ctx context.Context, billID string, status entity.PaymentStatus) (*entity.BillReceipt, error)
}

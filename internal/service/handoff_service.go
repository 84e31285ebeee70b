package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/queue"

	"github.com/sirupsen/logrus"
)

// HandoffService owns the outbound side-effect surfaces of the queue: the
// billing-workflow navigation context emitted when a visit completes, and
// the WhatsApp deep link the front desk uses to ping a patient. It formats
// and dispatches context; it never talks to the EMR itself.
type HandoffService struct {
	log         *logrus.Logger
	countryCode string
}

// BillingHandoff is the navigation context handed to the billing workflow
// after a visit is completed.
type BillingHandoff struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
}

func NewHandoffService(log *logrus.Logger, countryCode string) *HandoffService {
	return &HandoffService{
		log:         log,
		countryCode: countryCode,
	}
}

// NotifyBilling dispatches the billing handoff for a completed visit. The
// transition has already committed remotely when this runs.
func (s *HandoffService) NotifyBilling(ctx context.Context, handoff BillingHandoff) {
	s.log.Infof("Billing handoff: patient=%s, appointment=%s", handoff.PatientID, handoff.AppointmentID)
}

// WhatsAppLink builds the wa.me deep link for an appointment reminder.
// Returns the normalized phone (digits only, country-code-prefixed), the
// pre-formatted message, and the link. Nothing is sent.
func (s *HandoffService) WhatsAppLink(apt entity.Appointment) (phone, message, link string) {
	phone = NormalizePhone(apt.ContactPhone, s.countryCode)

	when := formatReminderDate(apt.Date)
	if apt.Time != "" {
		when = apt.Time + " on " + when
	}
	message = fmt.Sprintf(
		"Hi %s, this is a reminder for your appointment with %s at %s, %s. Please arrive 10 minutes early.",
		apt.PatientName, apt.DoctorName, apt.ClinicName, when,
	)

	link = "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
	return phone, message, link
}

// NormalizePhone strips everything but digits and prefixes the country code
// when the number looks local (a leading zero or a bare 10-digit number).
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "0") {
		digits = countryCode + strings.TrimLeft(digits, "0")
	} else if len(digits) == 10 {
		digits = countryCode + digits
	}
	return digits
}

// formatReminderDate renders an ISO date for the message body, falling back
// to the raw value when it does not parse.
func formatReminderDate(isoDate string) string {
	t, err := time.Parse(queue.DateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02 Jan 2006")
}

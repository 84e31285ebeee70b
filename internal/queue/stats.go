package queue

import "clinic-front-desk/internal/domain/entity"

// Counter keys, in display order
const (
	StatToday     = "today"
	StatFollowUps = "follow-ups"
	StatCompleted = "completed"
	StatUpcoming  = "upcoming"
	StatOther     = "other"
)

// StatCounter is one named counter derived from the working set
type StatCounter struct {
	Key   string
	Label string
	Count int
}

// ComputeStats derives the fixed, ordered counter list from the record set.
// "today" is caller-supplied (DateLayout encoded) rather than read from the
// clock. Categories deliberately overlap: a completed visit dated today
// counts toward both "today" and "completed".
//
// Predicates:
//
//	today:      date == today
//	follow-ups: explicit flag or "follow" in the visit reason
//	completed:  status == completed
//	upcoming:   date > today and status not completed/cancelled
//	other:      date < today and status != completed
func ComputeStats(records []entity.Appointment, today string) []StatCounter {
	var nToday, nFollowUps, nCompleted, nUpcoming, nOther int

	for i := range records {
		rec := &records[i]
		if rec.Date == today {
			nToday++
		}
		if rec.IsFollowUpVisit() {
			nFollowUps++
		}
		if rec.IsCompleted() {
			nCompleted++
		}
		if rec.Date > today && !rec.IsCompleted() && !rec.IsCancelled() {
			nUpcoming++
		}
		if rec.Date < today && !rec.IsCompleted() {
			nOther++
		}
	}

	return []StatCounter{
		{Key: StatToday, Label: "Today's Appointments", Count: nToday},
		{Key: StatFollowUps, Label: "Follow-ups", Count: nFollowUps},
		{Key: StatCompleted, Label: "Completed", Count: nCompleted},
		{Key: StatUpcoming, Label: "Upcoming", Count: nUpcoming},
		{Key: StatOther, Label: "Other", Count: nOther},
	}
}

package queue

import (
	"sort"
	"strings"

	"clinic-front-desk/internal/domain/entity"
)

// DefaultPageSize is used when a query does not specify one
const DefaultPageSize = 10

// Query is the full filter state of the queue view. Zero-valued fields do
// not constrain; set fields are AND-combined, except Search which matches
// any of the searchable record fields.
type Query struct {
	Search        string
	Date          DateSelection
	VisitType     string
	Tags          string
	PaymentStatus entity.PaymentStatus
	Status        entity.AppointmentStatus
	FollowUpOnly  bool
	Page          int
	PageSize      int
}

// Page is one slice of the filtered set plus pagination metadata. Total is
// the count after filtering, before slicing; PageCount is at least 1 even
// for an empty result.
type Page struct {
	Items     []entity.Appointment
	Total     int
	Page      int
	PageSize  int
	PageCount int
}

// Run applies the search -> filter -> sort -> paginate stages to a record
// snapshot. It is pure: the input slice is never reordered or mutated, and
// the same inputs always produce the same page.
func Run(records []entity.Appointment, q Query) Page {
	filtered := make([]entity.Appointment, 0, len(records))
	for i := range records {
		if matchesSearch(&records[i], q.Search) && matchesFilters(&records[i], &q) {
			filtered = append(filtered, records[i])
		}
	}

	// Newest date first; within a date, earlier times first. Records with no
	// time carry "" which sorts before any zero-padded HH:MM.
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:     filtered[start:end],
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
	}
}

// matchesSearch is a case-insensitive substring test against every
// searchable field; an empty query matches all records.
func matchesSearch(rec *entity.Appointment, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, field := range []string{
		rec.PatientName,
		rec.UHID,
		rec.ContactPhone,
		rec.Reason,
		rec.DoctorName,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesFilters(rec *entity.Appointment, q *Query) bool {
	if !q.Date.Matches(rec.Date) {
		return false
	}
	if q.VisitType != "" && !containsFold(rec.Reason, q.VisitType) {
		return false
	}
	if q.Tags != "" && !containsFold(rec.Tags, q.Tags) {
		return false
	}
	if q.PaymentStatus != "" && rec.PaymentStatus != q.PaymentStatus {
		return false
	}
	if q.Status != "" && rec.Status != q.Status {
		return false
	}
	if q.FollowUpOnly && !rec.IsFollowUpVisit() {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

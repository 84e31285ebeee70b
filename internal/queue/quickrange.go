package queue

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date encoding used everywhere in the queue.
// Lexicographic order on this layout is chronological order.
const DateLayout = "2006-01-02"

// ErrUnknownRangeToken is returned for a quick-range token outside the
// supported set
var ErrUnknownRangeToken = errors.New("unknown quick range token")

// RangeToken is a symbolic shorthand for a date or date interval
type RangeToken string

const (
	RangeToday      RangeToken = "today"
	RangeYesterday  RangeToken = "yesterday"
	RangeTomorrow   RangeToken = "tomorrow"
	RangeUpcoming   RangeToken = "upcoming"
	RangeLast7Days  RangeToken = "last-7-days"
	RangeLast30Days RangeToken = "last-30-days"
)

// SelectionKind tags a DateSelection as empty, a single date or an
// inclusive range
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionSingle
	SelectionRange
)

// DateSelection is a resolved date scope: either one calendar date or an
// inclusive [Start, End] range. The zero value means "no date constraint".
type DateSelection struct {
	Kind  SelectionKind
	Date  string
	Start string
	End   string
}

// SingleDate builds a single-date selection
func SingleDate(date string) DateSelection {
	return DateSelection{Kind: SelectionSingle, Date: date}
}

// DateRange builds an inclusive range selection
func DateRange(start, end string) DateSelection {
	return DateSelection{Kind: SelectionRange, Start: start, End: end}
}

// IsZero reports whether the selection constrains nothing
func (d DateSelection) IsZero() bool {
	return d.Kind == SelectionNone
}

// Matches tests a record date against the selection. An empty selection
// matches everything.
func (d DateSelection) Matches(date string) bool {
	switch d.Kind {
	case SelectionSingle:
		return date == d.Date
	case SelectionRange:
		return date >= d.Start && date <= d.End
	}
	return true
}

// Encode renders the selection in the remote-facing filter encoding:
// "" for none, the date itself for a single day, "start to end" for a range.
func (d DateSelection) Encode() string {
	switch d.Kind {
	case SelectionSingle:
		return d.Date
	case SelectionRange:
		return fmt.Sprintf("%s to %s", d.Start, d.End)
	}
	return ""
}

// ParseDateFilter parses the wire encoding produced by Encode. A value
// containing " to " is treated as an inclusive range, anything else as a
// single date. Empty input yields the zero selection.
func ParseDateFilter(raw string) DateSelection {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DateSelection{}
	}
	if start, end, ok := strings.Cut(raw, " to "); ok {
		return DateRange(strings.TrimSpace(start), strings.TrimSpace(end))
	}
	return SingleDate(raw)
}

// ParseRangeToken normalizes user input to a RangeToken. "week" and "month"
// are accepted as aliases for the last-7/last-30 ranges.
func ParseRangeToken(raw string) (RangeToken, error) {
	switch RangeToken(strings.ToLower(strings.TrimSpace(raw))) {
	case RangeToday:
		return RangeToday, nil
	case RangeYesterday:
		return RangeYesterday, nil
	case RangeTomorrow:
		return RangeTomorrow, nil
	case RangeUpcoming:
		return RangeUpcoming, nil
	case RangeLast7Days, "week":
		return RangeLast7Days, nil
	case RangeLast30Days, "month":
		return RangeLast30Days, nil
	}
	return "", ErrUnknownRangeToken
}

// ResolveQuickRange maps a token to a concrete selection anchored on the
// caller-supplied "today":
//
//	today/yesterday/tomorrow -> that single date
//	upcoming                 -> [today+1, today+7]
//	last-7-days              -> [today-7, today]
//	last-30-days             -> [today-30, today]
func ResolveQuickRange(token RangeToken, today time.Time) (DateSelection, error) {
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(DateLayout)
	}

	switch token {
	case RangeToday:
		return SingleDate(day(0)), nil
	case RangeYesterday:
		return SingleDate(day(-1)), nil
	case RangeTomorrow:
		return SingleDate(day(1)), nil
	case RangeUpcoming:
		return DateRange(day(1), day(7)), nil
	case RangeLast7Days:
		return DateRange(day(-7), day(0)), nil
	case RangeLast30Days:
		return DateRange(day(-30), day(0)), nil
	}
	return DateSelection{}, ErrUnknownRangeToken
}

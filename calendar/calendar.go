// Package calendar holds the restaurant's fixed weekly operating pattern:
// which weekdays are closed and which discrete time slots exist per meal
// period. The values mirror the opening hours published on the site.
package calendar

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Period is a meal period with its own slot list.
type Period string

const (
	PeriodLunch  Period = "lunch"
	PeriodDinner Period = "dinner"
)

// Closed weekdays. The restaurant does not open on Sunday or Monday.
var closedWeekdays = map[time.Weekday]bool{
	time.Sunday: true,
	time.Monday: true,
}

var lunchSlots = []string{
	"12:00", "12:15", "12:30", "12:45",
	"13:00", "13:15", "13:30", "13:45",
}

var dinnerSlots = []string{
	"19:00", "19:15", "19:30", "19:45",
	"20:00", "20:15", "20:30", "20:45",
	"21:00", "21:15", "21:30",
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsClosed reports whether the restaurant is closed on the given day.
func IsClosed(day time.Time) bool {
	return closedWeekdays[day.Weekday()]
}

// Slots returns the ordered slot list for a meal period.
func Slots(p Period) []string {
	var src []string
	switch p {
	case PeriodLunch:
		src = lunchSlots
	case PeriodDinner:
		src = dinnerSlots
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsValidSlot reports whether t is a bookable time on an open day.
func IsValidSlot(t string) bool {
	_, ok := PeriodOf(t)
	return ok
}

// PeriodOf returns the meal period a slot belongs to.
func PeriodOf(t string) (Period, bool) {
	for _, s := range lunchSlots {
		if s == t {
			return PeriodLunch, true
		}
	}
	for _, s := range dinnerSlots {
		if s == t {
			return PeriodDinner, true
		}
	}
	return "", false
}

package services

import (
	"github.com/lexcellence/reservation-app/calendar"
	"github.com/lexcellence/reservation-app/models"
	"gorm.io/gorm"
)

// SlotAvailability is one bookable time with its remaining capacity.
type SlotAvailability struct {
	Time           string `json:"time"`
	Available      bool   `json:"available"`
	RemainingSeats int    `json:"remainingSeats"`
}

// DayAvailability answers "what can be booked on this date?".
type DayAvailability struct {
	Date     string
	IsClosed bool
	Lunch    []SlotAvailability
	Dinner   []SlotAvailability
}

type AvailabilityService struct {
	DB       *gorm.DB
	Capacity int
}

func NewAvailabilityService(db *gorm.DB, capacity int) *AvailabilityService {
	return &AvailabilityService{DB: db, Capacity: capacity}
}

// GetAvailability resolves the slot list for a date. Remaining seats are an
// aggregation of confirmed bookings against the capacity ceiling, so the
// answer is deterministic and consistent with what Submit will accept.
func (s *AvailabilityService) GetAvailability(date string) (*DayAvailability, error) {
	if date == "" {
		return nil, FieldErrors{"date": "this field is required"}
	}
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, FieldErrors{"date": "must be a valid date (YYYY-MM-DD)"}
	}

	if calendar.IsClosed(day) {
		return &DayAvailability{Date: date, IsClosed: true}, nil
	}

	booked, err := s.bookedSeats(date)
	if err != nil {
		return nil, err
	}

	out := &DayAvailability{Date: date}
	out.Lunch = s.periodSlots(calendar.PeriodLunch, booked)
	out.Dinner = s.periodSlots(calendar.PeriodDinner, booked)
	return out, nil
}

// bookedSeats sums confirmed guests per time slot for one date.
func (s *AvailabilityService) bookedSeats(date string) (map[string]int, error) {
	type row struct {
		Time   string
		Guests int
	}
	var rows []row
	err := s.DB.Model(&models.Reservation{}).
		Select("time, COALESCE(SUM(guests), 0) AS guests").
		Where("date = ? AND status = ?", date, models.StatusConfirmed).
		Group("time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, r := range rows {
		booked[r.Time] = r.Guests
	}
	return booked, nil
}

func (s *AvailabilityService) periodSlots(p calendar.Period, booked map[string]int) []SlotAvailability {
	times := calendar.Slots(p)
	slots := make([]SlotAvailability, 0, len(times))
	for _, t := range times {
		remaining := s.Capacity - booked[t]
		if remaining < 0 {
			remaining = 0
		}
		slots = append(slots, SlotAvailability{
			Time:           t,
			Available:      remaining > 0,
			RemainingSeats: remaining,
		})
	}
	return slots
}

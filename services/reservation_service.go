package services

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lexcellence/reservation-app/calendar"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// validate re-checks payloads inside the services so the rules hold even if
// a caller skips the HTTP binding layer. Same tag set as gin's binding.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ReservationInput is the submission payload for a table reservation.
type ReservationInput struct {
	Date                string   `json:"date" binding:"required"`
	Time                string   `json:"time" binding:"required"`
	Guests              int      `json:"guests" binding:"required,min=1,max=12"`
	FirstName           string   `json:"firstName" binding:"required,min=2"`
	LastName            string   `json:"lastName" binding:"required,min=2"`
	Email               string   `json:"email" binding:"required,email"`
	Phone               string   `json:"phone" binding:"required,min=10"`
	Occasion            string   `json:"occasion" binding:"omitempty,oneof=birthday business romantic other"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	SpecialRequests     string   `json:"specialRequests"`
	SeatingPreference   string   `json:"seatingPreference" binding:"omitempty,oneof=terrace view private"`
}

type ReservationService struct {
	DB       *gorm.DB
	Capacity int
	Notifier NotificationSender
}

func NewReservationService(db *gorm.DB, capacity int, notifier NotificationSender) *ReservationService {
	return &ReservationService{DB: db, Capacity: capacity, Notifier: notifier}
}

// Submit validates a reservation request and converts it atomically into a
// confirmed record. Either the full row is written and a confirmation number
// returned, or nothing is written.
//
// idempotencyKey is optional; resubmitting with the same key returns the
// originally created reservation instead of booking twice.
func (s *ReservationService) Submit(ctx context.Context, in ReservationInput, idempotencyKey string) (*models.Reservation, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	if idempotencyKey != "" {
		if existing, err := s.findByIdempotencyKey(ctx, idempotencyKey); err != nil {
			return nil, err
		} else if existing != nil {
			return existing, nil
		}
	}

	reservation := &models.Reservation{
		ID:                  uuid.NewString(),
		Date:                in.Date,
		Time:                in.Time,
		Guests:              in.Guests,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		DietaryRestrictions: in.DietaryRestrictions,
		SpecialRequests:     in.SpecialRequests,
		Status:              models.StatusConfirmed,
	}
	if in.Occasion != "" {
		reservation.Occasion = &in.Occasion
	}
	if in.SeatingPreference != "" {
		reservation.SeatingPreference = &in.SeatingPreference
	}
	if idempotencyKey != "" {
		reservation.IdempotencyKey = &idempotencyKey
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booked, err := lockedSeatCount(tx, in.Date, in.Time)
		if err != nil {
			return err
		}
		if booked+in.Guests > s.Capacity {
			return ErrSlotFull
		}

		number, err := uniqueNumber(tx, "EXC")
		if err != nil {
			return err
		}
		reservation.ConfirmationNumber = number

		return tx.Create(reservation).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) && idempotencyKey != "" {
		// Lost a race against an identical retry; hand back its record.
		existing, ferr := s.findByIdempotencyKey(ctx, idempotencyKey)
		if ferr == nil && existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	go func(r models.Reservation) {
		if err := s.Notifier.SendReservationConfirmation(&r); err != nil {
			utils.ErrorLogger.Printf("reservation confirmation for %s not sent: %v", r.ConfirmationNumber, err)
		}
	}(*reservation)

	utils.InfoLogger.Printf("Reservation %s created: %s %s, %d guests", reservation.ConfirmationNumber,
		reservation.Date, reservation.Time, reservation.Guests)
	return reservation, nil
}

// validateInput applies the schema rules plus the operating-calendar
// invariant: the date must fall on an open day and the time must belong to
// that day's slot set.
func (s *ReservationService) validateInput(in ReservationInput) error {
	if err := validate.Struct(in); err != nil {
		return FieldErrors(utils.BindingErrors(err))
	}

	fe := FieldErrors{}
	day, err := calendar.ParseDate(in.Date)
	if err != nil {
		fe["date"] = "must be a valid date (YYYY-MM-DD)"
	} else if calendar.IsClosed(day) {
		fe["date"] = "the restaurant is closed on this day"
	}
	if !calendar.IsValidSlot(in.Time) {
		fe["time"] = "not a bookable time slot"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

func (s *ReservationService) findByIdempotencyKey(ctx context.Context, key string) (*models.Reservation, error) {
	var existing models.Reservation
	err := s.DB.WithContext(ctx).Where("idempotency_key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// lockedSeatCount sums confirmed guests for one slot. On MySQL the matching
// rows are read FOR UPDATE so concurrent submissions against the same slot
// serialize at the storage layer and cannot overbook.
func lockedSeatCount(tx *gorm.DB, date, slot string) (int, error) {
	q := tx.Model(&models.Reservation{}).
		Where("date = ? AND time = ? AND status = ?", date, slot, models.StatusConfirmed)
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var guests []int
	if err := q.Pluck("guests", &guests).Error; err != nil {
		return 0, err
	}

	total := 0
	for _, g := range guests {
		total += g
	}
	return total, nil
}

// uniqueNumber issues a <prefix><base36 millis> token, verified unused in
// the store. Two submissions inside the same millisecond would otherwise
// collide, so a random base36 suffix is appended until the token is free.
func uniqueNumber(tx *gorm.DB, prefix string) (string, error) {
	number := prefix + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for {
		taken, err := numberTaken(tx, prefix, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
		number += base36Char()
	}
}

func numberTaken(tx *gorm.DB, prefix, number string) (bool, error) {
	var count int64
	var err error
	if prefix == "PVT" {
		err = tx.Model(&models.PrivatisationRequest{}).
			Where("request_number = ?", number).Count(&count).Error
	} else {
		err = tx.Model(&models.Reservation{}).
			Where("confirmation_number = ?", number).Count(&count).Error
	}
	return count > 0, err
}

func base36Char() string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(alphabet[rand.Intn(len(alphabet))])
}

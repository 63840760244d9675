// Package workflow models the guest-facing reservation form as an explicit
// three-step state machine: date/time/party size, then contact details, then
// review and submit. The draft is a typed record owned by the machine and
// carried losslessly across forward and backward transitions; nothing is
// persisted until the final submission succeeds.
//
// One machine belongs to one guest session, so methods are not safe for
// concurrent use.
package workflow

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lexcellence/reservation-app/calendar"
	"github.com/lexcellence/reservation-app/services"
)

// Step identifies where the guest is in the form.
type Step int

const (
	StepDateTimeParty Step = iota + 1
	StepContactInfo
	StepReviewConfirm
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepDateTimeParty:
		return "date-time-party"
	case StepContactInfo:
		return "contact-info"
	case StepReviewConfirm:
		return "review-confirm"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

const (
	minGuests = 1
	maxGuests = 12
)

var (
	// ErrNotReady is returned when Submit is called before the review step.
	ErrNotReady = errors.New("reservation is not ready to submit")
	// ErrInFlight guards against double submission while a request is pending.
	ErrInFlight = errors.New("submission already in flight")
	// ErrAlreadySubmitted is returned once the machine reached its terminal state.
	ErrAlreadySubmitted = errors.New("reservation already submitted")
)

var emailCheck = validator.New()

// FieldErrors maps form fields to the reason they failed a step gate.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Submitter is the server boundary the final step calls into.
type Submitter interface {
	SubmitReservation(ctx context.Context, draft services.ReservationInput, idempotencyKey string) (confirmationNumber string, err error)
}

// Machine drives one guest's reservation from first click to confirmation.
type Machine struct {
	step           Step
	draft          services.ReservationInput
	submitter      Submitter
	idempotencyKey string

	passedDateTime bool
	passedContact  bool
	submitting     bool
	confirmation   string
}

// New starts a machine at the date/time/party step. The idempotency key is
// fixed for the lifetime of the session so a retried submission cannot book
// the same table twice.
func New(submitter Submitter) *Machine {
	return &Machine{
		step:           StepDateTimeParty,
		submitter:      submitter,
		idempotencyKey: uuid.NewString(),
	}
}

// Step returns the current position in the form.
func (m *Machine) Step() Step {
	return m.step
}

// Draft returns a copy of the in-progress reservation data.
func (m *Machine) Draft() services.ReservationInput {
	return m.draft
}

// Confirmation returns the confirmation number once submitted.
func (m *Machine) Confirmation() string {
	return m.confirmation
}

// Submitting reports whether a submission is currently in flight.
func (m *Machine) Submitting() bool {
	return m.submitting
}

// Update edits the draft in place. Edits are allowed on any step before the
// terminal state, so going back never loses previously entered values.
func (m *Machine) Update(apply func(draft *services.ReservationInput)) error {
	if m.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if m.submitting {
		return ErrInFlight
	}
	apply(&m.draft)
	return nil
}

// Seed pre-fills the first step from referrer parameters (for example the
// homepage quick-picker). Each value is checked on its own: an invalid date
// does not stop a valid time or guest count from being applied.
func (m *Machine) Seed(date, slot, guests string) {
	if m.step != StepDateTimeParty {
		return
	}
	if date != "" {
		if day, err := calendar.ParseDate(date); err == nil && !calendar.IsClosed(day) {
			m.draft.Date = date
		}
	}
	if slot != "" && calendar.IsValidSlot(slot) {
		m.draft.Time = slot
	}
	if guests != "" {
		if n, err := strconv.Atoi(guests); err == nil && n >= minGuests && n <= maxGuests {
			m.draft.Guests = n
		}
	}
}

// Next advances one step if the current step's gate passes. On failure the
// machine stays put, the draft is untouched and the caller receives the
// per-field detail to surface inline.
func (m *Machine) Next() error {
	switch m.step {
	case StepDateTimeParty:
		if fe := validateDateTimeParty(m.draft); len(fe) > 0 {
			return fe
		}
		m.passedDateTime = true
		m.step = StepContactInfo
		return nil
	case StepContactInfo:
		if fe := validateContactInfo(m.draft); len(fe) > 0 {
			return fe
		}
		m.passedContact = true
		m.step = StepReviewConfirm
		return nil
	case StepReviewConfirm:
		return ErrNotReady // leaving review goes through Submit
	default:
		return ErrAlreadySubmitted
	}
}

// Back moves one step towards the start. Always allowed between form steps
// and lossless; refused while a submission is in flight or after success.
func (m *Machine) Back() bool {
	if m.submitting || m.step == StepSubmitted {
		return false
	}
	switch m.step {
	case StepContactInfo:
		m.step = StepDateTimeParty
		return true
	case StepReviewConfirm:
		m.step = StepContactInfo
		return true
	default:
		return false
	}
}

// Submit sends the draft to the server. Only reachable from the review step
// after both gates passed in this session. While the call is in flight the
// machine refuses a second Submit; on failure it stays in review with the
// draft intact so the guest can retry.
func (m *Machine) Submit(ctx context.Context) (string, error) {
	if m.step == StepSubmitted {
		return m.confirmation, ErrAlreadySubmitted
	}
	if m.submitting {
		return "", ErrInFlight
	}
	if m.step != StepReviewConfirm || !m.passedDateTime || !m.passedContact {
		return "", ErrNotReady
	}

	m.submitting = true
	number, err := m.submitter.SubmitReservation(ctx, m.draft, m.idempotencyKey)
	m.submitting = false
	if err != nil {
		return "", err
	}

	m.confirmation = number
	m.step = StepSubmitted
	return number, nil
}

func validateDateTimeParty(d services.ReservationInput) FieldErrors {
	fe := FieldErrors{}
	if d.Date == "" {
		fe["date"] = "please select a date"
	} else if day, err := calendar.ParseDate(d.Date); err != nil {
		fe["date"] = "must be a valid date (YYYY-MM-DD)"
	} else if calendar.IsClosed(day) {
		fe["date"] = "the restaurant is closed on this day"
	}

	if d.Time == "" {
		fe["time"] = "please select a time"
	} else if !calendar.IsValidSlot(d.Time) {
		fe["time"] = "not a bookable time slot"
	}

	if d.Guests < minGuests || d.Guests > maxGuests {
		fe["guests"] = "party size must be between 1 and 12"
	}
	return fe
}

func validateContactInfo(d services.ReservationInput) FieldErrors {
	fe := FieldErrors{}
	if utf8.RuneCountInString(d.FirstName) < 2 {
		fe["firstName"] = "must be at least 2 characters"
	}
	if utf8.RuneCountInString(d.LastName) < 2 {
		fe["lastName"] = "must be at least 2 characters"
	}
	if err := emailCheck.Var(d.Email, "required,email"); err != nil {
		fe["email"] = "must be a valid email address"
	}
	if utf8.RuneCountInString(d.Phone) < 10 {
		fe["phone"] = "must be at least 10 characters"
	}
	return fe
}

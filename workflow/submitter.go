package workflow

import (
	"context"

	"github.com/lexcellence/reservation-app/services"
)

// ServiceSubmitter adapts the booking service to the Submitter boundary so a
// machine can run in-process against the same code path the HTTP handler uses.
type ServiceSubmitter struct {
	Service *services.ReservationService
}

func NewServiceSubmitter(svc *services.ReservationService) *ServiceSubmitter {
	return &ServiceSubmitter{Service: svc}
}

func (s *ServiceSubmitter) SubmitReservation(ctx context.Context, draft services.ReservationInput, idempotencyKey string) (string, error) {
	reservation, err := s.Service.Submit(ctx, draft, idempotencyKey)
	if err != nil {
		return "", err
	}
	return reservation.ConfirmationNumber, nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/utils"
	"gorm.io/gorm"
)

// PrivatisationInput is the submission payload for a private-event request.
type PrivatisationInput struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=10"`
	EventType  string `json:"eventType" binding:"required,oneof=wedding seminar birthday corporate other"`
	EventDate  string `json:"eventDate" binding:"required"`
	GuestCount int    `json:"guestCount" binding:"required,min=1"`
	Budget     string `json:"budget"`
	Message    string `json:"message" binding:"required,min=10"`
}

type PrivatisationService struct {
	DB       *gorm.DB
	Notifier NotificationSender
}

func NewPrivatisationService(db *gorm.DB, notifier NotificationSender) *PrivatisationService {
	return &PrivatisationService{DB: db, Notifier: notifier}
}

// Submit follows the same contract as reservation submission: validate,
// issue a unique PVT number, write atomically. Requests start out pending
// until the events team reviews them.
func (s *PrivatisationService) Submit(ctx context.Context, in PrivatisationInput, idempotencyKey string) (*models.PrivatisationRequest, error) {
	if err := validate.Struct(in); err != nil {
		return nil, FieldErrors(utils.BindingErrors(err))
	}

	if idempotencyKey != "" {
		if existing, err := s.findByIdempotencyKey(ctx, idempotencyKey); err != nil {
			return nil, err
		} else if existing != nil {
			return existing, nil
		}
	}

	request := &models.PrivatisationRequest{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		EventType:  in.EventType,
		EventDate:  in.EventDate,
		GuestCount: in.GuestCount,
		Budget:     in.Budget,
		Message:    in.Message,
		Status:     models.StatusPending,
	}
	if idempotencyKey != "" {
		request.IdempotencyKey = &idempotencyKey
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := uniqueNumber(tx, "PVT")
		if err != nil {
			return err
		}
		request.RequestNumber = number
		return tx.Create(request).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) && idempotencyKey != "" {
		existing, ferr := s.findByIdempotencyKey(ctx, idempotencyKey)
		if ferr == nil && existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	go func(p models.PrivatisationRequest) {
		if err := s.Notifier.SendPrivatisationReceived(&p); err != nil {
			utils.ErrorLogger.Printf("privatisation notification for %s not sent: %v", p.RequestNumber, err)
		}
	}(*request)

	utils.InfoLogger.Printf("Privatisation request %s created (%s, %d guests)",
		request.RequestNumber, request.EventType, request.GuestCount)
	return request, nil
}

func (s *PrivatisationService) findByIdempotencyKey(ctx context.Context, key string) (*models.PrivatisationRequest, error) {
	var existing models.PrivatisationRequest
	err := s.DB.WithContext(ctx).Where("idempotency_key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

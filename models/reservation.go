package models

import (
	"time"
)

// Reservation statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ConfirmationNumber  string    `gorm:"type:varchar(30);not null;uniqueIndex" json:"confirmationNumber"`
	IdempotencyKey      *string   `gorm:"type:varchar(64);uniqueIndex" json:"-"`
	Date                string    `gorm:"type:varchar(10);not null;index:idx_reservations_slot" json:"date"`
	Time                string    `gorm:"type:varchar(5);not null;index:idx_reservations_slot" json:"time"`
	Guests              int       `gorm:"not null" json:"guests"`
	FirstName           string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName            string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email               string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone               string    `gorm:"type:varchar(30);not null" json:"phone"`
	Occasion            *string   `gorm:"type:varchar(20)" json:"occasion,omitempty"`
	DietaryRestrictions []string  `gorm:"serializer:json" json:"dietaryRestrictions,omitempty"`
	SpecialRequests     string    `gorm:"type:text" json:"specialRequests,omitempty"`
	SeatingPreference   *string   `gorm:"type:varchar(20)" json:"seatingPreference,omitempty"`
	Status              string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"not null" json:"updatedAt"`
}

package models

import "time"

// Event types accepted on privatisation requests.
const (
	EventWedding   = "wedding"
	EventSeminar   = "seminar"
	EventBirthday  = "birthday"
	EventCorporate = "corporate"
	EventOther     = "other"
)

type PrivatisationRequest struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	RequestNumber  string    `gorm:"type:varchar(30);not null;uniqueIndex" json:"requestNumber"`
	IdempotencyKey *string   `gorm:"type:varchar(64);uniqueIndex" json:"-"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string    `gorm:"type:varchar(30);not null" json:"phone"`
	EventType      string    `gorm:"type:varchar(20);not null" json:"eventType"`
	EventDate      string    `gorm:"type:varchar(10);not null" json:"eventDate"`
	GuestCount     int       `gorm:"not null" json:"guestCount"`
	Budget         string    `gorm:"type:varchar(50)" json:"budget,omitempty"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

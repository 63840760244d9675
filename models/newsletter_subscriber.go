package models

import "time"

type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribedAt"`
}

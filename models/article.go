package models

import "time"

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	Content     string    `gorm:"type:text" json:"content"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `gorm:"type:varchar(200)" json:"author"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
	UpdatedAt   time.Time `gorm:"not null" json:"-"`
}

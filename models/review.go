package models

import "time"

// Review is a customer testimonial shown on the public site.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:100;not null" json:"location"`
	Rating    int       `gorm:"not null" json:"rating"`
	Text      string    `gorm:"size:1000;not null" json:"text"`
	Service   string    `gorm:"size:100" json:"service"`
}

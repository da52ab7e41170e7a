package models

import "time"

// AdminUser is a panel administrator identity. Rows are created at
// provisioning time only; there is no self-service registration.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
}

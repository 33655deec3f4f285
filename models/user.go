package models

import "time"

// User is a registered shopper. Records are write-once: there is no
// update or delete endpoint.
type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phonenumber"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt   time.Time `json:"created_at"`
}

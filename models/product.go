package models

import "time"

// Product carries two identifiers: ID is the store-native reference that
// cart items key on, SeqID is the human-facing sequential id used by the
// public catalog endpoints.
//
// SeqID is assigned as max+1 at creation time with no locking, so it has
// no unique constraint: concurrent adds can observe the same max and
// produce duplicates.
type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"ref"`
	SeqID     int       `gorm:"index;not null" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `gorm:"not null" json:"image"`
	Category  string    `gorm:"not null" json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Date      time.Time `json:"date"`
	Available bool      `gorm:"default:true" json:"available"`
}

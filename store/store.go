// Package store wraps the database access for users, products and carts.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every store when no row matches.
var ErrNotFound = errors.New("not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user. A record is created at registration and
// is immutable afterwards.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255" json:"name"`

	// Contact is the user's phone or other contact detail.
	Contact string `gorm:"size:64" json:"contact"`

	// Email is used for authentication and must be unique across all users.
	// Uniqueness is enforced by the database index, not by a lookup before
	// insert.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// DateOfBirth is stored as the client sent it.
	DateOfBirth string `gorm:"size:32" json:"dob"`

	// Password is the bcrypt hash. Plaintext passwords are never stored or
	// logged.
	Password string `gorm:"size:255;not null" json:"-"`

	// Country is the user's country of residence.
	Country string `gorm:"size:64" json:"country"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

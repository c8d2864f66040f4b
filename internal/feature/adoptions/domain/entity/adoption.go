// Package entity defines the domain entities for the adoptions feature.
package entity

import "time"

// Adoption is an adoption application. Agreed is always true for stored
// records: applications without the agreement are rejected before they reach
// the store.
type Adoption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Contact   string    `gorm:"size:64;not null" json:"contact"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Address   string    `gorm:"size:512;not null" json:"address"`
	Country   string    `gorm:"size:64;not null" json:"country"`
	Pet       string    `gorm:"size:255;not null" json:"pet"`
	Agreed    bool      `gorm:"not null" json:"agreed"`
	CreatedAt time.Time `json:"createdAt"`
}

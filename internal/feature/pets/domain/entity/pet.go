// Package entity defines the domain entities for the pets feature.
package entity

import "time"

// Pet is a lost-pet report. Reports are append-only: they are created once
// and listed, never updated.
type Pet struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Breed               string    `gorm:"size:255" json:"breed"`
	LastSeenLocation    string    `gorm:"size:255" json:"lastSeenLocation"`
	DistinctiveFeatures string    `gorm:"size:1024" json:"distinctiveFeatures"`
	ContactInfo         string    `gorm:"size:255" json:"contactInfo"`
	ImagePath           string    `gorm:"size:255" json:"imagePath"`
	CreatedAt           time.Time `json:"createdAt"`
}

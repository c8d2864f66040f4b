// Package entity defines the domain entities for the visits feature.
package entity

import "time"

// Visit is a scheduled shelter visit.
type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Contact   string    `gorm:"size:64" json:"contact"`
	Email     string    `gorm:"size:255" json:"email"`
	VisitDate string    `gorm:"size:32" json:"visitDate"`
	VisitTime string    `gorm:"size:32" json:"visitTime"`
	Pet       string    `gorm:"size:255" json:"pet"`
	CreatedAt time.Time `json:"createdAt"`
}

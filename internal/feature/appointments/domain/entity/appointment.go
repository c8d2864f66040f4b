// Package entity defines the domain entities for the appointments feature.
package entity

import "time"

// VetAppointment is a vet appointment booking.
type VetAppointment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DoctorName   string    `gorm:"size:255" json:"doctorName"`
	DoctorNumber string    `gorm:"size:64" json:"doctorNumber"`
	Location     string    `gorm:"size:255" json:"location"`
	FromTime     string    `gorm:"size:32" json:"fromTime"`
	ToTime       string    `gorm:"size:32" json:"toTime"`
	VetService   string    `gorm:"size:255" json:"vetService"`
	Description  string    `gorm:"size:1024" json:"description"`
	CreatedAt    time.Time `json:"-"`
}

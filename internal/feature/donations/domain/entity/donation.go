// Package entity defines the domain entities for the donations feature.
package entity

import "time"

// PetDetails is the nested pet description attached to pet donations. It is
// stored as a JSON document inside the donation row.
type PetDetails struct {
	PetName        string `json:"petName"`
	PetType        string `json:"petType"`
	PetAge         string `json:"petAge"`
	PetBreed       string `json:"petBreed"`
	PetDescription string `json:"petDescription"`
	PetHealth      string `json:"petHealth"`
}

// Donation is a single donation record. Depending on DonationType it carries
// pet details, a money amount, or both.
type Donation struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	DonorName      string      `gorm:"size:255" json:"donorName"`
	DonorContact   string      `gorm:"size:64" json:"donorContact"`
	DonorEmail     string      `gorm:"size:255" json:"donorEmail"`
	DonorAddress   string      `gorm:"size:512" json:"donorAddress"`
	DonationType   string      `gorm:"size:16" json:"donationType"`
	PetDetails     *PetDetails `gorm:"serializer:json" json:"petDetails"`
	DonationAmount *float64    `json:"donationAmount"`
	Date           time.Time   `gorm:"autoCreateTime" json:"date"`
}

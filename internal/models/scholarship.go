package models

import (
	"gorm.io/gorm"
)

// Scholarship is a catalog entry surfaced on the scholarships page.
type Scholarship struct {
	gorm.Model
	Name           string `json:"name"`
	Eligibility    string `json:"eligibility"`
	Region         string `gorm:"index" json:"region"`
	Deadline       string `json:"deadline"`
	Award          string `json:"award"`
	Description    string `json:"description"`
	Email          string `json:"email"`
	Link           string `json:"link"`
	Category       string `gorm:"index" json:"category"`
	ContactDetails string `json:"contactDetails"`
}

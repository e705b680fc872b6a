package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Specialty   string `gorm:"size:100" json:"specialty"`
	Designation string `gorm:"size:100" json:"designation"`
	Chamber     string `gorm:"size:255" json:"chamber"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

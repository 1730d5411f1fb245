package models

import "time"

// Location is an office site users belong to. It carries no workflow
// behavior; it exists for grouping and display.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;unique;not null" json:"name"`
	Address   string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

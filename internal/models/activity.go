package models

import "time"

// AgentActivity is a read-only event emitted by an agent while it works.
// The board shows the 10 most recent entries, newest first.
type AgentActivity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	Detail    *string   `gorm:"type:text" json:"detail"`
	Category  *string   `gorm:"size:32" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

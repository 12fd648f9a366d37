package models

import "time"

// Document categories. The vault UI additionally offers "All".
const (
	CategoryResearch = "Research"
	CategoryStrategy = "Strategy"
	CategoryDaily    = "Daily"
	CategoryOther    = "Other"
)

// Document is a vault entry. WordCount is precomputed by whoever writes the
// row, never derived at render time.
type Document struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Filename  string    `gorm:"size:128" json:"filename"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"size:16;default:Other;index" json:"category"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

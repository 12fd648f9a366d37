package models

import "time"

// StockRecommendation is one day's agent-generated briefing. Tickers,
// HeatMap and NewPicks are JSON columns written by the agents; NewPicks in
// particular has accumulated legacy shapes and is decoded defensively at
// read time (see internal/feed).
//
// Date is an ISO YYYY-MM-DD string so range filters stay lexical on both
// drivers.
type StockRecommendation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Date      string    `gorm:"size:10;index" json:"date"`
	Tickers   string    `gorm:"type:json" json:"tickers"`
	HeatMap   string    `gorm:"type:json" json:"heat_map"`
	NewPicks  string    `gorm:"type:json" json:"new_picks"`
	Summary   string    `gorm:"type:text" json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

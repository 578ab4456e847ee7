package report

import (
	"time"

	"github.com/google/uuid"
)

// DailyOutbound is one item's total outbound movement on one day.
type DailyOutbound struct {
	Day      time.Time `json:"day"`
	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	Unit     string    `json:"unit"`
	Total    int64     `json:"total"`
	Count    int       `json:"count"`
}

// WeeklyOutbound aggregates one item's outbound movements over the five
// most recent business days. DailyTotals has an entry for every one of
// those days, zero when nothing moved, keyed by "MM/dd".
type WeeklyOutbound struct {
	ItemID      uuid.UUID        `json:"itemId"`
	ItemName    string           `json:"itemName"`
	Unit        string           `json:"unit"`
	Total       int64            `json:"total"`
	DailyTotals map[string]int64 `json:"dailyTotals"`
}

// WeeklySummary is the full weekly report: the window's day keys in
// chronological order plus one row per item that moved.
type WeeklySummary struct {
	Days  []string         `json:"days"`
	Items []WeeklyOutbound `json:"items"`
}

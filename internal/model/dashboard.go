package model

import "time"

// DashboardSnapshot is the transient aggregate behind the dashboard view.
// It is recomputed from scratch on every request and never persisted.
type DashboardSnapshot struct {
	TotalShips   int            `json:"total_ships"`
	TotalRatings int            `json:"total_ratings"`
	UserRatings  int            `json:"user_ratings"`
	Recent       []RecentRating `json:"recent"`
}

// RecentRating is one entry of the requester's most-recent list, with the
// parent ship's name denormalized in and the average already computed.
type RecentRating struct {
	ShipName string    `json:"ship_name"`
	RatedAt  time.Time `json:"rated_at"`
	Average  float64   `json:"average"`
}

// EmptySnapshot is returned for anonymous requesters without touching the
// store at all.
func EmptySnapshot() *DashboardSnapshot {
	return &DashboardSnapshot{Recent: []RecentRating{}}
}

// InstallHint is the platform-specific banner nudging pilots toward the
// native install path.
type InstallHint struct {
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	StoreURL    string `json:"store_url,omitempty"`
	Dismissible bool   `json:"dismissible"`
}

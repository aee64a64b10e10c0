package domain

import "time"

// AdvertisementStatus enumerates ad lifecycle states. The status is derived
// from the start/end dates rather than stored.
type AdvertisementStatus string

const (
	AdStatusWaiting AdvertisementStatus = "waiting"
	AdStatusRunning AdvertisementStatus = "running"
	AdStatusClosed  AdvertisementStatus = "closed"
)

// Advertisement is a paid promotional placement.
type Advertisement struct {
	ID          string
	CreatedBy   string
	Title       string
	Description string
	ImageKey    *string
	ContactInfo string
	Price       *float64
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatusAt derives the ad status for the given instant.
func (a *Advertisement) StatusAt(now time.Time) AdvertisementStatus {
	day := now.UTC().Truncate(24 * time.Hour)
	switch {
	case day.Before(a.StartDate.UTC().Truncate(24 * time.Hour)):
		return AdStatusWaiting
	case day.After(a.EndDate.UTC().Truncate(24 * time.Hour)):
		return AdStatusClosed
	default:
		return AdStatusRunning
	}
}

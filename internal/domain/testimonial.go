package domain

import "time"

// Testimonial is user feedback displayed on the portal. Names are copied from
// the author's seeker profile when one exists.
type Testimonial struct {
	ID          string
	CreatedBy   string
	Job         string
	Description string
	FirstName   *string
	LastName    *string
	CreatedAt   time.Time
}

package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// AdvertisementRequest payload for creating or updating an ad.
type AdvertisementRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageKey    *string   `json:"image_key"`
	ContactInfo string    `json:"contact_info"`
	Price       *float64  `json:"price"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// AdvertisementResponse mirrors an ad with its derived status.
type AdvertisementResponse struct {
	ID          string                     `json:"id"`
	CreatedBy   string                     `json:"created_by"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	ImageKey    *string                    `json:"image_key,omitempty"`
	ContactInfo string                     `json:"contact_info"`
	Price       *float64                   `json:"price,omitempty"`
	StartDate   time.Time                  `json:"start_date"`
	EndDate     time.Time                  `json:"end_date"`
	Status      domain.AdvertisementStatus `json:"status"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// TestimonialRequest payload.
type TestimonialRequest struct {
	Job         string `json:"job"`
	Description string `json:"description"`
}

// TestimonialResponse mirrors a testimonial.
type TestimonialResponse struct {
	ID          string    `json:"id"`
	Job         string    `json:"job"`
	Description string    `json:"description"`
	FirstName   *string   `json:"first_name,omitempty"`
	LastName    *string   `json:"last_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

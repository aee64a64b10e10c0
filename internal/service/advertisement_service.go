package service

import (
	"context"
	"strings"
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/repository"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// AdvertisementService manages promotional placements. Ad status is derived
// from the start/end dates at read time, never stored.
type AdvertisementService struct {
	ads repository.AdvertisementRepository
}

// AdvertisementInput describes creation and update payloads.
type AdvertisementInput struct {
	Title       string
	Description string
	ImageKey    *string
	ContactInfo string
	Price       *float64
	StartDate   time.Time
	EndDate     time.Time
}

// AdvertisementView pairs an ad with its derived status.
type AdvertisementView struct {
	Advertisement domain.Advertisement
	Status        domain.AdvertisementStatus
}

// NewAdvertisementService constructs the service.
func NewAdvertisementService(ads repository.AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{ads: ads}
}

// CreateAdvertisement creates an ad owned by the actor.
func (s *AdvertisementService) CreateAdvertisement(ctx context.Context, actor *domain.User, input AdvertisementInput) (*AdvertisementView, error) {
	if err := validateAdInput(input); err != nil {
		return nil, err
	}
	ad := &domain.Advertisement{
		CreatedBy:   actor.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ImageKey:    input.ImageKey,
		ContactInfo: strings.TrimSpace(input.ContactInfo),
		Price:       input.Price,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, err
	}
	return &AdvertisementView{Advertisement: *ad, Status: ad.StatusAt(time.Now())}, nil
}

// GetAdvertisement fetches one ad with its derived status.
func (s *AdvertisementService) GetAdvertisement(ctx context.Context, adID string) (*AdvertisementView, error) {
	ad, err := s.ads.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	return &AdvertisementView{Advertisement: *ad, Status: ad.StatusAt(time.Now())}, nil
}

// UpdateAdvertisement replaces mutable fields, owner or admin only.
func (s *AdvertisementService) UpdateAdvertisement(ctx context.Context, actor *domain.User, adID string, input AdvertisementInput) (*AdvertisementView, error) {
	ad, err := s.ads.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not allowed to update this advertisement")
	}
	if err := validateAdInput(input); err != nil {
		return nil, err
	}

	ad.Title = strings.TrimSpace(input.Title)
	ad.Description = input.Description
	if input.ImageKey != nil {
		ad.ImageKey = input.ImageKey
	}
	ad.ContactInfo = strings.TrimSpace(input.ContactInfo)
	if input.Price != nil {
		ad.Price = input.Price
	}
	ad.StartDate = input.StartDate
	ad.EndDate = input.EndDate

	if err := s.ads.Update(ctx, ad); err != nil {
		return nil, err
	}
	return &AdvertisementView{Advertisement: *ad, Status: ad.StatusAt(time.Now())}, nil
}

// DeleteAdvertisement removes an ad, owner or admin only.
func (s *AdvertisementService) DeleteAdvertisement(ctx context.Context, actor *domain.User, adID string) error {
	ad, err := s.ads.GetByID(ctx, adID)
	if err != nil {
		return err
	}
	if ad.CreatedBy != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("you are not allowed to delete this advertisement")
	}
	return s.ads.Delete(ctx, adID)
}

// ListAdvertisements returns paginated ads with derived statuses.
func (s *AdvertisementService) ListAdvertisements(ctx context.Context, limit, offset int) ([]AdvertisementView, error) {
	ads, err := s.ads.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]AdvertisementView, 0, len(ads))
	for _, ad := range ads {
		views = append(views, AdvertisementView{Advertisement: ad, Status: ad.StatusAt(now)})
	}
	return views, nil
}

func validateAdInput(input AdvertisementInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.NewValidationError("title is required", nil)
	}
	if input.EndDate.Before(input.StartDate) {
		return apperrors.NewValidationError("end date must not be before start date", nil)
	}
	return nil
}

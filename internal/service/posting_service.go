package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/events"
	"github.com/kazi-link/job-portal/internal/repository"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// PostingService manages job postings and the category/type catalog.
type PostingService struct {
	postings   repository.PostingRepository
	catalog    repository.CatalogRepository
	dispatcher events.Dispatcher
}

// PostingDependencies bundles repositories for the posting service.
type PostingDependencies struct {
	PostingRepo repository.PostingRepository
	CatalogRepo repository.CatalogRepository
	Dispatcher  events.Dispatcher
}

// PostingCreateInput describes posting creation payload.
type PostingCreateInput struct {
	Title            string
	OfferType        domain.OfferType
	CompanyName      *string
	Location         string
	JobTypeID        string
	CategoryID       string
	ExperienceLevel  domain.ExperienceLevel
	SalaryRange      string
	EmployeesNeeded  int
	Description      string
	Requirements     string
	Responsibilities string
	Benefits         *string
	Deadline         time.Time
	Status           domain.PostingStatus
}

// PostingUpdateInput carries optional field updates.
type PostingUpdateInput struct {
	Title            *string
	Location         *string
	SalaryRange      *string
	EmployeesNeeded  *int
	Description      *string
	Requirements     *string
	Responsibilities *string
	Benefits         *string
	Deadline         *time.Time
	Status           *domain.PostingStatus
}

// PostingListFilter describes listing filters.
type PostingListFilter struct {
	CategoryID      *string
	JobTypeID       *string
	ExperienceLevel *domain.ExperienceLevel
	SearchTerm      *string
	Limit           int
	Offset          int
}

// NewPostingService constructs the service.
func NewPostingService(deps PostingDependencies) *PostingService {
	return &PostingService{
		postings:   deps.PostingRepo,
		catalog:    deps.CatalogRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreatePosting creates a posting owned by the actor.
func (s *PostingService) CreatePosting(ctx context.Context, actor *domain.User, input PostingCreateInput) (*domain.JobPosting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if _, err := s.catalog.GetCategoryByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetJobTypeByID(ctx, input.JobTypeID); err != nil {
		return nil, err
	}
	if input.Deadline.UTC().Truncate(24 * time.Hour).Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, apperrors.NewValidationError("deadline must not be in the past", nil)
	}

	posting := &domain.JobPosting{
		Title:            strings.TrimSpace(input.Title),
		OfferType:        input.OfferType,
		CompanyName:      input.CompanyName,
		Location:         strings.TrimSpace(input.Location),
		JobTypeID:        input.JobTypeID,
		CategoryID:       input.CategoryID,
		ExperienceLevel:  input.ExperienceLevel,
		SalaryRange:      strings.TrimSpace(input.SalaryRange),
		EmployeesNeeded:  input.EmployeesNeeded,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		Benefits:         input.Benefits,
		Deadline:         input.Deadline,
		Status:           input.Status,
		CreatedBy:        actor.ID,
	}
	if posting.OfferType == "" {
		posting.OfferType = domain.OfferTypeCompany
	}
	if posting.Status == "" {
		posting.Status = domain.PostingStatusActive
	}
	if posting.EmployeesNeeded <= 0 {
		posting.EmployeesNeeded = 1
	}
	if err := s.postings.Create(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

// GetPosting fetches one posting, expiring it on read when the deadline has
// passed. A manually closed posting stays closed.
func (s *PostingService) GetPosting(ctx context.Context, postingID string) (*domain.JobPosting, error) {
	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	return s.expireOnRead(ctx, posting)
}

// UpdatePosting applies a partial update on behalf of the owner or an admin.
func (s *PostingService) UpdatePosting(ctx context.Context, actor *domain.User, postingID string, input PostingUpdateInput) (*domain.JobPosting, error) {
	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not allowed to update this posting")
	}

	if input.Title != nil {
		posting.Title = strings.TrimSpace(*input.Title)
	}
	if input.Location != nil {
		posting.Location = strings.TrimSpace(*input.Location)
	}
	if input.SalaryRange != nil {
		posting.SalaryRange = strings.TrimSpace(*input.SalaryRange)
	}
	if input.EmployeesNeeded != nil && *input.EmployeesNeeded > 0 {
		posting.EmployeesNeeded = *input.EmployeesNeeded
	}
	if input.Description != nil {
		posting.Description = *input.Description
	}
	if input.Requirements != nil {
		posting.Requirements = *input.Requirements
	}
	if input.Responsibilities != nil {
		posting.Responsibilities = *input.Responsibilities
	}
	if input.Benefits != nil {
		posting.Benefits = input.Benefits
	}
	if input.Deadline != nil {
		posting.Deadline = *input.Deadline
	}
	if input.Status != nil {
		switch *input.Status {
		case domain.PostingStatusDraft, domain.PostingStatusActive, domain.PostingStatusClosed, domain.PostingStatusExpired:
			posting.Status = *input.Status
		default:
			return nil, apperrors.NewInvalidStatus(string(*input.Status))
		}
	}

	if err := s.postings.Update(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

// ClosePosting marks a posting closed; closed postings never reopen through
// the expiry sweep.
func (s *PostingService) ClosePosting(ctx context.Context, actor *domain.User, postingID string) (*domain.JobPosting, error) {
	status := domain.PostingStatusClosed
	return s.UpdatePosting(ctx, actor, postingID, PostingUpdateInput{Status: &status})
}

// DeletePosting removes a posting, owner or admin only.
func (s *PostingService) DeletePosting(ctx context.Context, actor *domain.User, postingID string) error {
	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return err
	}
	if posting.CreatedBy != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("you are not allowed to delete this posting")
	}
	return s.postings.Delete(ctx, postingID)
}

// ListPublicPostings lists active postings for unauthenticated browsing.
func (s *PostingService) ListPublicPostings(ctx context.Context, filter PostingListFilter) ([]domain.JobPosting, error) {
	return s.postings.ListWithFilter(ctx, repository.PostingFilter{
		Statuses:        []domain.PostingStatus{domain.PostingStatusActive},
		CategoryID:      filter.CategoryID,
		JobTypeID:       filter.JobTypeID,
		ExperienceLevel: filter.ExperienceLevel,
		SearchTerm:      filter.SearchTerm,
		Limit:           filter.Limit,
		Offset:          filter.Offset,
	})
}

// ListOwnPostings lists the actor's postings in any status.
func (s *PostingService) ListOwnPostings(ctx context.Context, actorID string, filter PostingListFilter) ([]domain.JobPosting, error) {
	return s.postings.ListWithFilter(ctx, repository.PostingFilter{
		CreatedBy:       &actorID,
		CategoryID:      filter.CategoryID,
		JobTypeID:       filter.JobTypeID,
		ExperienceLevel: filter.ExperienceLevel,
		SearchTerm:      filter.SearchTerm,
		Limit:           filter.Limit,
		Offset:          filter.Offset,
	})
}

// ExpireDuePostings marks past-deadline active and draft postings expired and
// emits an event per posting. Used by the background sweep.
func (s *PostingService) ExpireDuePostings(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.postings.ExpireDue(ctx, now.UTC().Truncate(24*time.Hour))
	if err != nil {
		return 0, err
	}
	for _, posting := range expired {
		s.publishExpired(ctx, posting)
	}
	return len(expired), nil
}

// CreateCategory adds a job category, admin only at the HTTP layer.
func (s *PostingService) CreateCategory(ctx context.Context, actor *domain.User, name string, description *string) (*domain.JobCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	category := &domain.JobCategory{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedBy:   actor.ID,
	}
	if err := s.catalog.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *PostingService) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	return s.catalog.ListCategories(ctx)
}

// CreateJobType adds an employment form, admin only at the HTTP layer.
func (s *PostingService) CreateJobType(ctx context.Context, actor *domain.User, name string, description *string) (*domain.JobType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	jobType := &domain.JobType{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedBy:   actor.ID,
	}
	if err := s.catalog.CreateJobType(ctx, jobType); err != nil {
		return nil, err
	}
	return jobType, nil
}

// ListJobTypes returns all job types.
func (s *PostingService) ListJobTypes(ctx context.Context) ([]domain.JobType, error) {
	return s.catalog.ListJobTypes(ctx)
}

func (s *PostingService) expireOnRead(ctx context.Context, posting *domain.JobPosting) (*domain.JobPosting, error) {
	if !posting.AcceptsApplications() || !posting.DeadlinePassed(time.Now()) {
		return posting, nil
	}
	posting.Status = domain.PostingStatusExpired
	if err := s.postings.Update(ctx, posting); err != nil {
		return nil, err
	}
	s.publishExpired(ctx, *posting)
	return posting, nil
}

func (s *PostingService) publishExpired(ctx context.Context, posting domain.JobPosting) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPostingExpired,
		Timestamp: time.Now(),
		Payload: events.PostingExpiredPayload{
			PostingID: posting.ID,
			OwnerID:   posting.CreatedBy,
			Deadline:  posting.Deadline,
		},
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/events"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

type fakeCatalogRepo struct {
	categories map[string]*domain.JobCategory
	jobTypes   map[string]*domain.JobType
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		categories: map[string]*domain.JobCategory{
			"cat-1": {ID: "cat-1", Name: "Engineering"},
		},
		jobTypes: map[string]*domain.JobType{
			"type-1": {ID: "type-1", Name: "Full Time"},
		},
	}
}

func (f *fakeCatalogRepo) CreateCategory(_ context.Context, category *domain.JobCategory) error {
	category.ID = "cat-" + category.Name
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCatalogRepo) GetCategoryByID(_ context.Context, id string) (*domain.JobCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return category, nil
}

func (f *fakeCatalogRepo) ListCategories(_ context.Context) ([]domain.JobCategory, error) {
	var result []domain.JobCategory
	for _, category := range f.categories {
		result = append(result, *category)
	}
	return result, nil
}

func (f *fakeCatalogRepo) CreateJobType(_ context.Context, jobType *domain.JobType) error {
	jobType.ID = "type-" + jobType.Name
	f.jobTypes[jobType.ID] = jobType
	return nil
}

func (f *fakeCatalogRepo) GetJobTypeByID(_ context.Context, id string) (*domain.JobType, error) {
	jobType, ok := f.jobTypes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return jobType, nil
}

func (f *fakeCatalogRepo) ListJobTypes(_ context.Context) ([]domain.JobType, error) {
	var result []domain.JobType
	for _, jobType := range f.jobTypes {
		result = append(result, *jobType)
	}
	return result, nil
}

func newPostingService() (*PostingService, *fakePostingRepo, *recordingDispatcher) {
	postings := &fakePostingRepo{postings: map[string]*domain.JobPosting{}}
	dispatcher := &recordingDispatcher{}
	svc := NewPostingService(PostingDependencies{
		PostingRepo: postings,
		CatalogRepo: newFakeCatalogRepo(),
		Dispatcher:  dispatcher,
	})
	return svc, postings, dispatcher
}

func validPostingInput() PostingCreateInput {
	return PostingCreateInput{
		Title:      "Backend Engineer",
		Location:   "Kigali",
		JobTypeID:  "type-1",
		CategoryID: "cat-1",
		Deadline:   time.Now().Add(14 * 24 * time.Hour),
	}
}

func TestCreatePosting(t *testing.T) {
	owner := &domain.User{ID: "user-owner", Role: domain.RoleJobOffer, Active: true}

	t.Run("defaults applied", func(t *testing.T) {
		svc, _, _ := newPostingService()
		posting, err := svc.CreatePosting(context.Background(), owner, validPostingInput())
		require.NoError(t, err)
		assert.Equal(t, domain.PostingStatusActive, posting.Status)
		assert.Equal(t, domain.OfferTypeCompany, posting.OfferType)
		assert.Equal(t, 1, posting.EmployeesNeeded)
		assert.Equal(t, owner.ID, posting.CreatedBy)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc, _, _ := newPostingService()
		input := validPostingInput()
		input.Title = "  "
		_, err := svc.CreatePosting(context.Background(), owner, input)
		assert.Error(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		svc, _, _ := newPostingService()
		input := validPostingInput()
		input.CategoryID = "cat-missing"
		_, err := svc.CreatePosting(context.Background(), owner, input)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("past deadline rejected", func(t *testing.T) {
		svc, _, _ := newPostingService()
		input := validPostingInput()
		input.Deadline = time.Now().Add(-48 * time.Hour)
		_, err := svc.CreatePosting(context.Background(), owner, input)
		assert.Error(t, err)
	})
}

func TestGetPostingExpiresOnRead(t *testing.T) {
	t.Run("active past deadline expires", func(t *testing.T) {
		svc, postings, dispatcher := newPostingService()
		postings.postings["posting-1"] = &domain.JobPosting{
			ID:       "posting-1",
			Status:   domain.PostingStatusActive,
			Deadline: time.Now().Add(-48 * time.Hour),
		}

		posting, err := svc.GetPosting(context.Background(), "posting-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PostingStatusExpired, posting.Status)
		assert.Equal(t, domain.PostingStatusExpired, postings.postings["posting-1"].Status)
		require.Len(t, dispatcher.published, 1)
		assert.Equal(t, events.EventPostingExpired, dispatcher.published[0].Type)
	})

	t.Run("closed posting stays closed", func(t *testing.T) {
		svc, postings, dispatcher := newPostingService()
		postings.postings["posting-1"] = &domain.JobPosting{
			ID:       "posting-1",
			Status:   domain.PostingStatusClosed,
			Deadline: time.Now().Add(-48 * time.Hour),
		}

		posting, err := svc.GetPosting(context.Background(), "posting-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PostingStatusClosed, posting.Status)
		assert.Empty(t, dispatcher.published)
	})

	t.Run("active before deadline untouched", func(t *testing.T) {
		svc, postings, _ := newPostingService()
		postings.postings["posting-1"] = &domain.JobPosting{
			ID:       "posting-1",
			Status:   domain.PostingStatusActive,
			Deadline: time.Now().Add(48 * time.Hour),
		}

		posting, err := svc.GetPosting(context.Background(), "posting-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PostingStatusActive, posting.Status)
	})
}

func TestExpireDuePostings(t *testing.T) {
	svc, postings, dispatcher := newPostingService()
	postings.postings["due"] = &domain.JobPosting{
		ID:       "due",
		Status:   domain.PostingStatusActive,
		Deadline: time.Now().Add(-48 * time.Hour),
	}
	postings.postings["fresh"] = &domain.JobPosting{
		ID:       "fresh",
		Status:   domain.PostingStatusActive,
		Deadline: time.Now().Add(48 * time.Hour),
	}
	postings.postings["closed"] = &domain.JobPosting{
		ID:       "closed",
		Status:   domain.PostingStatusClosed,
		Deadline: time.Now().Add(-48 * time.Hour),
	}

	count, err := svc.ExpireDuePostings(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, domain.PostingStatusExpired, postings.postings["due"].Status)
	assert.Equal(t, domain.PostingStatusActive, postings.postings["fresh"].Status)
	assert.Equal(t, domain.PostingStatusClosed, postings.postings["closed"].Status)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventPostingExpired, dispatcher.published[0].Type)
}

func TestUpdatePostingAuthorization(t *testing.T) {
	owner := &domain.User{ID: "user-owner", Role: domain.RoleJobOffer, Active: true}
	stranger := &domain.User{ID: "user-other", Role: domain.RoleJobOffer, Active: true}
	admin := &domain.User{ID: "user-admin", Role: domain.RoleAdmin, Active: true}

	svc, _, _ := newPostingService()
	posting, err := svc.CreatePosting(context.Background(), owner, validPostingInput())
	require.NoError(t, err)

	title := "Senior Backend Engineer"
	_, err = svc.UpdatePosting(context.Background(), stranger, posting.ID, PostingUpdateInput{Title: &title})
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	updated, err := svc.UpdatePosting(context.Background(), admin, posting.ID, PostingUpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	bogus := domain.PostingStatus("archived")
	_, err = svc.UpdatePosting(context.Background(), owner, posting.ID, PostingUpdateInput{Status: &bogus})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidStatus))
}

func TestClosePosting(t *testing.T) {
	owner := &domain.User{ID: "user-owner", Role: domain.RoleJobOffer, Active: true}
	svc, postings, _ := newPostingService()
	posting, err := svc.CreatePosting(context.Background(), owner, validPostingInput())
	require.NoError(t, err)

	closed, err := svc.ClosePosting(context.Background(), owner, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostingStatusClosed, closed.Status)
	assert.Equal(t, domain.PostingStatusClosed, postings.postings[posting.ID].Status)
}

package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/events"
	"github.com/kazi-link/job-portal/internal/repository"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

type fakeApplicationRepo struct {
	applications map[string]*domain.Application
	nextID       int
	failCreate   error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*domain.Application{}}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	for _, existing := range f.applications {
		if existing.ApplicantID == application.ApplicantID &&
			existing.PostingID == application.PostingID &&
			existing.Status != domain.ApplicationStatusWithdrawn {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	application.ID = "app-" + strconv.Itoa(f.nextID)
	application.AppliedAt = time.Now()
	application.UpdatedAt = application.AppliedAt
	clone := *application
	f.applications[application.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, application *domain.Application) error {
	if _, ok := f.applications[application.ID]; !ok {
		return pgx.ErrNoRows
	}
	application.UpdatedAt = time.Now()
	clone := *application
	f.applications[application.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *application
	return &clone, nil
}

func (f *fakeApplicationRepo) GetLiveByApplicantAndPosting(_ context.Context, applicantID, postingID string) (*domain.Application, error) {
	for _, application := range f.applications {
		if application.ApplicantID == applicantID && application.PostingID == postingID &&
			application.Status != domain.ApplicationStatusWithdrawn {
			clone := *application
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.applications[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.applications, id)
	return nil
}

func (f *fakeApplicationRepo) ListWithFilter(_ context.Context, filter repository.ApplicationFilter) ([]domain.Application, error) {
	var result []domain.Application
	for _, application := range f.applications {
		if filter.ApplicantID != nil && application.ApplicantID != *filter.ApplicantID {
			continue
		}
		if filter.PostingID != nil && application.PostingID != *filter.PostingID {
			continue
		}
		result = append(result, *application)
	}
	return result, nil
}

type fakePostingRepo struct {
	postings map[string]*domain.JobPosting
	nextID   int
}

func (f *fakePostingRepo) Create(_ context.Context, posting *domain.JobPosting) error {
	if posting.ID == "" {
		f.nextID++
		posting.ID = "posting-" + strconv.Itoa(f.nextID)
	}
	posting.CreatedAt = time.Now()
	posting.UpdatedAt = posting.CreatedAt
	clone := *posting
	f.postings[posting.ID] = &clone
	return nil
}

func (f *fakePostingRepo) Update(_ context.Context, posting *domain.JobPosting) error {
	clone := *posting
	f.postings[posting.ID] = &clone
	return nil
}

func (f *fakePostingRepo) GetByID(_ context.Context, id string) (*domain.JobPosting, error) {
	posting, ok := f.postings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *posting
	return &clone, nil
}

func (f *fakePostingRepo) Delete(_ context.Context, id string) error {
	delete(f.postings, id)
	return nil
}

func (f *fakePostingRepo) ListWithFilter(_ context.Context, _ repository.PostingFilter) ([]domain.JobPosting, error) {
	return nil, nil
}

func (f *fakePostingRepo) ExpireDue(_ context.Context, today time.Time) ([]domain.JobPosting, error) {
	var expired []domain.JobPosting
	for _, posting := range f.postings {
		if posting.AcceptsApplications() && posting.DeadlinePassed(today) {
			posting.Status = domain.PostingStatusExpired
			expired = append(expired, *posting)
		}
	}
	return expired, nil
}

type fakeSeekerRepo struct {
	profiles map[string]*domain.SeekerProfile
}

func (f *fakeSeekerRepo) Create(_ context.Context, profile *domain.SeekerProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeSeekerRepo) Update(_ context.Context, profile *domain.SeekerProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeSeekerRepo) GetByID(_ context.Context, id string) (*domain.SeekerProfile, error) {
	for _, profile := range f.profiles {
		if profile.ID == id {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeSeekerRepo) GetByUserID(_ context.Context, userID string) (*domain.SeekerProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeSeekerRepo) List(_ context.Context, _, _ int) ([]domain.SeekerProfile, error) {
	return nil, nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

type applicationFixture struct {
	service    *ApplicationService
	apps       *fakeApplicationRepo
	postings   *fakePostingRepo
	seekers    *fakeSeekerRepo
	dispatcher *recordingDispatcher

	applicant *domain.User
	owner     *domain.User
	admin     *domain.User
	posting   *domain.JobPosting
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	applicant := &domain.User{ID: "user-seeker", Role: domain.RoleJobSeeker, Active: true}
	owner := &domain.User{ID: "user-owner", Role: domain.RoleJobOffer, Active: true}
	admin := &domain.User{ID: "user-admin", Role: domain.RoleAdmin, Active: true}

	posting := &domain.JobPosting{
		ID:          "posting-1",
		Title:       "Backend Engineer",
		Status:      domain.PostingStatusActive,
		SalaryRange: "1000-2000",
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		CreatedBy:   owner.ID,
	}

	postings := &fakePostingRepo{postings: map[string]*domain.JobPosting{posting.ID: posting}}
	seekers := &fakeSeekerRepo{profiles: map[string]*domain.SeekerProfile{
		applicant.ID: {
			ID:                  "seeker-1",
			UserID:              applicant.ID,
			FirstName:           "Alice",
			LastName:            "K",
			ExpectedSalaryRange: "1500-3000",
			Active:              true,
		},
	}}
	apps := newFakeApplicationRepo()
	dispatcher := &recordingDispatcher{}

	svc := NewApplicationService(ApplicationDependencies{
		ApplicationRepo: apps,
		PostingRepo:     postings,
		SeekerRepo:      seekers,
		Dispatcher:      dispatcher,
		Logger:          zap.NewNop(),
	})

	return &applicationFixture{
		service:    svc,
		apps:       apps,
		postings:   postings,
		seekers:    seekers,
		dispatcher: dispatcher,
		applicant:  applicant,
		owner:      owner,
		admin:      admin,
		posting:    posting,
	}
}

func (fx *applicationFixture) submit(t *testing.T) *domain.Application {
	t.Helper()
	application, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
	require.NoError(t, err)
	return application
}

func TestSubmitApplication(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)

		assert.Equal(t, domain.ApplicationStatusPending, application.Status)
		require.NotNil(t, application.SeekerProfileID)
		assert.Equal(t, "seeker-1", *application.SeekerProfileID)
		require.Len(t, fx.dispatcher.published, 1)
		assert.Equal(t, events.EventApplicationSubmitted, fx.dispatcher.published[0].Type)
	})

	t.Run("missing profile", func(t *testing.T) {
		fx := newApplicationFixture(t)
		_, err := fx.service.SubmitApplication(context.Background(), fx.owner, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeProfileInactive))
	})

	t.Run("inactive profile", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.seekers.profiles[fx.applicant.ID].Active = false
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeProfileInactive))
	})

	t.Run("closed posting", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.posting.Status = domain.PostingStatusClosed
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodePostingClosed))
	})

	t.Run("draft posting accepts applications", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.posting.Status = domain.PostingStatusDraft
		fx.submit(t)
	})

	t.Run("deadline passed", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.posting.Deadline = time.Now().Add(-72 * time.Hour)
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeDeadlinePassed))
	})

	t.Run("duplicate while pending", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.submit(t)
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyApplied))
	})

	t.Run("resubmit after withdrawal", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.WithdrawApplication(context.Background(), fx.applicant, application.ID)
		require.NoError(t, err)

		second := fx.submit(t)
		assert.NotEqual(t, application.ID, second.ID)
	})

	t.Run("unique violation maps to already applied", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.apps.failCreate = &pgconn.PgError{Code: "23505"}
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyApplied))
	})

	t.Run("salary mismatch blocks", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.posting.SalaryRange = "5000-9000"
		fx.seekers.profiles[fx.applicant.ID].ExpectedSalaryRange = "1000-2000"
		_, err := fx.service.SubmitApplication(context.Background(), fx.applicant, ApplicationSubmitInput{PostingID: fx.posting.ID})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeSalaryMismatch))
	})

	t.Run("unparsable salary never blocks", func(t *testing.T) {
		fx := newApplicationFixture(t)
		fx.posting.SalaryRange = "competitive"
		fx.seekers.profiles[fx.applicant.ID].ExpectedSalaryRange = "negotiable"
		fx.submit(t)
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("owner accepts pending and records reviewer", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)

		feedback := "great fit"
		updated, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, &feedback)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, updated.Status)
		require.NotNil(t, updated.ReviewedBy)
		assert.Equal(t, fx.owner.ID, *updated.ReviewedBy)
		assert.NotNil(t, updated.ReviewedAt)
		require.NotNil(t, updated.Feedback)
		assert.Equal(t, feedback, *updated.Feedback)
	})

	t.Run("applicant cannot accept own application", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)

		_, err := fx.service.TransitionStatus(context.Background(), fx.applicant, application.ID, domain.ApplicationStatusAccepted, nil)
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	})

	t.Run("stranger cannot transition", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)

		stranger := &domain.User{ID: "user-other", Role: domain.RoleJobOffer, Active: true}
		_, err := fx.service.TransitionStatus(context.Background(), stranger, application.ID, domain.ApplicationStatusReviewing, nil)
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.RejectApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		for _, target := range []domain.ApplicationStatus{
			domain.ApplicationStatusPending,
			domain.ApplicationStatusReviewing,
			domain.ApplicationStatusShortlisted,
			domain.ApplicationStatusAccepted,
		} {
			_, err := fx.service.TransitionStatus(context.Background(), fx.owner, application.ID, target, nil)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeIllegalTransition), "target %s", target)
		}
	})

	t.Run("accepted to rejected allowed, accepted to pending not", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		_, err = fx.service.TransitionStatus(context.Background(), fx.owner, application.ID, domain.ApplicationStatusPending, nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeIllegalTransition))

		updated, err := fx.service.RejectApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, updated.Status)
	})

	t.Run("same status is idempotent without event", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.ShortlistApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)
		eventsSoFar := len(fx.dispatcher.published)

		updated, err := fx.service.ShortlistApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)
		assert.Len(t, fx.dispatcher.published, eventsSoFar)
	})

	t.Run("applicant withdraws from shortlisted", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.ShortlistApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		updated, err := fx.service.WithdrawApplication(context.Background(), fx.applicant, application.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusWithdrawn, updated.Status)
	})

	t.Run("applicant cannot withdraw accepted", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		_, err = fx.service.WithdrawApplication(context.Background(), fx.applicant, application.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeIllegalTransition))
	})

	t.Run("owner may withdraw accepted", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		updated, err := fx.service.TransitionStatus(context.Background(), fx.owner, application.ID, domain.ApplicationStatusWithdrawn, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusWithdrawn, updated.Status)
	})

	t.Run("withdrawn cannot be revived by admin", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.WithdrawApplication(context.Background(), fx.applicant, application.ID)
		require.NoError(t, err)

		_, err = fx.service.TransitionStatus(context.Background(), fx.admin, application.ID, domain.ApplicationStatusPending, nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeIllegalTransition))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.TransitionStatus(context.Background(), fx.owner, application.ID, "archived", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidStatus))
	})
}

func TestDeleteApplication(t *testing.T) {
	t.Run("applicant deletes pending", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		require.NoError(t, fx.service.DeleteApplication(context.Background(), fx.applicant, application.ID))
	})

	t.Run("applicant cannot delete accepted", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		err = fx.service.DeleteApplication(context.Background(), fx.applicant, application.ID)
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	})

	t.Run("admin deletes accepted", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		require.NoError(t, fx.service.DeleteApplication(context.Background(), fx.admin, application.ID))
	})

	t.Run("owner cannot delete someone else's application", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		err := fx.service.DeleteApplication(context.Background(), fx.owner, application.ID)
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	})
}

func TestUpdateDocuments(t *testing.T) {
	t.Run("applicant updates while pending", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)

		letter := "updated letter"
		updated, err := fx.service.UpdateDocuments(context.Background(), fx.applicant, application.ID, ApplicationDocumentsInput{CoverLetter: &letter})
		require.NoError(t, err)
		require.NotNil(t, updated.CoverLetter)
		assert.Equal(t, letter, *updated.CoverLetter)
	})

	t.Run("locked after decision", func(t *testing.T) {
		fx := newApplicationFixture(t)
		application := fx.submit(t)
		_, err := fx.service.AcceptApplication(context.Background(), fx.owner, application.ID, nil)
		require.NoError(t, err)

		letter := "too late"
		_, err = fx.service.UpdateDocuments(context.Background(), fx.applicant, application.ID, ApplicationDocumentsInput{CoverLetter: &letter})
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	})
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/events"
	"github.com/kazi-link/job-portal/internal/repository"
	"github.com/kazi-link/job-portal/internal/salary"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

const uniqueViolationCode = "23505"

// reviewerTransitions maps current status to the targets a posting owner or
// admin may set. Rejected and withdrawn have no outgoing edges.
var reviewerTransitions = map[domain.ApplicationStatus][]domain.ApplicationStatus{
	domain.ApplicationStatusPending: {
		domain.ApplicationStatusReviewing,
		domain.ApplicationStatusShortlisted,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	},
	domain.ApplicationStatusReviewing: {
		domain.ApplicationStatusShortlisted,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	},
	domain.ApplicationStatusShortlisted: {
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	},
	domain.ApplicationStatusAccepted: {
		domain.ApplicationStatusRejected,
		domain.ApplicationStatusWithdrawn,
	},
}

// withdrawableStatuses are the states an applicant may withdraw from.
var withdrawableStatuses = map[domain.ApplicationStatus]bool{
	domain.ApplicationStatusPending:     true,
	domain.ApplicationStatusReviewing:   true,
	domain.ApplicationStatusShortlisted: true,
}

// deletableByApplicant are the states an applicant may delete their own
// application in. Admins may delete in any state.
var deletableByApplicant = map[domain.ApplicationStatus]bool{
	domain.ApplicationStatusPending:   true,
	domain.ApplicationStatusRejected:  true,
	domain.ApplicationStatusWithdrawn: true,
}

// ApplicationService coordinates the application lifecycle: eligibility
// checks, submission, status transitions, and deletion.
type ApplicationService struct {
	applications repository.ApplicationRepository
	postings     repository.PostingRepository
	seekers      repository.SeekerRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// ApplicationDependencies bundles collaborators for the application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	PostingRepo     repository.PostingRepository
	SeekerRepo      repository.SeekerRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// ApplicationSubmitInput describes a submission payload.
type ApplicationSubmitInput struct {
	PostingID           string
	CoverLetter         *string
	ResumeKey           *string
	AdditionalDocuments []string
}

// ApplicationDocumentsInput describes a document update payload.
type ApplicationDocumentsInput struct {
	CoverLetter         *string
	ResumeKey           *string
	AdditionalDocuments []string
}

// ApplicationListFilter describes listing filters.
type ApplicationListFilter struct {
	Statuses []domain.ApplicationStatus
	Limit    int
	Offset   int
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		postings:     deps.PostingRepo,
		seekers:      deps.SeekerRepo,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
	}
}

// SubmitApplication runs the eligibility checks in order and creates a
// pending application. Concurrent duplicates race through the database
// unique index; the losing insert surfaces as AlreadyApplied.
func (s *ApplicationService) SubmitApplication(ctx context.Context, applicant *domain.User, input ApplicationSubmitInput) (*domain.Application, error) {
	profile, err := s.seekers.GetByUserID(ctx, applicant.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewProfileInactive()
		}
		return nil, err
	}
	if !profile.Active {
		return nil, apperrors.NewProfileInactive()
	}

	posting, err := s.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job posting", map[string]any{"posting_id": input.PostingID})
		}
		return nil, err
	}
	if !posting.AcceptsApplications() {
		return nil, apperrors.NewPostingClosed(string(posting.Status))
	}

	now := time.Now()
	if posting.DeadlinePassed(now) {
		days := int(now.UTC().Truncate(24*time.Hour).Sub(posting.Deadline.UTC().Truncate(24*time.Hour)).Hours() / 24)
		return nil, apperrors.NewDeadlinePassed(days)
	}

	existing, err := s.applications.GetLiveByApplicantAndPosting(ctx, applicant.ID, posting.ID)
	if err == nil {
		return nil, apperrors.NewAlreadyApplied(string(existing.Status))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.checkSalaryFit(posting, profile); err != nil {
		return nil, err
	}

	profileID := profile.ID
	application := &domain.Application{
		ApplicantID:         applicant.ID,
		PostingID:           posting.ID,
		SeekerProfileID:     &profileID,
		CoverLetter:         trimmedOrNil(input.CoverLetter),
		ResumeKey:           input.ResumeKey,
		AdditionalDocuments: input.AdditionalDocuments,
		Status:              domain.ApplicationStatusPending,
	}
	if application.ResumeKey == nil {
		application.ResumeKey = profile.ResumeKey
	}

	if err := s.applications.Create(ctx, application); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// lost the race against a concurrent submission
			if live, liveErr := s.applications.GetLiveByApplicantAndPosting(ctx, applicant.ID, posting.ID); liveErr == nil {
				return nil, apperrors.NewAlreadyApplied(string(live.Status))
			}
			return nil, apperrors.NewAlreadyApplied(string(domain.ApplicationStatusPending))
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:          events.EventApplicationSubmitted,
		ApplicationID: application.ID,
		Actor:         events.Actor{UserID: applicant.ID, Role: applicant.Role},
		Payload: events.ApplicationSubmittedPayload{
			PostingID:      posting.ID,
			PostingOwnerID: posting.CreatedBy,
			PostingTitle:   posting.Title,
			ApplicantID:    applicant.ID,
			SeekerID:       application.SeekerProfileID,
		},
	})
	return application, nil
}

// TransitionStatus applies a status change on behalf of the actor. The
// applicant may only ever set withdrawn; posting owners and admins follow
// the reviewer transition table. Repeating the current status is an
// idempotent success that refreshes feedback without emitting an event.
func (s *ApplicationService) TransitionStatus(ctx context.Context, actor *domain.User, applicationID string, newStatus domain.ApplicationStatus, feedback *string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(newStatus) {
		return nil, apperrors.NewInvalidStatus(string(newStatus))
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	posting, err := s.postings.GetByID(ctx, application.PostingID)
	if err != nil {
		return nil, err
	}

	// The applicant rule wins even for applicants who hold other roles.
	if application.ApplicantID == actor.ID {
		return s.transitionAsApplicant(ctx, actor, application, newStatus)
	}
	if posting.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not allowed to change this application")
	}
	return s.transitionAsReviewer(ctx, actor, application, posting, newStatus, feedback)
}

func (s *ApplicationService) transitionAsApplicant(ctx context.Context, actor *domain.User, application *domain.Application, newStatus domain.ApplicationStatus) (*domain.Application, error) {
	if newStatus != domain.ApplicationStatusWithdrawn {
		return nil, apperrors.NewForbidden("applicants may only withdraw their application")
	}
	if application.Status == domain.ApplicationStatusWithdrawn {
		return application, nil
	}
	if !withdrawableStatuses[application.Status] {
		return nil, apperrors.NewIllegalTransition(string(application.Status), string(newStatus))
	}

	oldStatus := application.Status
	application.Status = domain.ApplicationStatusWithdrawn
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}
	s.publishStatusChanged(ctx, actor, application, oldStatus, nil)
	return application, nil
}

func (s *ApplicationService) transitionAsReviewer(ctx context.Context, actor *domain.User, application *domain.Application, posting *domain.JobPosting, newStatus domain.ApplicationStatus, feedback *string) (*domain.Application, error) {
	now := time.Now()

	if application.Status == newStatus {
		if feedback != nil {
			application.Feedback = trimmedOrNil(feedback)
			reviewer := actor.ID
			application.ReviewedBy = &reviewer
			application.ReviewedAt = &now
			if err := s.applications.Update(ctx, application); err != nil {
				return nil, err
			}
		}
		return application, nil
	}

	if !transitionAllowed(application.Status, newStatus) {
		return nil, apperrors.NewIllegalTransition(string(application.Status), string(newStatus))
	}

	oldStatus := application.Status
	application.Status = newStatus
	reviewer := actor.ID
	application.ReviewedBy = &reviewer
	application.ReviewedAt = &now
	if feedback != nil {
		application.Feedback = trimmedOrNil(feedback)
	}
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, actor, application, oldStatus, posting)
	return application, nil
}

// AcceptApplication transitions to accepted on behalf of a reviewer.
func (s *ApplicationService) AcceptApplication(ctx context.Context, actor *domain.User, applicationID string, feedback *string) (*domain.Application, error) {
	return s.TransitionStatus(ctx, actor, applicationID, domain.ApplicationStatusAccepted, feedback)
}

// RejectApplication transitions to rejected on behalf of a reviewer.
func (s *ApplicationService) RejectApplication(ctx context.Context, actor *domain.User, applicationID string, feedback *string) (*domain.Application, error) {
	return s.TransitionStatus(ctx, actor, applicationID, domain.ApplicationStatusRejected, feedback)
}

// ShortlistApplication transitions to shortlisted on behalf of a reviewer.
func (s *ApplicationService) ShortlistApplication(ctx context.Context, actor *domain.User, applicationID string, feedback *string) (*domain.Application, error) {
	return s.TransitionStatus(ctx, actor, applicationID, domain.ApplicationStatusShortlisted, feedback)
}

// WithdrawApplication withdraws the actor's own application.
func (s *ApplicationService) WithdrawApplication(ctx context.Context, actor *domain.User, applicationID string) (*domain.Application, error) {
	return s.TransitionStatus(ctx, actor, applicationID, domain.ApplicationStatusWithdrawn, nil)
}

// DeleteApplication removes an application. Applicants may delete their own
// in pending, rejected, or withdrawn state; admins may delete any.
func (s *ApplicationService) DeleteApplication(ctx context.Context, actor *domain.User, applicationID string) error {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() {
		if application.ApplicantID != actor.ID {
			return apperrors.NewForbidden("you are not allowed to delete this application")
		}
		if !deletableByApplicant[application.Status] {
			return apperrors.NewForbidden("applications in this status cannot be deleted")
		}
	}

	if err := s.applications.Delete(ctx, application.ID); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:          events.EventApplicationDeleted,
		ApplicationID: application.ID,
		Actor:         events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ApplicationDeletedPayload{
			PostingID:   application.PostingID,
			ApplicantID: application.ApplicantID,
			LastStatus:  application.Status,
		},
	})
	return nil
}

// UpdateDocuments replaces attachment fields while the application is still
// under review. Only the applicant may update, and only in pending or
// reviewing state.
func (s *ApplicationService) UpdateDocuments(ctx context.Context, actor *domain.User, applicationID string, input ApplicationDocumentsInput) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.ApplicantID != actor.ID {
		return nil, apperrors.NewForbidden("you are not allowed to update this application")
	}
	if application.Status != domain.ApplicationStatusPending && application.Status != domain.ApplicationStatusReviewing {
		return nil, apperrors.NewForbidden("documents can only be updated while the application is under review")
	}

	if input.CoverLetter != nil {
		application.CoverLetter = trimmedOrNil(input.CoverLetter)
	}
	if input.ResumeKey != nil {
		application.ResumeKey = input.ResumeKey
	}
	if input.AdditionalDocuments != nil {
		application.AdditionalDocuments = input.AdditionalDocuments
	}
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// GetApplicationForActor fetches an application visible to the actor:
// applicant, posting owner, or admin.
func (s *ApplicationService) GetApplicationForActor(ctx context.Context, actor *domain.User, applicationID string) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.ApplicantID == actor.ID || actor.IsAdmin() {
		return application, nil
	}
	posting, err := s.postings.GetByID(ctx, application.PostingID)
	if err != nil {
		return nil, err
	}
	if posting.CreatedBy != actor.ID {
		return nil, apperrors.NewForbidden("you are not allowed to view this application")
	}
	return application, nil
}

// ListMyApplications returns the applicant's own applications.
func (s *ApplicationService) ListMyApplications(ctx context.Context, applicantID string, filter ApplicationListFilter) ([]domain.Application, error) {
	return s.applications.ListWithFilter(ctx, repository.ApplicationFilter{
		ApplicantID: &applicantID,
		Statuses:    filter.Statuses,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	})
}

// ListPostingApplications returns applications against one posting for its
// owner or an admin.
func (s *ApplicationService) ListPostingApplications(ctx context.Context, actor *domain.User, postingID string, filter ApplicationListFilter) ([]domain.Application, error) {
	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not allowed to view these applications")
	}
	return s.applications.ListWithFilter(ctx, repository.ApplicationFilter{
		PostingID: &posting.ID,
		Statuses:  filter.Statuses,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
}

// ListAllApplications returns applications across postings, admin only.
func (s *ApplicationService) ListAllApplications(ctx context.Context, actor *domain.User, filter ApplicationListFilter) ([]domain.Application, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("admin access required")
	}
	return s.applications.ListWithFilter(ctx, repository.ApplicationFilter{
		Statuses: filter.Statuses,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

// checkSalaryFit compares the posting's salary floor against the profile's
// expected ceiling. The parser never fails; blank ranges skip the check.
func (s *ApplicationService) checkSalaryFit(posting *domain.JobPosting, profile *domain.SeekerProfile) error {
	postingText := strings.TrimSpace(posting.SalaryRange)
	profileText := strings.TrimSpace(profile.ExpectedSalaryRange)
	if postingText == "" || profileText == "" {
		return nil
	}
	offered := salary.Parse(postingText)
	expected := salary.Parse(profileText)
	if offered.Min > expected.Max {
		if s.logger != nil {
			s.logger.Info("salary mismatch blocked application",
				zap.String("posting_id", posting.ID),
				zap.String("profile_id", profile.ID),
				zap.Float64("posting_min", offered.Min),
				zap.Float64("profile_max", expected.Max))
		}
		return apperrors.NewSalaryMismatch(postingText, profileText)
	}
	return nil
}

func (s *ApplicationService) publishStatusChanged(ctx context.Context, actor *domain.User, application *domain.Application, oldStatus domain.ApplicationStatus, posting *domain.JobPosting) {
	payload := events.ApplicationStatusChangedPayload{
		PostingID:   application.PostingID,
		ApplicantID: application.ApplicantID,
		SeekerID:    application.SeekerProfileID,
		OldStatus:   oldStatus,
		NewStatus:   application.Status,
		Feedback:    application.Feedback,
	}
	if posting != nil {
		payload.PostingOwnerID = posting.CreatedBy
		payload.PostingTitle = posting.Title
	} else if p, err := s.postings.GetByID(ctx, application.PostingID); err == nil {
		payload.PostingOwnerID = p.CreatedBy
		payload.PostingTitle = p.Title
	}
	s.publishEvent(ctx, events.Event{
		Type:          events.EventApplicationStatusChanged,
		ApplicationID: application.ID,
		Actor:         events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload:       payload,
	})
}

func (s *ApplicationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func transitionAllowed(from, to domain.ApplicationStatus) bool {
	for _, allowed := range reviewerTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func trimmedOrNil(text *string) *string {
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

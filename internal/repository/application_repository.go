package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// ApplicationFilter captures application search parameters.
type ApplicationFilter struct {
	ApplicantID    *string
	PostingID      *string
	PostingOwnerID *string
	Statuses       []domain.ApplicationStatus
	Limit          int
	Offset         int
}

// ApplicationRepository encapsulates application persistence. Create relies
// on the partial unique index over live (non-withdrawn) applications, so a
// concurrent duplicate insert surfaces as a unique-violation error.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	Update(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetLiveByApplicantAndPosting(ctx context.Context, applicantID, postingID string) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	ListWithFilter(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, applicant_id, posting_id, seeker_profile_id, cover_letter, resume_key,
               additional_documents, status, feedback, applied_at, updated_at, reviewed_by, reviewed_at`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (applicant_id, posting_id, seeker_profile_id, cover_letter, resume_key,
            additional_documents, status, feedback)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, applied_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		application.ApplicantID,
		application.PostingID,
		application.SeekerProfileID,
		application.CoverLetter,
		application.ResumeKey,
		application.AdditionalDocuments,
		application.Status,
		application.Feedback,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
}

func (r *applicationRepository) Update(ctx context.Context, application *domain.Application) error {
	const query = `
        UPDATE applications SET cover_letter=$1, resume_key=$2, additional_documents=$3, status=$4,
            feedback=$5, reviewed_by=$6, reviewed_at=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		application.CoverLetter,
		application.ResumeKey,
		application.AdditionalDocuments,
		application.Status,
		application.Feedback,
		application.ReviewedBy,
		application.ReviewedAt,
		application.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanApplicationRow(row)
}

// GetLiveByApplicantAndPosting returns the non-withdrawn application for the
// pair, if any. Withdrawn records do not block a resubmission.
func (r *applicationRepository) GetLiveByApplicantAndPosting(ctx context.Context, applicantID, postingID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
        FROM applications
        WHERE applicant_id=$1 AND posting_id=$2 AND status <> 'withdrawn'
        ORDER BY applied_at DESC LIMIT 1`
	row := r.pool.QueryRow(ctx, query, applicantID, postingID)
	return scanApplicationRow(row)
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) ListWithFilter(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	base := `SELECT ` + qualifyColumns("a", applicationColumns) + ` FROM applications a`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.PostingOwnerID != nil {
		base += ` JOIN job_postings p ON p.id = a.posting_id`
		args = append(args, *filter.PostingOwnerID)
		clauses = append(clauses, fmt.Sprintf("p.created_by=$%d", len(args)))
	}
	if filter.ApplicantID != nil {
		args = append(args, *filter.ApplicantID)
		clauses = append(clauses, fmt.Sprintf("a.applicant_id=$%d", len(args)))
	}
	if filter.PostingID != nil {
		args = append(args, *filter.PostingID)
		clauses = append(clauses, fmt.Sprintf("a.posting_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("a.status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY a.applied_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		application, err := scanApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *application)
	}
	return result, rows.Err()
}

func scanApplicationRow(row rowScanner) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.ApplicantID,
		&application.PostingID,
		&application.SeekerProfileID,
		&application.CoverLetter,
		&application.ResumeKey,
		&application.AdditionalDocuments,
		&application.Status,
		&application.Feedback,
		&application.AppliedAt,
		&application.UpdatedAt,
		&application.ReviewedBy,
		&application.ReviewedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func qualifyColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

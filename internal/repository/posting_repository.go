package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// PostingFilter captures posting search parameters.
type PostingFilter struct {
	CreatedBy       *string
	Statuses        []domain.PostingStatus
	CategoryID      *string
	JobTypeID       *string
	ExperienceLevel *domain.ExperienceLevel
	SearchTerm      *string
	Limit           int
	Offset          int
}

// PostingRepository encapsulates job posting persistence.
type PostingRepository interface {
	Create(ctx context.Context, posting *domain.JobPosting) error
	Update(ctx context.Context, posting *domain.JobPosting) error
	GetByID(ctx context.Context, id string) (*domain.JobPosting, error)
	Delete(ctx context.Context, id string) error
	ListWithFilter(ctx context.Context, filter PostingFilter) ([]domain.JobPosting, error)
	ExpireDue(ctx context.Context, today time.Time) ([]domain.JobPosting, error)
}

type postingRepository struct {
	pool *pgxpool.Pool
}

// NewPostingRepository instantiates repository.
func NewPostingRepository(pool *pgxpool.Pool) PostingRepository {
	return &postingRepository{pool: pool}
}

const postingColumns = `id, title, offer_type, company_name, location, job_type_id, category_id,
               experience_level, salary_range, employees_needed, description, requirements,
               responsibilities, benefits, deadline, status, created_by, created_at, updated_at`

func (r *postingRepository) Create(ctx context.Context, posting *domain.JobPosting) error {
	const query = `
        INSERT INTO job_postings (title, offer_type, company_name, location, job_type_id, category_id,
            experience_level, salary_range, employees_needed, description, requirements,
            responsibilities, benefits, deadline, status, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		posting.Title,
		posting.OfferType,
		posting.CompanyName,
		posting.Location,
		posting.JobTypeID,
		posting.CategoryID,
		posting.ExperienceLevel,
		posting.SalaryRange,
		posting.EmployeesNeeded,
		posting.Description,
		posting.Requirements,
		posting.Responsibilities,
		posting.Benefits,
		posting.Deadline,
		posting.Status,
		posting.CreatedBy,
	).Scan(&posting.ID, &posting.CreatedAt, &posting.UpdatedAt)
}

func (r *postingRepository) Update(ctx context.Context, posting *domain.JobPosting) error {
	const query = `
        UPDATE job_postings SET title=$1, offer_type=$2, company_name=$3, location=$4, job_type_id=$5,
            category_id=$6, experience_level=$7, salary_range=$8, employees_needed=$9, description=$10,
            requirements=$11, responsibilities=$12, benefits=$13, deadline=$14, status=$15, updated_at=NOW()
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		posting.Title,
		posting.OfferType,
		posting.CompanyName,
		posting.Location,
		posting.JobTypeID,
		posting.CategoryID,
		posting.ExperienceLevel,
		posting.SalaryRange,
		posting.EmployeesNeeded,
		posting.Description,
		posting.Requirements,
		posting.Responsibilities,
		posting.Benefits,
		posting.Deadline,
		posting.Status,
		posting.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	query := `SELECT ` + postingColumns + ` FROM job_postings WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanPostingRow(row)
}

func (r *postingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postingRepository) ListWithFilter(ctx context.Context, filter PostingFilter) ([]domain.JobPosting, error) {
	base := `SELECT ` + postingColumns + ` FROM job_postings`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		clauses = append(clauses, fmt.Sprintf("created_by=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id=$%d", len(args)))
	}
	if filter.JobTypeID != nil {
		args = append(args, *filter.JobTypeID)
		clauses = append(clauses, fmt.Sprintf("job_type_id=$%d", len(args)))
	}
	if filter.ExperienceLevel != nil {
		args = append(args, *filter.ExperienceLevel)
		clauses = append(clauses, fmt.Sprintf("experience_level=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(description) LIKE %s OR LOWER(location) LIKE %s)", placeholder, placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

// ExpireDue marks active and draft postings past their deadline as expired
// and returns the affected rows.
func (r *postingRepository) ExpireDue(ctx context.Context, today time.Time) ([]domain.JobPosting, error) {
	query := `
        UPDATE job_postings SET status='expired', updated_at=NOW()
        WHERE deadline < $1 AND status IN ('active','draft')
        RETURNING ` + postingColumns
	rows, err := r.pool.Query(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostingRow(row rowScanner) (*domain.JobPosting, error) {
	var posting domain.JobPosting
	if err := row.Scan(
		&posting.ID,
		&posting.Title,
		&posting.OfferType,
		&posting.CompanyName,
		&posting.Location,
		&posting.JobTypeID,
		&posting.CategoryID,
		&posting.ExperienceLevel,
		&posting.SalaryRange,
		&posting.EmployeesNeeded,
		&posting.Description,
		&posting.Requirements,
		&posting.Responsibilities,
		&posting.Benefits,
		&posting.Deadline,
		&posting.Status,
		&posting.CreatedBy,
		&posting.CreatedAt,
		&posting.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &posting, nil
}

func scanPostings(rows pgx.Rows) ([]domain.JobPosting, error) {
	var result []domain.JobPosting
	for rows.Next() {
		posting, err := scanPostingRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *posting)
	}
	return result, rows.Err()
}

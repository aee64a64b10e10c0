package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// CatalogRepository persists the posting taxonomy (categories and job types).
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *domain.JobCategory) error
	GetCategoryByID(ctx context.Context, id string) (*domain.JobCategory, error)
	ListCategories(ctx context.Context) ([]domain.JobCategory, error)
	CreateJobType(ctx context.Context, jobType *domain.JobType) error
	GetJobTypeByID(ctx context.Context, id string) (*domain.JobType, error)
	ListJobTypes(ctx context.Context) ([]domain.JobType, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository instantiates repository.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *domain.JobCategory) error {
	const query = `
        INSERT INTO job_categories (name, description, created_by)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Description,
		category.CreatedBy,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id string) (*domain.JobCategory, error) {
	const query = `SELECT id, name, description, created_by, created_at FROM job_categories WHERE id=$1`
	var category domain.JobCategory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedBy,
		&category.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	const query = `SELECT id, name, description, created_by, created_at FROM job_categories ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobCategory
	for rows.Next() {
		var category domain.JobCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedBy,
			&category.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func (r *catalogRepository) CreateJobType(ctx context.Context, jobType *domain.JobType) error {
	const query = `
        INSERT INTO job_types (name, description, created_by)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		jobType.Name,
		jobType.Description,
		jobType.CreatedBy,
	).Scan(&jobType.ID, &jobType.CreatedAt)
}

func (r *catalogRepository) GetJobTypeByID(ctx context.Context, id string) (*domain.JobType, error) {
	const query = `SELECT id, name, description, created_by, created_at FROM job_types WHERE id=$1`
	var jobType domain.JobType
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&jobType.ID,
		&jobType.Name,
		&jobType.Description,
		&jobType.CreatedBy,
		&jobType.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &jobType, nil
}

func (r *catalogRepository) ListJobTypes(ctx context.Context) ([]domain.JobType, error) {
	const query = `SELECT id, name, description, created_by, created_at FROM job_types ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobType
	for rows.Next() {
		var jobType domain.JobType
		if err := rows.Scan(
			&jobType.ID,
			&jobType.Name,
			&jobType.Description,
			&jobType.CreatedBy,
			&jobType.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, jobType)
	}
	return result, rows.Err()
}

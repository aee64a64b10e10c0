package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// TestimonialRepository encapsulates testimonial persistence.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Testimonial, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository instantiates repository.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (created_by, job, description, first_name, last_name)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		testimonial.CreatedBy,
		testimonial.Job,
		testimonial.Description,
		testimonial.FirstName,
		testimonial.LastName,
	).Scan(&testimonial.ID, &testimonial.CreatedAt)
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	const query = `SELECT id, created_by, job, description, first_name, last_name, created_at
        FROM testimonials WHERE id=$1`
	var testimonial domain.Testimonial
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&testimonial.ID,
		&testimonial.CreatedBy,
		&testimonial.Job,
		&testimonial.Description,
		&testimonial.FirstName,
		&testimonial.LastName,
		&testimonial.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) List(ctx context.Context, limit, offset int) ([]domain.Testimonial, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `SELECT id, created_by, job, description, first_name, last_name, created_at
        FROM testimonials ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Testimonial
	for rows.Next() {
		var testimonial domain.Testimonial
		if err := rows.Scan(
			&testimonial.ID,
			&testimonial.CreatedBy,
			&testimonial.Job,
			&testimonial.Description,
			&testimonial.FirstName,
			&testimonial.LastName,
			&testimonial.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, testimonial)
	}
	return result, rows.Err()
}

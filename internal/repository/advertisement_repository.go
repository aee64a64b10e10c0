package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// AdvertisementRepository encapsulates ad persistence.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *domain.Advertisement) error
	Update(ctx context.Context, ad *domain.Advertisement) error
	GetByID(ctx context.Context, id string) (*domain.Advertisement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Advertisement, error)
}

type advertisementRepository struct {
	pool *pgxpool.Pool
}

// NewAdvertisementRepository instantiates repository.
func NewAdvertisementRepository(pool *pgxpool.Pool) AdvertisementRepository {
	return &advertisementRepository{pool: pool}
}

const adColumns = `id, created_by, title, description, image_key, contact_info, price,
               start_date, end_date, created_at, updated_at`

func (r *advertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	const query = `
        INSERT INTO advertisements (created_by, title, description, image_key, contact_info, price, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ad.CreatedBy,
		ad.Title,
		ad.Description,
		ad.ImageKey,
		ad.ContactInfo,
		ad.Price,
		ad.StartDate,
		ad.EndDate,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
}

func (r *advertisementRepository) Update(ctx context.Context, ad *domain.Advertisement) error {
	const query = `
        UPDATE advertisements SET title=$1, description=$2, image_key=$3, contact_info=$4, price=$5,
            start_date=$6, end_date=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		ad.Title,
		ad.Description,
		ad.ImageKey,
		ad.ContactInfo,
		ad.Price,
		ad.StartDate,
		ad.EndDate,
		ad.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id string) (*domain.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE id=$1`
	var ad domain.Advertisement
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ad.ID,
		&ad.CreatedBy,
		&ad.Title,
		&ad.Description,
		&ad.ImageKey,
		&ad.ContactInfo,
		&ad.Price,
		&ad.StartDate,
		&ad.EndDate,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *advertisementRepository) List(ctx context.Context, limit, offset int) ([]domain.Advertisement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + adColumns + ` FROM advertisements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Advertisement
	for rows.Next() {
		var ad domain.Advertisement
		if err := rows.Scan(
			&ad.ID,
			&ad.CreatedBy,
			&ad.Title,
			&ad.Description,
			&ad.ImageKey,
			&ad.ContactInfo,
			&ad.Price,
			&ad.StartDate,
			&ad.EndDate,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ad)
	}
	return result, rows.Err()
}

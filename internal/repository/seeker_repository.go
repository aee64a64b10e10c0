package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// SeekerRepository encapsulates seeker profile persistence.
type SeekerRepository interface {
	Create(ctx context.Context, profile *domain.SeekerProfile) error
	Update(ctx context.Context, profile *domain.SeekerProfile) error
	GetByID(ctx context.Context, id string) (*domain.SeekerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error)
	List(ctx context.Context, limit, offset int) ([]domain.SeekerProfile, error)
}

type seekerRepository struct {
	pool *pgxpool.Pool
}

// NewSeekerRepository instantiates repository.
func NewSeekerRepository(pool *pgxpool.Pool) SeekerRepository {
	return &seekerRepository{pool: pool}
}

const seekerColumns = `id, user_id, first_name, middle_name, last_name, gender, skills,
               experience_years, education_level, education_sector, resume_key,
               expected_salary_range, active, created_at, updated_at`

func (r *seekerRepository) Create(ctx context.Context, profile *domain.SeekerProfile) error {
	const query = `
        INSERT INTO seeker_profiles (user_id, first_name, middle_name, last_name, gender, skills,
            experience_years, education_level, education_sector, resume_key, expected_salary_range, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.MiddleName,
		profile.LastName,
		profile.Gender,
		profile.Skills,
		profile.ExperienceYears,
		profile.EducationLevel,
		profile.EducationSector,
		profile.ResumeKey,
		profile.ExpectedSalaryRange,
		profile.Active,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *seekerRepository) Update(ctx context.Context, profile *domain.SeekerProfile) error {
	const query = `
        UPDATE seeker_profiles SET first_name=$1, middle_name=$2, last_name=$3, gender=$4, skills=$5,
            experience_years=$6, education_level=$7, education_sector=$8, resume_key=$9,
            expected_salary_range=$10, active=$11, updated_at=NOW()
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		profile.FirstName,
		profile.MiddleName,
		profile.LastName,
		profile.Gender,
		profile.Skills,
		profile.ExperienceYears,
		profile.EducationLevel,
		profile.EducationSector,
		profile.ResumeKey,
		profile.ExpectedSalaryRange,
		profile.Active,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *seekerRepository) GetByID(ctx context.Context, id string) (*domain.SeekerProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+seekerColumns+` FROM seeker_profiles WHERE id=$1`, id)
}

func (r *seekerRepository) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+seekerColumns+` FROM seeker_profiles WHERE user_id=$1`, userID)
}

func (r *seekerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.SeekerProfile, error) {
	var profile domain.SeekerProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FirstName,
		&profile.MiddleName,
		&profile.LastName,
		&profile.Gender,
		&profile.Skills,
		&profile.ExperienceYears,
		&profile.EducationLevel,
		&profile.EducationSector,
		&profile.ResumeKey,
		&profile.ExpectedSalaryRange,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *seekerRepository) List(ctx context.Context, limit, offset int) ([]domain.SeekerProfile, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + seekerColumns + ` FROM seeker_profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SeekerProfile
	for rows.Next() {
		var profile domain.SeekerProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.FirstName,
			&profile.MiddleName,
			&profile.LastName,
			&profile.Gender,
			&profile.Skills,
			&profile.ExperienceYears,
			&profile.EducationLevel,
			&profile.EducationSector,
			&profile.ResumeKey,
			&profile.ExpectedSalaryRange,
			&profile.Active,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}

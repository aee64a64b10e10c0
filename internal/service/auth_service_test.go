package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazi-link/job-portal/internal/config"
	"github.com/kazi-link/job-portal/internal/domain"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = "user-" + strconv.Itoa(f.nextID)
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phoneNumber string) (*domain.User, error) {
	for _, user := range f.users {
		if user.PhoneNumber == phoneNumber {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, nil
}

func newAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60
	cfg.Auth.BcryptCost = 4
	return NewAuthService(cfg, AuthDependencies{UserRepo: users}), users
}

func TestRegisterUser(t *testing.T) {
	t.Run("defaults to job seeker", func(t *testing.T) {
		svc, _ := newAuthService()
		user, token, _, err := svc.RegisterUser(context.Background(), RegisterInput{
			PhoneNumber: "+250780000001",
			Password:    "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleJobSeeker, user.Role)
		assert.True(t, user.Active)
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate phone conflicts", func(t *testing.T) {
		svc, _ := newAuthService()
		_, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{PhoneNumber: "+250780000001", Password: "s3cret"})
		require.NoError(t, err)

		_, _, _, err = svc.RegisterUser(context.Background(), RegisterInput{PhoneNumber: "+250780000001", Password: "other"})
		assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	})

	t.Run("admin role rejected", func(t *testing.T) {
		svc, _ := newAuthService()
		_, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{
			PhoneNumber: "+250780000002",
			Password:    "s3cret",
			Role:        domain.RoleAdmin,
		})
		assert.Error(t, err)
	})

	t.Run("blank phone rejected", func(t *testing.T) {
		svc, _ := newAuthService()
		_, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{PhoneNumber: "  ", Password: "s3cret"})
		assert.Error(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	svc, users := newAuthService()
	registered, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{
		PhoneNumber: "+250780000001",
		Password:    "s3cret",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, _, err := svc.LoginUser(context.Background(), "+250780000001", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.LoginUser(context.Background(), "+250780000001", "wrong")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})

	t.Run("unknown phone", func(t *testing.T) {
		_, _, _, err := svc.LoginUser(context.Background(), "+250780999999", "s3cret")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})

	t.Run("disabled account", func(t *testing.T) {
		users.users[registered.ID].Active = false
		defer func() { users.users[registered.ID].Active = true }()

		_, _, _, err := svc.LoginUser(context.Background(), "+250780000001", "s3cret")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService()
	registered, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{
		PhoneNumber: "+250780000001",
		Password:    "s3cret",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), registered.ID, "wrong", "newpass")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	require.NoError(t, svc.ChangePassword(context.Background(), registered.ID, "s3cret", "newpass"))

	_, _, _, err = svc.LoginUser(context.Background(), "+250780000001", "newpass")
	assert.NoError(t, err)
	_, _, _, err = svc.LoginUser(context.Background(), "+250780000001", "s3cret")
	assert.Error(t, err)
}

func TestSetUserActive(t *testing.T) {
	svc, users := newAuthService()
	registered, _, _, err := svc.RegisterUser(context.Background(), RegisterInput{
		PhoneNumber: "+250780000001",
		Password:    "s3cret",
	})
	require.NoError(t, err)

	user, err := svc.SetUserActive(context.Background(), registered.ID, false)
	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.False(t, users.users[registered.ID].Active)
}

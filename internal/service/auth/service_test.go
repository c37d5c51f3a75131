package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	userRepository "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/user"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/auth/models"
	"github.com/NachoLedesma33/ReservationSystem/pkg/tokens"
)

type fakeUserRepo struct {
	createErr error
	byEmail   *domain.User
	byEmailErr error
	byID      *domain.User
	byIDErr   error

	created *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *user
	created.ID = 42
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func newService(repo *fakeUserRepo) *Service {
	// bcrypt cost 4 чтобы тесты не тормозили
	return NewService(repo, testSecret, time.Hour, 4, nopLogger{})
}

func TestRegister(t *testing.T) {
	validReq := func() *models.RegisterRequest {
		return &models.RegisterRequest{
			Name:     "Ana",
			Email:    "Ana@Example.com",
			Password: "secret123",
		}
	}

	t.Run("registers user and issues token", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := newService(repo)

		resp, err := svc.Register(context.Background(), validReq())
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.UserID)
		require.NotEmpty(t, resp.Token)

		claims, err := tokens.ParseToken(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, string(domain.RoleUser), claims.Role)

		// Email нормализуется, роль всегда user, пароль не хранится открытым
		require.NotNil(t, repo.created)
		assert.Equal(t, "ana@example.com", repo.created.Email)
		assert.Equal(t, domain.RoleUser, repo.created.Role)
		assert.NotEqual(t, "secret123", repo.created.PasswordHash)
		assert.True(t, tokens.CheckPassword(repo.created.PasswordHash, "secret123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepo{createErr: userRepository.ErrEmailTaken}
		svc := newService(repo)

		_, err := svc.Register(context.Background(), validReq())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *models.RegisterRequest)
		}{
			{name: "empty name", mutate: func(r *models.RegisterRequest) { r.Name = "  " }},
			{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }},
			{name: "malformed email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
			{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validReq()
				tt.mutate(req)

				_, err := newService(&fakeUserRepo{}).Register(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := tokens.HashPassword("secret123", 4)
	require.NoError(t, err)

	user := &domain.User{
		ID:           42,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc := newService(&fakeUserRepo{byEmail: user})

		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ana@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.UserID)
		assert.Equal(t, "Ana", resp.Name)
		assert.Equal(t, string(domain.RoleUser), resp.Role)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newService(&fakeUserRepo{byEmail: user})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ana@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		svc := newService(&fakeUserRepo{byEmailErr: userRepository.ErrUserNotFound})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newService(&fakeUserRepo{})

		_, err := svc.Login(context.Background(), &models.LoginRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestProfile(t *testing.T) {
	t.Run("returns profile without password hash", func(t *testing.T) {
		svc := newService(&fakeUserRepo{byID: &domain.User{
			ID:           42,
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
		}})

		resp, err := svc.Profile(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", resp.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newService(&fakeUserRepo{byIDErr: userRepository.ErrUserNotFound})

		_, err := svc.Profile(context.Background(), 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	userRepo "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/user"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/auth/models"
	"github.com/NachoLedesma33/ReservationSystem/pkg/tokens"
)

// minPasswordLength минимальная длина пароля
const minPasswordLength = 6

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo   UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register регистрирует нового пользователя и сразу выпускает access-токен
// Новые пользователи всегда получают роль user, админы создаются отдельно
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := tokens.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email already registered: %s", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := tokens.MakeToken(created.ID, string(created.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user registered successfully id=%d", created.ID)
	return &models.RegisterResponse{
		UserID: created.ID,
		Token:  token,
	}, nil
}

// Login проверяет учетные данные и выпускает access-токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !tokens.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.MakeToken(user.ID, string(user.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user logged in successfully id=%d", user.ID)
	return &models.LoginResponse{
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
		Token:  token,
	}, nil
}

// Profile возвращает профиль пользователя без хэша пароля
func (s *Service) Profile(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Profile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Profile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Profile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// validateRegister валидирует входные данные регистрации
func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	return nil
}

// normalizeEmail приводит email к нижнему регистру без пробелов по краям
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

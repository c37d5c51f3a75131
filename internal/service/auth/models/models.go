package models

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// RegisterResponse ответ на регистрацию: пользователь сразу получает токен
type RegisterResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse ответ на вход
type LoginResponse struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// UserResponse профиль пользователя (без хэша пароля)
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

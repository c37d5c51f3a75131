package login_user

import (
	authModels "github.com/NachoLedesma33/ReservationSystem/internal/service/auth/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *authModels.LoginRequest {
	return &authModels.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

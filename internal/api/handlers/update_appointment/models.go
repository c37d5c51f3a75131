package update_appointment

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	serviceModels "github.com/NachoLedesma33/ReservationSystem/internal/service/appointments/models"
	updateAppointment "github.com/NachoLedesma33/ReservationSystem/internal/usecase/update_appointment"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Все поля опциональны: отсутствующее поле не меняется
type UpdateAppointmentRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Date            *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime       *string `json:"startTime,omitempty"` // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Возвращает ошибку при некорректном формате даты, времени или статуса
func (r *UpdateAppointmentRequest) ToUseCaseRequest(
	id int64,
	principal domain.Principal,
) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:              id,
		Principal:       principal,
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.Status != nil {
		status, ok := serviceModels.ToDomainStatus(*r.Status)
		if !ok {
			return nil, errInvalidStatus
		}
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		Title:           resp.Title,
		Description:     resp.Description,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NachoLedesma33/ReservationSystem/internal/api/middleware"
	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	createAppointment "github.com/NachoLedesma33/ReservationSystem/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var owner = domain.Principal{UserID: 42, Role: domain.RoleUser}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	return req.WithContext(middleware.WithPrincipal(req.Context(), owner))
}

const validBody = `{"title":"Consultation","date":"2025-10-15","startTime":"10:00","durationMinutes":30}`

func TestHandle(t *testing.T) {
	t.Run("creates appointment and returns 201", func(t *testing.T) {
		now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
		uc := &fakeUseCase{
			resp: &createAppointment.Response{
				ID:              100,
				UserID:          42,
				Title:           "Consultation",
				Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          string(domain.StatusPending),
				CreatedAt:       now,
				UpdatedAt:       now,
			},
		}
		h := NewHandler(uc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(validBody))

		require.Equal(t, http.StatusCreated, rec.Code)

		var body AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(100), body.ID)
		assert.Equal(t, "2025-10-15", body.Date)
		assert.Equal(t, "10:00", body.StartTime)
		assert.Equal(t, string(domain.StatusPending), body.Status)

		// Владелец берётся из токена, а не из тела
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(42), uc.gotReq.UserID)
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrSlotConflict}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(validBody))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid input maps to 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrInvalidInput}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(validBody))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json body", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(`{"title":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(`{"title":"X","date":"15-10-2025","startTime":"10:00","durationMinutes":30}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.gotReq)
	})

	t.Run("missing principal maps to 401", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: errors.New("boom")}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(validBody))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

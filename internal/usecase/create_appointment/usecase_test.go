package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	filterErr error
	createErr error

	created *domain.Appointment
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.existing, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID:          42,
		Title:           "Consultation",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
	}
}

func TestExecute(t *testing.T) {
	t.Run("creates appointment on free slot", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		require.NotNil(t, repo.created)
		assert.Equal(t, int64(42), repo.created.UserID)
	})

	t.Run("overlapping appointment causes conflict", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			existing: []*domain.Appointment{
				{ID: 1, StartTime: "10:15", DurationMinutes: 30, Status: domain.StatusConfirmed},
			},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Nil(t, repo.created)
	})

	t.Run("touching appointment does not conflict", func(t *testing.T) {
		// Существующее бронирование заканчивается ровно в 10:00
		repo := &fakeAppointmentRepo{
			existing: []*domain.Appointment{
				{ID: 1, StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
			},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("cancelled appointment does not conflict", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			existing: []*domain.Appointment{
				{ID: 1, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCancelled},
			},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("interval past midnight is invalid input", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		req := validRequest()
		req.StartTime = "23:30"
		req.DurationMinutes = 60

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, repo.created)
	})

	t.Run("repository error maps to internal", func(t *testing.T) {
		repo := &fakeAppointmentRepo{filterErr: errors.New("db down")}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "empty title", mutate: func(r *Request) { r.Title = "   " }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }},
		{name: "negative duration", mutate: func(r *Request) { r.DurationMinutes = -30 }},
		{name: "duration above limit", mutate: func(r *Request) { r.DurationMinutes = domain.MaxDurationMinutes + 1 }},
		{name: "interval past midnight", mutate: func(r *Request) { r.StartTime = "23:30"; r.DurationMinutes = 60 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})
}

func TestHasConflict(t *testing.T) {
	t.Run("interval past end of day returns error", func(t *testing.T) {
		_, err := hasConflict("23:30", 60, nil)
		assert.Error(t, err)
	})
}

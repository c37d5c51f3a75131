package get_day_slots

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
	appointments []*domain.Appointment
	err          error

	gotFilter *domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = &filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns full grid with availability", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{ID: 1, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
			},
		}
		uc := NewUseCase(repo, defaultSchedule, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 16)

		occupied := 0
		for _, slot := range resp.Slots {
			if !slot.Available {
				occupied++
			}
		}
		assert.Equal(t, 2, occupied)

		// Запрашиваются только активные бронирования этой даты
		require.NotNil(t, repo.gotFilter)
		require.NotNil(t, repo.gotFilter.Date)
		assert.True(t, repo.gotFilter.Date.Equal(date))
		assert.False(t, repo.gotFilter.IncludeInactive)
		assert.Nil(t, repo.gotFilter.UserID)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		uc := NewUseCase(&fakeAppointmentRepo{}, defaultSchedule, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error maps to internal", func(t *testing.T) {
		repo := &fakeAppointmentRepo{err: errors.New("db down")}
		uc := NewUseCase(repo, defaultSchedule, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NachoLedesma33/ReservationSystem/internal/access"
	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	appointmentRepository "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/appointment"
	"github.com/NachoLedesma33/ReservationSystem/pkg/ptr"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

type fakeAppointmentRepo struct {
	current   *domain.Appointment
	existing  []*domain.Appointment
	getErr    error
	updateErr error

	filterCalled bool
	gotFilter    *domain.AppointmentsFilter
	updated      *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.current
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filterCalled = true
	f.gotFilter = &filter
	return f.existing, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	copied := *appointment
	copied.UpdatedAt = time.Now()
	f.updated = &copied
	return &copied, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func currentAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		UserID:          42,
		Title:           "Consultation",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}
}

var owner = domain.Principal{UserID: 42, Role: domain.RoleUser}

func TestExecute(t *testing.T) {
	t.Run("title-only change skips conflict check", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: owner,
			Title:     ptr.Ptr("Renamed"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", resp.Title)
		assert.False(t, repo.filterCalled, "no conflict check expected for title change")
	})

	t.Run("status change skips conflict check", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: owner,
			Status:    ptr.Ptr(domain.StatusCancelled),
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.False(t, repo.filterCalled)
	})

	t.Run("time change triggers conflict check excluding self", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: owner,
			StartTime: ptr.Ptr(types.TimeString("11:00")),
		})
		require.NoError(t, err)

		require.True(t, repo.filterCalled)
		require.NotNil(t, repo.gotFilter.ExcludeID)
		assert.Equal(t, int64(1), *repo.gotFilter.ExcludeID)
		assert.False(t, repo.gotFilter.IncludeInactive)
	})

	t.Run("time change with overlap returns conflict", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			current: currentAppointment(),
			existing: []*domain.Appointment{
				{ID: 2, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
			},
		}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:              1,
			Principal:       owner,
			StartTime:       ptr.Ptr(types.TimeString("11:30")),
			DurationMinutes: ptr.Ptr(30),
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Nil(t, repo.updated)
	})

	t.Run("unchanged schedule fields do not trigger check", func(t *testing.T) {
		// Клиент прислал те же дату и время, что уже стоят
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		date := currentAppointment().Date
		_, err := uc.Execute(context.Background(), &Request{
			ID:              1,
			Principal:       owner,
			Date:            &date,
			StartTime:       ptr.Ptr(types.TimeString("10:00")),
			DurationMinutes: ptr.Ptr(30),
		})
		require.NoError(t, err)
		assert.False(t, repo.filterCalled)
	})

	t.Run("reactivating cancelled appointment re-checks conflicts", func(t *testing.T) {
		// Пока бронирование было отменено, слот мог занять кто-то другой
		cancelled := currentAppointment()
		cancelled.Status = domain.StatusCancelled
		repo := &fakeAppointmentRepo{
			current: cancelled,
			existing: []*domain.Appointment{
				{ID: 2, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
			},
		}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: owner,
			Status:    ptr.Ptr(domain.StatusPending),
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.True(t, repo.filterCalled, "reactivation must re-run the conflict check")
		assert.Nil(t, repo.updated)
	})

	t.Run("reactivation into free slot succeeds", func(t *testing.T) {
		cancelled := currentAppointment()
		cancelled.Status = domain.StatusCancelled
		repo := &fakeAppointmentRepo{current: cancelled}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: owner,
			Status:    ptr.Ptr(domain.StatusConfirmed),
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.True(t, repo.filterCalled)
	})

	t.Run("merged interval past midnight is invalid input", func(t *testing.T) {
		// Сама по себе длительность корректна, но вместе с текущим временем
		// начала интервал выходит за полночь
		late := currentAppointment()
		late.StartTime = "23:30"
		repo := &fakeAppointmentRepo{current: late}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:              1,
			Principal:       owner,
			DurationMinutes: ptr.Ptr(60),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, repo.updated)
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: domain.Principal{UserID: 7, Role: domain.RoleUser},
			Title:     ptr.Ptr("Hijack"),
		})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("admin can update any appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        1,
			Principal: domain.Principal{UserID: 99, Role: domain.RoleAdmin},
			Status:    ptr.Ptr(domain.StatusConfirmed),
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("missing appointment maps to not found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{getErr: appointmentRepository.ErrAppointmentNotFound}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:        404,
			Principal: owner,
			Title:     ptr.Ptr("Anything"),
		})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		repo := &fakeAppointmentRepo{current: currentAppointment()}
		uc := NewUseCase(repo, access.NewChecker(), fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ID:              1,
			Principal:       owner,
			DurationMinutes: ptr.Ptr(-10),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

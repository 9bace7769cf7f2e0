package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itolstov/FS-BookingService/internal/domain"
	bookingRepo "github.com/itolstov/FS-BookingService/internal/infra/storage/booking"
	"github.com/itolstov/FS-BookingService/internal/service/bookings/models"
	"github.com/itolstov/FS-BookingService/pkg/ptr"
)

type stubBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	getErr  error
	listErr error

	cancelledID     int64
	cancelledReason string
	cancelErr       error

	updatedID     int64
	updatedStatus domain.BookingStatus
	updateErr     error

	gotFilter domain.BookingsFilter
}

func (r *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	return r.booking, r.getErr
}

func (r *stubBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.gotFilter = filter
	return r.list, r.listErr
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.updatedID = id
	r.updatedStatus = status
	return r.updateErr
}

func (r *stubBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	r.cancelledID = id
	r.cancelledReason = reason
	return r.cancelErr
}

type stubNotifier struct {
	notified *domain.Booking
	reason   string
	err      error
}

func (n *stubNotifier) NotifyBookingCancelled(_ context.Context, booking *domain.Booking, reason string) error {
	n.notified = booking
	n.reason = reason
	return n.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		CustomerName:  "Анна Петрова",
		CustomerPhone: "+79991234567",
		StartTime:     time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	t.Run("returns booking", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "2026-10-15T07:00:00Z", resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &stubBookingRepo{getErr: errors.New("connection refused")}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestList(t *testing.T) {
	t.Run("normalizes status filter", func(t *testing.T) {
		repo := &stubBookingRepo{list: []*domain.Booking{pendingBooking()}}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("Confirmed")})
		require.NoError(t, err)

		require.NotNil(t, repo.gotFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(&stubBookingRepo{}, &stubNotifier{}, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels pending booking and notifies", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		notifier := &stubNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			CancellationReason: "клиент перенёс съёмку",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), repo.cancelledID)
		assert.Equal(t, "клиент перенёс съёмку", repo.cancelledReason)
		require.NotNil(t, notifier.notified)
		assert.Equal(t, "клиент перенёс съёмку", notifier.reason)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusCompleted
		repo := &stubBookingRepo{booking: b}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("notifier failure does not fail cancellation", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		notifier := &stubNotifier{err: errors.New("telegram unreachable")}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
		assert.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("confirms pending booking", func(t *testing.T) {
		confirmed := pendingBooking()
		confirmed.Status = domain.StatusConfirmed
		repo := &stubBookingRepo{booking: confirmed}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("status is case-insensitive", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, "COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := &stubBookingRepo{}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, repo.updatedID)
	})

	t.Run("cancellation via status update rejected", func(t *testing.T) {
		repo := &stubBookingRepo{}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, "cancelled")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, repo.updatedID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubBookingRepo{updateErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &stubNotifier{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 99, "confirmed")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

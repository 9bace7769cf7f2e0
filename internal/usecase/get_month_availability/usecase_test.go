package get_month_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFrom time.Time
	gotTo   time.Time
}

func (r *stubBookingRepo) GetOverlapping(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	r.gotFrom = from
	r.gotTo = to
	return r.bookings, r.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testGrid(t *testing.T) domain.SlotGrid {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return domain.NewSlotGrid(domain.DefaultOpenHour, domain.DefaultLastSlotHour, loc)
}

// msk строит момент времени в зоне студии и возвращает его UTC-эквивалент,
// как он пришёл бы из хранилища
func msk(t *testing.T, grid domain.SlotGrid, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, time.October, day, hour, min, 0, 0, grid.Location).UTC()
}

func newTestUseCase(grid domain.SlotGrid, repo *stubBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, grid, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_MarksBookedHours(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 10, 0),
			EndTime:   msk(t, grid, 15, 12, 0),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	day := resp.Days["2026-10-15"]
	assert.Equal(t, 2, day.BookedSlots)
	assert.Equal(t, 10, day.AvailableSlots)
	assert.Equal(t, 12, day.TotalSlots)

	// Соседний день не затронут
	other := resp.Days["2026-10-16"]
	assert.Equal(t, 0, other.BookedSlots)
	assert.Equal(t, 12, other.AvailableSlots)
}

func TestExecute_PartialHoursRoundToWholeSlots(t *testing.T) {
	grid := testGrid(t)
	// 10:30-11:30 задевает слоты 10 и 11
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 10, 30),
			EndTime:   msk(t, grid, 15, 11, 30),
			Status:    domain.StatusPending,
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Days["2026-10-15"].BookedSlots)
}

func TestExecute_ExactHourEndDoesNotTouchNextSlot(t *testing.T) {
	grid := testGrid(t)
	// 10:00-11:00 занимает только слот 10
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 10, 0),
			EndTime:   msk(t, grid, 15, 11, 0),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Days["2026-10-15"].BookedSlots)
}

func TestExecute_InactiveStatusesDoNotOccupy(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 10, 0),
			EndTime:   msk(t, grid, 15, 11, 0),
			Status:    domain.StatusCancelled,
		},
		{
			StartTime: msk(t, grid, 15, 12, 0),
			EndTime:   msk(t, grid, 15, 13, 0),
			Status:    domain.BookingStatus("COMPLETED"),
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Days["2026-10-15"].BookedSlots)
	assert.Equal(t, 12, resp.Days["2026-10-15"].AvailableSlots)
}

func TestExecute_UnknownStatusOccupies(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 10, 0),
			EndTime:   msk(t, grid, 15, 11, 0),
			Status:    domain.BookingStatus("on_hold"),
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Days["2026-10-15"].BookedSlots)
}

func TestExecute_ZeroDurationClampsToOneHour(t *testing.T) {
	grid := testGrid(t)

	t.Run("on the hour occupies one slot", func(t *testing.T) {
		// Клэмп 14:00-14:00 -> [14:00, 15:00): занят только слот 14
		at := msk(t, grid, 15, 14, 0)
		repo := &stubBookingRepo{bookings: []*domain.Booking{
			{StartTime: at, EndTime: at, Status: domain.StatusConfirmed},
		}}
		uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

		resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Days["2026-10-15"].BookedSlots)
	})

	t.Run("mid hour occupies two slots", func(t *testing.T) {
		// Клэмп 14:30-14:30 -> [14:30, 15:30): обход задевает часы 14 и 15
		at := msk(t, grid, 15, 14, 30)
		repo := &stubBookingRepo{bookings: []*domain.Booking{
			{StartTime: at, EndTime: at, Status: domain.StatusConfirmed},
		}}
		uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

		resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Days["2026-10-15"].BookedSlots)
	})
}

func TestExecute_HoursOutsideGridAreIgnored(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		// 07:00-09:30 задевает сетку только часом 9
		{
			StartTime: msk(t, grid, 15, 7, 0),
			EndTime:   msk(t, grid, 15, 9, 30),
			Status:    domain.StatusConfirmed,
		},
		// 20:30-22:00 задевает сетку только часом 20
		{
			StartTime: msk(t, grid, 16, 20, 30),
			EndTime:   msk(t, grid, 16, 22, 0),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Days["2026-10-15"].BookedSlots)
	assert.Equal(t, 1, resp.Days["2026-10-16"].BookedSlots)
}

func TestExecute_PastDaysAreOmitted(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{}
	// Сегодня 15-е: дни 1-14 не попадают в выдачу, 15-е и дальше - попадают
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 15, 13, 45, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	assert.Len(t, resp.Days, 17)
	assert.NotContains(t, resp.Days, "2026-10-14")
	assert.Contains(t, resp.Days, "2026-10-15")
	assert.Contains(t, resp.Days, "2026-10-31")
}

func TestExecute_FullyBookedDay(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			StartTime: msk(t, grid, 15, 9, 0),
			EndTime:   msk(t, grid, 15, 21, 0),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	day := resp.Days["2026-10-15"]
	assert.Equal(t, 12, day.BookedSlots)
	assert.Equal(t, 0, day.AvailableSlots)
}

func TestExecute_QueriesMonthWindowInUTC(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{}
	uc := newTestUseCase(grid, repo, time.Date(2026, 10, 1, 8, 0, 0, 0, grid.Location))

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	require.NoError(t, err)

	wantFrom := time.Date(2026, 10, 1, 0, 0, 0, 0, grid.Location).UTC()
	wantTo := time.Date(2026, 10, 31, 23, 59, 59, 0, grid.Location).UTC()
	assert.True(t, repo.gotFrom.Equal(wantFrom), "from = %v, want %v", repo.gotFrom, wantFrom)
	assert.True(t, repo.gotTo.Equal(wantTo), "to = %v, want %v", repo.gotTo, wantTo)
	assert.Equal(t, time.UTC, repo.gotFrom.Location())
}

func TestExecute_InvalidPeriod(t *testing.T) {
	grid := testGrid(t)
	uc := newTestUseCase(grid, &stubBookingRepo{}, time.Now())

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero year", &Request{Year: 0, Month: 5}},
		{"negative year", &Request{Year: -1, Month: 5}},
		{"zero month", &Request{Year: 2026, Month: 0}},
		{"month 13", &Request{Year: 2026, Month: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	grid := testGrid(t)
	repo := &stubBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(grid, repo, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 10})
	assert.ErrorIs(t, err, ErrInternal)
}

package get_month_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itolstov/FS-BookingService/internal/domain"
	getMonthAvailability "github.com/itolstov/FS-BookingService/internal/usecase/get_month_availability"
)

type stubUseCase struct {
	resp *getMonthAvailability.Response
	err  error

	gotReq *getMonthAvailability.Request
}

func (uc *stubUseCase) Execute(_ context.Context, req *getMonthAvailability.Request) (*getMonthAvailability.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getMonthAvailability.Response{
		Days: map[string]domain.DayAvailability{
			"2026-10-15": {Date: "2026-10-15", AvailableSlots: 10, TotalSlots: 12, BookedSlots: 2},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/month-availability?year=2026&month=10", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 2026, uc.gotReq.Year)
	assert.Equal(t, 10, uc.gotReq.Month)

	// Плоский объект: ключ - дата, значения в snake_case
	var body map[string]map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	day, ok := body["2026-10-15"]
	require.True(t, ok)
	assert.Equal(t, 10, day["available_slots"])
	assert.Equal(t, 12, day["total_slots"])
	assert.Equal(t, 2, day["booked_slots"])
}

func TestHandle_EmptyMonth(t *testing.T) {
	uc := &stubUseCase{resp: &getMonthAvailability.Response{Days: map[string]domain.DayAvailability{}}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/month-availability?year=2026&month=10", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

// У эндпоинта нет 400-ответа: некорректные параметры отдаются как 500
func TestHandle_MalformedParamsRespond500(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"year not a number", "?year=abc&month=10"},
		{"month not a number", "?year=2026&month=oops"},
		{"missing year", "?month=10"},
		{"missing month", "?year=2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/month-availability"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Nil(t, uc.gotReq, "use case must not be called")

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["detail"], "Internal server error: ")
		})
	}
}

func TestHandle_UseCaseErrorResponds500(t *testing.T) {
	uc := &stubUseCase{err: getMonthAvailability.ErrInvalidPeriod}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/month-availability?year=2026&month=12", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "Internal server error: ")
}

package get_day_details

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itolstov/FS-BookingService/internal/domain"
	getDayDetails "github.com/itolstov/FS-BookingService/internal/usecase/get_day_details"
)

type stubUseCase struct {
	resp *getDayDetails.Response
	err  error

	gotReq *getDayDetails.Request
}

func (uc *stubUseCase) Execute(_ context.Context, req *getDayDetails.Request) (*getDayDetails.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func dayResponse(date time.Time) *getDayDetails.Response {
	slots := make([]domain.Slot, 0, 12)
	for h := domain.DefaultOpenHour; h <= domain.DefaultLastSlotHour; h++ {
		slots = append(slots, domain.Slot{Hour: h, Available: h != 10})
	}
	return &getDayDetails.Response{Date: date, Slots: slots}
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: dayResponse(date)}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/day-details?date=2026-10-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, date, uc.gotReq.Date)

	var body struct {
		Date  string `json:"date"`
		Slots []struct {
			Time      string `json:"time"`
			Available bool   `json:"available"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2026-10-15", body.Date)
	require.Len(t, body.Slots, 12)
	assert.Equal(t, "09:00", body.Slots[0].Time)
	assert.Equal(t, "20:00", body.Slots[11].Time)
	assert.True(t, body.Slots[0].Available)
	assert.False(t, body.Slots[1].Available) // 10:00 занят
}

func TestHandle_InvalidDateResponds400(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{"missing date", ""},
		{"wrong format", "15.10.2026"},
		{"garbage", "not-a-date"},
		{"month out of range", "2026-13-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/day-details?date="+tt.dateStr, nil)
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq, "use case must not be called")

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, strings.HasPrefix(body["detail"], "Invalid date format: "),
				"detail = %q", body["detail"])
		})
	}
}

func TestHandle_UseCaseErrorResponds500(t *testing.T) {
	uc := &stubUseCase{err: getDayDetails.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/day-details?date=2026-10-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "Internal server error: ")
}

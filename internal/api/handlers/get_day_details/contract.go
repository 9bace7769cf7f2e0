package get_day_details

import (
	"context"

	getDayDetails "github.com/itolstov/FS-BookingService/internal/usecase/get_day_details"
)

type GetDayDetailsUseCase interface {
	Execute(ctx context.Context, req *getDayDetails.Request) (*getDayDetails.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_leave

import (
	"context"

	cancelLeave "github.com/m04kA/SMC-VenueService/internal/usecase/cancel_leave"
)

type CancelLeaveUseCase interface {
	Execute(ctx context.Context, req *cancelLeave.Request) (*cancelLeave.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package review_leave

import (
	"context"

	reviewLeave "github.com/m04kA/SMC-VenueService/internal/usecase/review_leave"
)

type ReviewLeaveUseCase interface {
	Execute(ctx context.Context, req *reviewLeave.Request) (*reviewLeave.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

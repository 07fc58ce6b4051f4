package submit_leave

import (
	"context"

	submitLeave "github.com/m04kA/SMC-VenueService/internal/usecase/submit_leave"
)

type SubmitLeaveUseCase interface {
	Execute(ctx context.Context, req *submitLeave.Request) (*submitLeave.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package assign_staff

import (
	"context"

	assignStaff "github.com/m04kA/SMC-VenueService/internal/usecase/assign_staff"
)

type AssignStaffUseCase interface {
	ExecuteMultiple(ctx context.Context, req *assignStaff.MultipleRequest) (*assignStaff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

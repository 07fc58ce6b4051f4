package list_leave_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/leave"
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidParams  = "некорректные параметры запроса"
	msgNotFound       = "сотрудник не найден"
)

type Handler struct {
	service LeaveService
	logger  Logger
}

func NewHandler(service LeaveService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/leave-requests
// Query params: status, leaveType, year (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}
	year, err := handlers.QueryInt(r, "year")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListForStaff(r.Context(), &models.ListLeaveRequestsRequest{
		StaffID:   staffID,
		Status:    handlers.QueryString(r, "status"),
		LeaveType: handlers.QueryString(r, "leaveType"),
		Year:      year,
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leave.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /staff/{id}/leave-requests - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_leave_balance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/leave"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
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

// Handle GET /api/v1/staff/{staffId}/leave-balance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetBalance(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, leave.ErrStaffNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /staff/{id}/leave-balance - Failed: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_leave_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/leave"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
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

// Handle GET /api/v1/leave-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /leave-requests/{id} - Failed: request_id=%d, error=%v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_pending_leave

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/leave"
)

const msgInvalidStage = "stage должен быть одним из: any, awaiting_hr, awaiting_head, awaiting_second"

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

// Handle GET /api/v1/leave-requests/pending
// Query params: stage (опционально, по умолчанию any)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stage := r.URL.Query().Get("stage")

	result, err := h.service.ListPending(r.Context(), stage)
	if err != nil {
		if errors.Is(err, leave.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStage)
			return
		}
		h.logger.Error("GET /leave-requests/pending - Failed: stage=%q, error=%v", stage, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

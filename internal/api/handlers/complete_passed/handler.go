package complete_passed

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	service BookingService
	clock   Clock
	logger  Logger
}

func NewHandler(service BookingService, clock Clock, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/complete-passed
// Query params: date (по умолчанию сегодня), dryRun
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	dryRun, err := handlers.QueryBool(r, "dryRun")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	today := h.clock.Today()
	if date != nil {
		today = *date
	}

	report, err := h.service.CompletePassed(r.Context(), today, dryRun)
	if err != nil {
		h.logger.Error("POST /admin/bookings/complete-passed - Failed: date=%s, error=%v", today, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/complete-passed - date=%s, dry_run=%t, count=%d", today, dryRun, report.Count())
	handlers.RespondJSON(w, http.StatusOK, report)
}

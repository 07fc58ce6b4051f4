package staff_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidPeriod  = "некорректный период: ожидаются startDate и endDate в формате YYYY-MM-DD, startDate <= endDate"
	msgNotFound       = "сотрудник не найден"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability
// Query params: startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	start, end, err := handlers.QueryPeriod(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	period, err := domain.NewDateRange(start, end)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	summary, err := h.resolver.Summary(r.Context(), staffID, period)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /staff/{id}/availability - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSummary(summary, period))
}

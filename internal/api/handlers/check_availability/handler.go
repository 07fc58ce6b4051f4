package check_availability

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

const (
	msgInvalidKind   = "тип ресурса должен быть space или staff"
	msgInvalidID     = "некорректный ID ресурса"
	msgInvalidPeriod = "некорректный период: ожидаются startDate и endDate в формате YYYY-MM-DD, startDate <= endDate"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	checker ConflictChecker
	logger  Logger
}

func NewHandler(checker ConflictChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{kind}/{resourceId}
// Query params: startDate, endDate, excludeBookingId (опционально)
// Учитываются только пересечения с бронированиями; флаг доступности ресурса не проверяется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseResourceKind(mux.Vars(r)["kind"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}
	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
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
	exclude, err := handlers.QueryInt64(r, "excludeBookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	ref := domain.ResourceRef{Kind: kind, ID: resourceID}
	conflict, err := h.checker.HasConflict(r.Context(), ref, period, exclude)
	if err != nil {
		h.logger.Error("GET /availability/%s/{id} - Failed to check conflicts: resource=%s, error=%v", kind, ref, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		ResourceKind:     string(kind),
		ResourceID:       resourceID,
		StartDate:        period.Start.String(),
		EndDate:          period.End.String(),
		ExcludeBookingID: exclude,
		Available:        !conflict,
	})
}

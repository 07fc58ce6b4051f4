package list_conflicts

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

// ConflictsResponse бронирования ресурса, пересекающиеся с периодом
type ConflictsResponse struct {
	ResourceKind string                      `json:"resourceKind"`
	ResourceID   int64                       `json:"resourceId"`
	Conflicts    []handlers.ConflictResponse `json:"conflicts"`
}

type Handler struct {
	lister ConflictLister
	logger Logger
}

func NewHandler(lister ConflictLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/v1/availability/{kind}/{resourceId}/conflicts
// Query params: startDate, endDate, excludeBookingId (опционально)
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
	conflicts, err := h.lister.ListConflicts(r.Context(), ref, period, exclude)
	if err != nil {
		h.logger.Error("GET /availability/%s/{id}/conflicts - Failed: resource=%s, error=%v", kind, ref, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ConflictsResponse{
		ResourceKind: string(kind),
		ResourceID:   resourceID,
		Conflicts:    handlers.FromDomainConflicts(conflicts),
	})
}

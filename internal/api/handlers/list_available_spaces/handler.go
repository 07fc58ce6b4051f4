package list_available_spaces

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

const (
	msgInvalidPeriod   = "некорректный период: ожидаются startDate и endDate в формате YYYY-MM-DD, startDate <= endDate"
	msgInvalidCapacity = "minCapacity должно быть неотрицательным числом"
)

// AvailableSpacesResponse площадки, свободные в периоде
type AvailableSpacesResponse struct {
	StartDate string                   `json:"startDate"`
	EndDate   string                   `json:"endDate"`
	Spaces    []handlers.SpaceResponse `json:"spaces"`
}

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

// Handle GET /api/v1/spaces/available
// Query params: startDate, endDate, minCapacity (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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
	minCapacity, err := handlers.QueryInt(r, "minCapacity")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCapacity)
		return
	}

	spaces, err := h.resolver.ListAvailableSpaces(r.Context(), period, minCapacity)
	if err != nil {
		h.logger.Error("GET /spaces/available - Failed: period=%s, error=%v", period, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailableSpacesResponse{
		StartDate: period.Start.String(),
		EndDate:   period.End.String(),
		Spaces:    handlers.FromDomainSpaceList(spaces),
	})
}

package list_available_staff

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

const (
	msgInvalidPeriod = "некорректный период: ожидаются startDate и endDate в формате YYYY-MM-DD, startDate <= endDate"
	msgInvalidParams = "некорректные параметры запроса"
)

// AvailableStaffResponse сотрудники, свободные в периоде
type AvailableStaffResponse struct {
	StartDate string                   `json:"startDate"`
	EndDate   string                   `json:"endDate"`
	Staff     []handlers.StaffResponse `json:"staff"`
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

// Handle GET /api/v1/staff/available
// Query params: startDate, endDate, specialization (опционально), excludeBookingId (опционально)
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
	exclude, err := handlers.QueryInt64(r, "excludeBookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	staff, err := h.resolver.ListAvailableStaff(r.Context(), period, handlers.QueryString(r, "specialization"), exclude)
	if err != nil {
		h.logger.Error("GET /staff/available - Failed: period=%s, error=%v", period, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailableStaffResponse{
		StartDate: period.Start.String(),
		EndDate:   period.End.String(),
		Staff:     handlers.FromDomainStaffList(staff),
	})
}

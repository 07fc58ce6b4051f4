package suggest_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

// SuggestionsResponse сотрудники, которых можно назначить на бронирование
type SuggestionsResponse struct {
	BookingID int64                    `json:"bookingId"`
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

// Handle GET /api/v1/bookings/{bookingId}/suggested-staff
// Query params: specialization (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staff, err := h.resolver.SuggestForBooking(r.Context(), bookingID, handlers.QueryString(r, "specialization"))
	if err != nil {
		if errors.Is(err, availability.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id}/suggested-staff - Failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SuggestionsResponse{
		BookingID: bookingID,
		Staff:     handlers.FromDomainStaffList(staff),
	})
}

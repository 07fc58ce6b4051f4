package staff_for_booking

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

// StaffItem сотрудник с доступностью на даты бронирования
type StaffItem struct {
	handlers.StaffResponse
	IsAvailableForBooking bool `json:"isAvailableForBooking"`
	IsAssigned            bool `json:"isAssigned"`
}

// StaffForBookingResponse HTTP response model
type StaffForBookingResponse struct {
	BookingID int64       `json:"bookingId"`
	Staff     []StaffItem `json:"staff"`
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

// Handle GET /api/v1/bookings/{bookingId}/staff-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	items, err := h.resolver.StaffForBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, availability.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id}/staff-availability - Failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &StaffForBookingResponse{BookingID: bookingID, Staff: make([]StaffItem, 0, len(items))}
	for _, item := range items {
		resp.Staff = append(resp.Staff, StaffItem{
			StaffResponse:         handlers.FromDomainStaff(item.Staff),
			IsAvailableForBooking: item.IsAvailable,
			IsAssigned:            item.IsAssigned,
		})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

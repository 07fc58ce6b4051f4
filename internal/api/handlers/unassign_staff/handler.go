package unassign_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings"
)

const (
	msgInvalidID          = "некорректный ID бронирования или сотрудника"
	msgBookingNotFound    = "бронирование не найдено"
	msgAssignmentNotFound = "сотрудник не назначен на это бронирование"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.UnassignStaff(r.Context(), bookingID, staffID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /bookings/{id}/staff/{staffId} - Not assigned: booking_id=%d, staff_id=%d",
				bookingID, staffID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id}/staff/{staffId} - Failed to unassign: booking_id=%d, staff_id=%d, error=%v",
				bookingID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/staff/{staffId} - Staff unassigned: booking_id=%d, staff_id=%d", bookingID, staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

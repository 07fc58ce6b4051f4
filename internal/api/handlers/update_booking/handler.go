package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgSpaceNotFound      = "площадка не найдена"
	msgCannotReschedule   = "завершенное или отмененное бронирование нельзя перенести"
	msgSpaceInactive      = "площадка недоступна для бронирования"
	msgSpaceUnavailable   = "площадка занята в выбранные даты"
	msgStaffUnavailable   = "назначенный сотрудник занят в новые даты"
	msgConcurrentUpdate   = "данные изменились параллельно, повторите запрос"
	msgInvalidChanges     = "некорректные изменения бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrSpaceNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Space not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, updateBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id} - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgCannotReschedule)

		case errors.Is(err, updateBooking.ErrSpaceInactive):
			handlers.RespondConflict(w, msgSpaceInactive)

		case errors.Is(err, updateBooking.ErrSpaceUnavailable):
			h.logger.Warn("PATCH /bookings/{id} - Space unavailable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSpaceUnavailable)

		case errors.Is(err, updateBooking.ErrStaffUnavailable):
			h.logger.Warn("PATCH /bookings/{id} - Staff unavailable: booking_id=%d, %v", bookingID, err)
			handlers.RespondConflict(w, msgStaffUnavailable)

		case errors.Is(err, updateBooking.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidChanges+": "+err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%d, staff_rechecked=%d",
		bookingID, len(result.CheckedStaffIDs))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}

package assign_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	assignStaff "github.com/m04kA/SMC-VenueService/internal/usecase/assign_staff"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStaffTarget        = "укажите либо staffId, либо список staff"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgStaffNotFound      = "сотрудник не найден"
	msgBookingCancelled   = "нельзя назначить сотрудника на отмененное бронирование"
	msgAlreadyAssigned    = "сотрудник уже назначен на это бронирование"
	msgStaffUnavailable   = "сотрудник недоступен в даты бронирования"
	msgConcurrentUpdate   = "данные изменились параллельно, повторите запрос"
)

type Handler struct {
	useCase AssignStaffUseCase
	logger  Logger
}

func NewHandler(useCase AssignStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/staff - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/staff - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.HasSingleTarget() {
		handlers.RespondBadRequest(w, msgStaffTarget)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.ExecuteMultiple(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, assignStaff.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/staff - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignStaff.ErrStaffNotFound):
			h.logger.Warn("POST /bookings/{id}/staff - %v", err)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, assignStaff.ErrBookingCancelled):
			handlers.RespondUnprocessable(w, msgBookingCancelled)

		case errors.Is(err, assignStaff.ErrAlreadyAssigned):
			h.logger.Warn("POST /bookings/{id}/staff - %v", err)
			handlers.RespondConflict(w, msgAlreadyAssigned)

		case errors.Is(err, assignStaff.ErrStaffUnavailable):
			h.logger.Warn("POST /bookings/{id}/staff - %v", err)
			handlers.RespondConflict(w, msgStaffUnavailable)

		case errors.Is(err, assignStaff.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, assignStaff.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/staff - Failed to assign staff: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/staff - Staff assigned: booking_id=%d, count=%d, user_id=%d",
		bookingID, len(result.Assignments), userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

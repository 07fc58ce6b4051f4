package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "площадка не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgSpaceInactive      = "площадка недоступна для бронирования"
	msgSpaceUnavailable   = "площадка занята в выбранные даты"
	msgStaffUnavailable   = "сотрудник недоступен в выбранные даты"
	msgConcurrentUpdate   = "данные изменились параллельно, повторите запрос"
	msgInvalidBooking     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: %v", err)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrSpaceInactive):
			h.logger.Warn("POST /bookings - Space inactive: space_id=%d", req.SpaceID)
			handlers.RespondConflict(w, msgSpaceInactive)

		case errors.Is(err, createBooking.ErrSpaceUnavailable):
			h.logger.Warn("POST /bookings - Space unavailable: space_id=%d, period=%s..%s",
				req.SpaceID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgSpaceUnavailable)

		case errors.Is(err, createBooking.ErrStaffUnavailable):
			h.logger.Warn("POST /bookings - Staff unavailable: %v", err)
			handlers.RespondConflict(w, msgStaffUnavailable)

		case errors.Is(err, createBooking.ErrConcurrentUpdate):
			h.logger.Warn("POST /bookings - Concurrent update: %v", err)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking+": "+err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, space_id=%d, error=%v",
				userID, req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, space_id=%d, user_id=%d",
		result.Booking.ID, result.Booking.SpaceID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

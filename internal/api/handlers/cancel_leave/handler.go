package cancel_leave

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
	cancelLeave "github.com/m04kA/SMC-VenueService/internal/usecase/cancel_leave"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "заявка не найдена"
	msgForbidden          = "отменить заявку может только сам сотрудник"
	msgCannotCancel       = "заявка не может быть отменена"
	msgConcurrentUpdate   = "заявка изменилась параллельно, повторите запрос"
)

// CancelLeaveRequest HTTP request model
type CancelLeaveRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type Handler struct {
	useCase CancelLeaveUseCase
	logger  Logger
}

func NewHandler(useCase CancelLeaveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leave-requests/{requestId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelLeaveRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		if err := handlers.Validate(&req); err != nil {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &cancelLeave.Request{
		UserID:         userID,
		LeaveRequestID: requestID,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelLeave.ErrLeaveRequestNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelLeave.ErrAccessDenied):
			h.logger.Warn("POST /leave-requests/{id}/cancel - Forbidden: request_id=%d, user_id=%d", requestID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelLeave.ErrCannotCancel):
			handlers.RespondUnprocessable(w, msgCannotCancel)

		case errors.Is(err, cancelLeave.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, cancelLeave.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /leave-requests/{id}/cancel - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leave-requests/{id}/cancel - request_id=%d cancelled by user_id=%d", requestID, userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainLeaveRequest(result.LeaveRequest))
}

package submit_leave

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	submitLeave "github.com/m04kA/SMC-VenueService/internal/usecase/submit_leave"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgStaffNotFound       = "сотрудник не найден"
	msgForbidden           = "заявку может подать только сам сотрудник"
	msgInsufficientBalance = "недостаточно дней отпуска"
	msgOverlappingLeave    = "период пересекается с уже одобренным отпуском"
	msgConcurrentUpdate    = "данные изменились параллельно, повторите запрос"
	msgInvalidLeave        = "некорректная заявка на отпуск"
)

type Handler struct {
	useCase SubmitLeaveUseCase
	logger  Logger
}

func NewHandler(useCase SubmitLeaveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leave-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /leave-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitLeaveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leave-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, submitLeave.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, submitLeave.ErrAccessDenied):
			h.logger.Warn("POST /leave-requests - Access denied: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitLeave.ErrInsufficientBalance):
			h.logger.Warn("POST /leave-requests - %v", err)
			handlers.RespondUnprocessable(w, msgInsufficientBalance)

		case errors.Is(err, submitLeave.ErrOverlappingLeave):
			h.logger.Warn("POST /leave-requests - %v", err)
			handlers.RespondConflict(w, msgOverlappingLeave)

		case errors.Is(err, submitLeave.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, submitLeave.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLeave+": "+err.Error())

		default:
			h.logger.Error("POST /leave-requests - Failed to submit: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leave-requests - Leave request submitted: id=%d, staff_id=%d, days=%d",
		result.LeaveRequest.ID, req.StaffID, result.LeaveRequest.TotalDays)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

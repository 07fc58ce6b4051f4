package review_leave

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
	reviewLeave "github.com/m04kA/SMC-VenueService/internal/usecase/review_leave"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "заявка не найдена"
	msgNotReviewable      = "заявка уже рассмотрена на этом этапе или больше не ожидает решения"
	msgSelfReview         = "нельзя рассматривать собственную заявку"
	msgNotHRReviewer      = "этап HR рассматривает только администратор"
	msgNotDepartmentHead  = "этап руководителя рассматривает только глава отдела сотрудника"
	msgConcurrentUpdate   = "заявка изменилась параллельно, повторите запрос"
	msgInvalidReview      = "некорректное решение по заявке"
)

type Handler struct {
	useCase ReviewLeaveUseCase
	logger  Logger
}

func NewHandler(useCase ReviewLeaveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leave-requests/{requestId}/review
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
	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		role = domain.RoleStaff
	}

	var req ReviewLeaveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leave-requests/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(domain.Reviewer{UserID: userID, Role: role}, requestID))
	if err != nil {
		switch {
		case errors.Is(err, reviewLeave.ErrLeaveRequestNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviewLeave.ErrNotReviewable):
			h.logger.Warn("POST /leave-requests/{id}/review - %v", err)
			handlers.RespondUnprocessable(w, msgNotReviewable)

		case errors.Is(err, reviewLeave.ErrSelfReview):
			h.logger.Warn("POST /leave-requests/{id}/review - Forbidden: request_id=%d, user_id=%d", requestID, userID)
			handlers.RespondForbidden(w, msgSelfReview)

		case errors.Is(err, reviewLeave.ErrNotHRReviewer):
			h.logger.Warn("POST /leave-requests/{id}/review - Forbidden: request_id=%d, user_id=%d, role=%s", requestID, userID, role)
			handlers.RespondForbidden(w, msgNotHRReviewer)

		case errors.Is(err, reviewLeave.ErrNotDepartmentHead):
			h.logger.Warn("POST /leave-requests/{id}/review - Forbidden: request_id=%d, user_id=%d, role=%s", requestID, userID, role)
			handlers.RespondForbidden(w, msgNotDepartmentHead)

		case errors.Is(err, reviewLeave.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, reviewLeave.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReview+": "+err.Error())

		default:
			h.logger.Error("POST /leave-requests/{id}/review - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leave-requests/{id}/review - request_id=%d, stage=%s, decision=%s, status=%s",
		requestID, req.Stage, req.Decision, result.LeaveRequest.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainLeaveRequest(result.LeaveRequest))
}

package adjust_leave_balance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/service/leave"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "сотрудник не найден"
	msgDuplicate          = "корректировка с таким ключом уже записана"
	msgConcurrentUpdate   = "остаток изменился параллельно, повторите запрос"
)

type Handler struct {
	service LeaveService
	logger  Logger
}

func NewHandler(service LeaveService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/{staffId}/leave-balance/adjustments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AdjustBalanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.AdjustBalance(r.Context(), req.ToServiceRequest(userID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leave.ErrDuplicateAdjustment):
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, leave.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, leave.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /staff/{id}/leave-balance/adjustments - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/leave-balance/adjustments - staff_id=%d, type=%s, delta=%d, actor=%d",
		staffID, req.LeaveType, req.Delta, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

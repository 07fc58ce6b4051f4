package review_leave

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrLeaveRequestNotFound = fmt.Errorf("review_leave: leave request not found: %w", domain.ErrNotFound)

	// ErrNotReviewable возвращается, когда заявка не в ожидании или этап уже рассмотрен
	ErrNotReviewable = fmt.Errorf("review_leave: %w", domain.ErrInvalidStateTransition)

	// ErrSelfReview возвращается при попытке рассмотреть собственную заявку
	ErrSelfReview = fmt.Errorf("review_leave: staff cannot review their own leave request: %w", domain.ErrAccessDenied)

	// ErrNotHRReviewer возвращается, когда этап HR рассматривает не администратор
	ErrNotHRReviewer = fmt.Errorf("review_leave: only admin can review at hr stage: %w", domain.ErrAccessDenied)

	// ErrNotDepartmentHead возвращается, когда этап руководителя рассматривает не глава отдела сотрудника
	ErrNotDepartmentHead = fmt.Errorf("review_leave: only the head of the staff member's department can review at head stage: %w", domain.ErrAccessDenied)

	ErrConcurrentUpdate = fmt.Errorf("review_leave: concurrent update, retry the request: %w", domain.ErrConflict)
	ErrInvalidInput     = fmt.Errorf("review_leave: %w", domain.ErrInvalidInput)
	ErrInternal         = errors.New("review_leave: internal error")
)

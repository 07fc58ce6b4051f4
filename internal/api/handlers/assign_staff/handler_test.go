package assign_staff

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	assignStaff "github.com/m04kA/SMC-VenueService/internal/usecase/assign_staff"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
)

type fakeUseCase struct {
	got *assignStaff.MultipleRequest
	err error
}

func (f *fakeUseCase) ExecuteMultiple(_ context.Context, req *assignStaff.MultipleRequest) (*assignStaff.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	resp := &assignStaff.Response{BookingID: req.BookingID}
	for _, item := range req.Staff {
		resp.Assignments = append(resp.Assignments, &domain.Assignment{
			BookingID: req.BookingID,
			StaffID:   item.StaffID,
			Role:      item.Role,
			CreatedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		})
	}
	return resp, nil
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/7/staff", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "7"})
	req = req.WithContext(middleware.WithUserID(req.Context(), 500))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Single(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, `{"staffId": 10, "role": "host"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, uc.got.Staff, 1)
	assert.Equal(t, int64(10), uc.got.Staff[0].StaffID)

	var resp AssignStaffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.BookingID)
	require.Len(t, resp.Assignments, 1)
	require.NotNil(t, resp.Assignments[0].Role)
	assert.Equal(t, "host", *resp.Assignments[0].Role)
}

func TestHandle_Batch(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, `{"staff": [{"staffId": 10}, {"staffId": 11, "role": "catering"}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, uc.got.Staff, 2)
	assert.Equal(t, int64(11), uc.got.Staff[1].StaffID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{"no target", `{}`, nil, http.StatusBadRequest},
		{"both targets", `{"staffId": 10, "staff": [{"staffId": 11}]}`, nil, http.StatusBadRequest},
		{"booking not found", `{"staffId": 10}`, assignStaff.ErrBookingNotFound, http.StatusNotFound},
		{"booking cancelled", `{"staffId": 10}`, assignStaff.ErrBookingCancelled, http.StatusUnprocessableEntity},
		{"already assigned", `{"staffId": 10}`, assignStaff.ErrAlreadyAssigned, http.StatusConflict},
		{"unavailable", `{"staffId": 10}`, assignStaff.ErrStaffUnavailable, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.code, doRequest(h, tt.body).Code)
		})
	}
}

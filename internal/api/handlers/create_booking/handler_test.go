package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{
	"spaceId": 1,
	"title": "Conference",
	"clientName": "ACME",
	"clientEmail": "events@acme.test",
	"startDate": "2025-06-10",
	"endDate": "2025-06-12",
	"staffIds": [10]
}`

func doRequest(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), 500))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Booking: &domain.Booking{
			ID:        1001,
			SpaceID:   1,
			Title:     "Conference",
			StartDate: types.MustParseDate("2025-06-10"),
			EndDate:   types.MustParseDate("2025-06-12"),
			Status:    domain.StatusPending,
			CreatedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		AssignedStaffIDs: []int64{10},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(500), uc.got.UserID)
	assert.Equal(t, "2025-06-12", uc.got.EndDate.String())
	assert.Equal(t, []int64{10}, uc.got.StaffIDs)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1001, body["id"])
	assert.Equal(t, []interface{}{float64(10)}, body["assignedStaffIds"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"space not found", createBooking.ErrSpaceNotFound, http.StatusNotFound},
		{"space unavailable", createBooking.ErrSpaceUnavailable, http.StatusConflict},
		{"space inactive", createBooking.ErrSpaceInactive, http.StatusConflict},
		{"staff unavailable", fmt.Errorf("%w: staff 10", createBooking.ErrStaffUnavailable), http.StatusConflict},
		{"concurrent update", createBooking.ErrConcurrentUpdate, http.StatusConflict},
		{"invalid input", fmt.Errorf("%w: start date in the past", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: db down", createBooking.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := doRequest(h, validBody, true)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_RejectsBadInput(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(h, `{"spaceId": 1, "unknown": true}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, strings.Replace(validBody, "events@acme.test", "not-an-email", 1), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "clientEmail")

	rec = doRequest(h, strings.Replace(validBody, `"2025-06-12"`, `"12.06.2025"`, 1), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Nil(t, uc.got)
}

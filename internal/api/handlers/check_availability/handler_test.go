package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
)

type fakeChecker struct {
	conflict bool
	err      error

	ref     domain.ResourceRef
	period  domain.DateRange
	exclude *int64
}

func (f *fakeChecker) HasConflict(_ context.Context, ref domain.ResourceRef, period domain.DateRange, exclude *int64) (bool, error) {
	f.ref, f.period, f.exclude = ref, period, exclude
	return f.conflict, f.err
}

func doRequest(h *Handler, kind, id, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/"+kind+"/"+id+"?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"kind": kind, "resourceId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Available(t *testing.T) {
	checker := &fakeChecker{}
	h := NewHandler(checker, logger.NewNop())

	rec := doRequest(h, "staff", "10", "startDate=2025-06-10&endDate=2025-06-10&excludeBookingId=7")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "staff", resp.ResourceKind)
	assert.Equal(t, "2025-06-10", resp.EndDate)

	assert.Equal(t, domain.ResourceRef{Kind: domain.ResourceStaff, ID: 10}, checker.ref)
	require.NotNil(t, checker.exclude)
	assert.Equal(t, int64(7), *checker.exclude)
}

func TestHandle_Conflict(t *testing.T) {
	h := NewHandler(&fakeChecker{conflict: true}, logger.NewNop())

	rec := doRequest(h, "space", "1", "startDate=2025-06-10&endDate=2025-06-12")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Nil(t, resp.ExcludeBookingID)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&fakeChecker{}, logger.NewNop())

	tests := []struct {
		name  string
		kind  string
		id    string
		query string
	}{
		{"unknown kind", "room", "1", "startDate=2025-06-10&endDate=2025-06-12"},
		{"bad id", "space", "abc", "startDate=2025-06-10&endDate=2025-06-12"},
		{"missing end", "space", "1", "startDate=2025-06-10"},
		{"reversed period", "space", "1", "startDate=2025-06-12&endDate=2025-06-10"},
		{"bad exclude", "space", "1", "startDate=2025-06-10&endDate=2025-06-12&excludeBookingId=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, tt.kind, tt.id, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeChecker{err: errors.New("db down")}, logger.NewNop())

	rec := doRequest(h, "space", "1", "startDate=2025-06-10&endDate=2025-06-12")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

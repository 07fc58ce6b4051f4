package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
)

func TestAuth(t *testing.T) {
	var got int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserID(r.Context())
	}))

	tests := []struct {
		header string
		status int
		userID int64
	}{
		{"42", http.StatusOK, 42},
		{"", http.StatusUnauthorized, 0},
		{"abc", http.StatusUnauthorized, 0},
		{"-1", http.StatusUnauthorized, 0},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got = 0
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.userID, got)
		})
	}
}

func TestAuth_Role(t *testing.T) {
	var got domain.Role
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserRole(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		status int
		role   domain.Role
	}{
		{"missing means staff", "", http.StatusOK, domain.RoleStaff},
		{"admin", "admin", http.StatusOK, domain.RoleAdmin},
		{"head", "head_of_department", http.StatusOK, domain.RoleHead},
		{"unknown", "ceo", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = ""
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set(UserIDHeader, "42")
			if tt.header != "" {
				r.Header.Set(UserRoleHeader, tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.role, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, incoming)
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, incoming, seen)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "not-a-uuid")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.NotEqual(t, "not-a-uuid", seen)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "venue-test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/2", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/bookings/{bookingId}", "404")))
}

func TestLogging(t *testing.T) {
	h := RequestID(Logging(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

// Package api собирает HTTP маршруты сервиса.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
)

// Handlers обработчики всех операций API
type Handlers struct {
	// Бронирования
	CreateBooking       http.HandlerFunc
	ListBookings        http.HandlerFunc
	GetBooking          http.HandlerFunc
	UpdateBooking       http.HandlerFunc
	UpdateBookingStatus http.HandlerFunc
	CancelBooking       http.HandlerFunc
	CompletePassed      http.HandlerFunc

	// Назначения
	AssignStaff       http.HandlerFunc
	UnassignStaff     http.HandlerFunc
	ListAssignedStaff http.HandlerFunc
	SuggestStaff      http.HandlerFunc
	StaffForBooking   http.HandlerFunc

	// Доступность
	CheckAvailability   http.HandlerFunc
	ListConflicts       http.HandlerFunc
	StaffAvailability   http.HandlerFunc
	ListAvailableStaff  http.HandlerFunc
	ListAvailableSpaces http.HandlerFunc

	// Отпуска
	SubmitLeave        http.HandlerFunc
	GetLeaveRequest    http.HandlerFunc
	ListLeaveRequests  http.HandlerFunc
	ListPendingLeave   http.HandlerFunc
	ReviewLeave        http.HandlerFunc
	CancelLeave        http.HandlerFunc
	GetLeaveBalance    http.HandlerFunc
	AdjustLeaveBalance http.HandlerFunc
}

// Options необязательные части роутера
type Options struct {
	// Metrics nil отключает HTTP метрики и /metrics
	Metrics     *metrics.Metrics
	MetricsPath string
	Logger      middleware.Logger
}

const (
	id        = "[0-9]+"
	kindParam = "{kind:space|staff}"
)

// NewRouter регистрирует маршруты под /api/v1. Всё, кроме /health и /metrics, требует X-User-ID.
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	if opts.Logger != nil {
		r.Use(middleware.Logging(opts.Logger))
	}

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:"+id+"}", h.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:"+id+"}", h.UpdateBooking).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/status", h.UpdateBookingStatus).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/cancel", h.CancelBooking).Methods(http.MethodPatch)
	api.HandleFunc("/admin/bookings/complete-passed", h.CompletePassed).Methods(http.MethodPost)

	// --- Назначение сотрудников ---
	api.HandleFunc("/bookings/{bookingId:"+id+"}/staff", h.AssignStaff).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/staff", h.ListAssignedStaff).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/staff/{staffId:"+id+"}", h.UnassignStaff).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/suggested-staff", h.SuggestStaff).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:"+id+"}/staff-availability", h.StaffForBooking).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability/"+kindParam+"/{resourceId:"+id+"}", h.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/availability/"+kindParam+"/{resourceId:"+id+"}/conflicts", h.ListConflicts).Methods(http.MethodGet)
	api.HandleFunc("/staff/available", h.ListAvailableStaff).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:"+id+"}/availability", h.StaffAvailability).Methods(http.MethodGet)
	api.HandleFunc("/spaces/available", h.ListAvailableSpaces).Methods(http.MethodGet)

	// --- Отпуска ---
	api.HandleFunc("/leave-requests", h.SubmitLeave).Methods(http.MethodPost)
	api.HandleFunc("/leave-requests/pending", h.ListPendingLeave).Methods(http.MethodGet)
	api.HandleFunc("/leave-requests/{requestId:"+id+"}", h.GetLeaveRequest).Methods(http.MethodGet)
	api.HandleFunc("/leave-requests/{requestId:"+id+"}/review", h.ReviewLeave).Methods(http.MethodPost)
	api.HandleFunc("/leave-requests/{requestId:"+id+"}/cancel", h.CancelLeave).Methods(http.MethodPost)
	api.HandleFunc("/staff/{staffId:"+id+"}/leave-requests", h.ListLeaveRequests).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:"+id+"}/leave-balance", h.GetLeaveBalance).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:"+id+"}/leave-balance/adjustments", h.AdjustLeaveBalance).Methods(http.MethodPost)

	return r
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-VenueService/internal/api"
	adjustLeaveBalanceHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/adjust_leave_balance"
	assignStaffHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/assign_staff"
	cancelBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/cancel_booking"
	cancelLeaveHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/cancel_leave"
	checkAvailabilityHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/check_availability"
	completePassedHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/complete_passed"
	createBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_booking"
	getLeaveBalanceHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_leave_balance"
	getLeaveRequestHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_leave_request"
	listAssignedStaffHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_assigned_staff"
	listAvailableSpacesHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_available_spaces"
	listAvailableStaffHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_available_staff"
	listBookingsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_bookings"
	listConflictsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_conflicts"
	listLeaveRequestsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_leave_requests"
	listPendingLeaveHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_pending_leave"
	reviewLeaveHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/review_leave"
	staffAvailabilityHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/staff_availability"
	staffForBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/staff_for_booking"
	submitLeaveHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/submit_leave"
	suggestStaffHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/suggest_staff"
	unassignStaffHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/unassign_staff"
	updateBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-VenueService/internal/scheduler"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()
			return serve(app)
		},
	}
}

func serve(app *App) error {
	cfg, log := app.Cfg, app.Logger
	log.Info("Starting SMC-VenueService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	c := buildContainer(app.DB, metricsCollector, stopMetricsCh, log)

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}
	clock := types.SystemClock{Location: loc}

	router := api.NewRouter(newHandlers(c, clock, log), api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	})

	// Планировщик завершения прошедших бронирований
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler.CompletionSpec, loc, c.bookings, clock, log)
		if err != nil {
			return err
		}
		sched.Start()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

func newHandlers(c *container, clock types.SystemClock, log *logger.Logger) api.Handlers {
	return api.Handlers{
		CreateBooking:       createBookingHandler.NewHandler(c.createBooking, log).Handle,
		ListBookings:        listBookingsHandler.NewHandler(c.bookings, log).Handle,
		GetBooking:          getBookingHandler.NewHandler(c.bookings, log).Handle,
		UpdateBooking:       updateBookingHandler.NewHandler(c.updateBooking, log).Handle,
		UpdateBookingStatus: updateBookingStatusHandler.NewHandler(c.bookings, log).Handle,
		CancelBooking:       cancelBookingHandler.NewHandler(c.bookings, log).Handle,
		CompletePassed:      completePassedHandler.NewHandler(c.bookings, clock, log).Handle,

		AssignStaff:       assignStaffHandler.NewHandler(c.assignStaff, log).Handle,
		UnassignStaff:     unassignStaffHandler.NewHandler(c.bookings, log).Handle,
		ListAssignedStaff: listAssignedStaffHandler.NewHandler(c.bookings, log).Handle,
		SuggestStaff:      suggestStaffHandler.NewHandler(c.resolver, log).Handle,
		StaffForBooking:   staffForBookingHandler.NewHandler(c.resolver, log).Handle,

		CheckAvailability:   checkAvailabilityHandler.NewHandler(c.engine, log).Handle,
		ListConflicts:       listConflictsHandler.NewHandler(c.engine, log).Handle,
		StaffAvailability:   staffAvailabilityHandler.NewHandler(c.resolver, log).Handle,
		ListAvailableStaff:  listAvailableStaffHandler.NewHandler(c.resolver, log).Handle,
		ListAvailableSpaces: listAvailableSpacesHandler.NewHandler(c.resolver, log).Handle,

		SubmitLeave:        submitLeaveHandler.NewHandler(c.submitLeave, log).Handle,
		GetLeaveRequest:    getLeaveRequestHandler.NewHandler(c.leave, log).Handle,
		ListLeaveRequests:  listLeaveRequestsHandler.NewHandler(c.leave, log).Handle,
		ListPendingLeave:   listPendingLeaveHandler.NewHandler(c.leave, log).Handle,
		ReviewLeave:        reviewLeaveHandler.NewHandler(c.reviewLeave, log).Handle,
		CancelLeave:        cancelLeaveHandler.NewHandler(c.cancelLeave, log).Handle,
		GetLeaveBalance:    getLeaveBalanceHandler.NewHandler(c.leave, log).Handle,
		AdjustLeaveBalance: adjustLeaveBalanceHandler.NewHandler(c.leave, log).Handle,
	}
}

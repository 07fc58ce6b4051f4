package main

import (
	"database/sql"

	assignmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	departmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/department"
	leaveRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/leave"
	ledgerRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/ledger"
	spaceRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/space"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueService/internal/service/allocation"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-VenueService/internal/service/bookings"
	leaveService "github.com/m04kA/SMC-VenueService/internal/service/leave"
	assignStaffUC "github.com/m04kA/SMC-VenueService/internal/usecase/assign_staff"
	cancelLeaveUC "github.com/m04kA/SMC-VenueService/internal/usecase/cancel_leave"
	createBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	reviewLeaveUC "github.com/m04kA/SMC-VenueService/internal/usecase/review_leave"
	submitLeaveUC "github.com/m04kA/SMC-VenueService/internal/usecase/submit_leave"
	updateBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
)

// container сервисы и use cases поверх одного соединения с БД
type container struct {
	engine   *allocation.Engine
	resolver *availability.Resolver
	bookings *bookingsService.Service
	leave    *leaveService.Service

	createBooking *createBookingUC.UseCase
	updateBooking *updateBookingUC.UseCase
	assignStaff   *assignStaffUC.UseCase
	submitLeave   *submitLeaveUC.UseCase
	reviewLeave   *reviewLeaveUC.UseCase
	cancelLeave   *cancelLeaveUC.UseCase
}

// buildContainer собирает зависимости. m может быть nil, тогда метрики не пишутся.
func buildContainer(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) *container {
	wrappedDB := dbmetrics.WrapWithDefault(db, m, stopCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	spaces := spaceRepo.NewRepository(wrappedDB)
	staff := staffRepo.NewRepository(wrappedDB)
	bookings := bookingRepo.NewRepository(wrappedDB)
	assignments := assignmentRepo.NewRepository(wrappedDB)
	leaves := leaveRepo.NewRepository(wrappedDB)
	ledger := ledgerRepo.NewRepository(wrappedDB)
	departments := departmentRepo.NewRepository(wrappedDB)

	// Движок пересечений и проверка доступности
	engine := allocation.NewEngine(bookings, assignments, m, log)
	resolver := availability.NewResolver(engine, staff, spaces, bookings, assignments, log)

	return &container{
		engine:   engine,
		resolver: resolver,
		bookings: bookingsService.NewService(bookings, assignments, txMgr, m, log),
		leave:    leaveService.NewService(leaves, ledger, staff, txMgr, log),

		createBooking: createBookingUC.NewUseCase(spaces, staff, bookings, assignments, engine, resolver, txMgr, log),
		updateBooking: updateBookingUC.NewUseCase(bookings, spaces, staff, assignments, engine, txMgr, log),
		assignStaff:   assignStaffUC.NewUseCase(bookings, staff, assignments, resolver, txMgr, log),
		submitLeave:   submitLeaveUC.NewUseCase(staff, leaves, ledger, engine, m, txMgr, log),
		reviewLeave:   reviewLeaveUC.NewUseCase(leaves, ledger, staff, departments, m, txMgr, log),
		cancelLeave:   cancelLeaveUC.NewUseCase(leaves, ledger, staff, m, txMgr, log),
	}
}

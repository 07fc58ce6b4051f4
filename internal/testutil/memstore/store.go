// Package memstore хранит данные сервиса в памяти и реализует интерфейсы репозиториев для тестов.
// Ошибки совпадают с ошибками настоящих репозиториев, ограничения БД воспроизводятся в коде.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Store общее состояние всех репозиториев
type Store struct {
	mu sync.Mutex

	spaces      map[int64]domain.Space
	staff       map[int64]domain.Staff
	bookings    map[int64]domain.Booking
	assignments []domain.Assignment
	leaves      map[int64]domain.LeaveRequest
	ledger      []domain.LeaveLedgerEntry
	departments map[int64]domain.Department

	nextID int64
	now    time.Time

	// Failures задаёт ошибку, которую вернёт метод с данным именем ("Bookings.Create" и т.п.)
	Failures map[string]error
}

func New() *Store {
	return &Store{
		spaces:      map[int64]domain.Space{},
		staff:       map[int64]domain.Staff{},
		bookings:    map[int64]domain.Booking{},
		leaves:      map[int64]domain.LeaveRequest{},
		departments: map[int64]domain.Department{},
		nextID:      1000,
		now:         time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		Failures:    map[string]error{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) fail(method string) error {
	return s.Failures[method]
}

// AddSpace добавляет площадку. ID задаётся вызывающим.
func (s *Store) AddSpace(space domain.Space) *domain.Space {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[space.ID] = space
	return &space
}

// AddStaff добавляет сотрудника. Пустой Allowance заменяется значениями по умолчанию.
func (s *Store) AddStaff(staff domain.Staff) *domain.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	if staff.Allowance == (domain.LeaveAllowance{}) {
		staff.Allowance = domain.DefaultLeaveAllowance()
	}
	if staff.UserID == 0 {
		staff.UserID = staff.ID * 10
	}
	s.staff[staff.ID] = staff
	return &staff
}

// AddDepartment добавляет отдел. ID задаётся вызывающим.
func (s *Store) AddDepartment(d domain.Department) *domain.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments[d.ID] = d
	return &d
}

// AddBooking добавляет бронирование без проверок. Если ID пуст, он назначается.
func (s *Store) AddBooking(b domain.Booking) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.id()
	}
	if b.Status == "" {
		b.Status = domain.StatusPending
	}
	s.bookings[b.ID] = b
	return &b
}

// Assign добавляет назначение без проверок
func (s *Store) Assign(bookingID, staffID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, domain.Assignment{BookingID: bookingID, StaffID: staffID, CreatedAt: s.now})
}

// AddLeaveRequest добавляет заявку без проверок
func (s *Store) AddLeaveRequest(r domain.LeaveRequest) *domain.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.id()
	}
	if r.Version == 0 {
		r.Version = 1
	}
	s.leaves[r.ID] = r
	return &r
}

// AddLedgerEntry добавляет запись журнала без проверок
func (s *Store) AddLedgerEntry(e domain.LeaveLedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	s.ledger = append(s.ledger, e)
}

// Booking возвращает сохранённое бронирование
func (s *Store) Booking(id int64) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

// LeaveRequest возвращает сохранённую заявку
func (s *Store) LeaveRequest(id int64) (domain.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.leaves[id]
	return r, ok
}

// Ledger возвращает копию журнала
func (s *Store) Ledger() []domain.LeaveLedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LeaveLedgerEntry(nil), s.ledger...)
}

// Assignments возвращает копию назначений
func (s *Store) Assignments() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Assignment(nil), s.assignments...)
}

// BookingCount число сохранённых бронирований
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// LeaveRequestCount число сохранённых заявок
func (s *Store) LeaveRequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leaves)
}

type state struct {
	spaces      map[int64]domain.Space
	staff       map[int64]domain.Staff
	bookings    map[int64]domain.Booking
	assignments []domain.Assignment
	leaves      map[int64]domain.LeaveRequest
	ledger      []domain.LeaveLedgerEntry
}

func (s *Store) snapshot() state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return state{
		spaces:      copyMap(s.spaces),
		staff:       copyMap(s.staff),
		bookings:    copyMap(s.bookings),
		assignments: append([]domain.Assignment(nil), s.assignments...),
		leaves:      copyMap(s.leaves),
		ledger:      append([]domain.LeaveLedgerEntry(nil), s.ledger...),
	}
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces = st.spaces
	s.staff = st.staff
	s.bookings = st.bookings
	s.assignments = st.assignments
	s.leaves = st.leaves
	s.ledger = st.ledger
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TxManager выполняет функцию сразу и откатывает состояние Store при ошибке
type TxManager struct {
	store *Store
	Calls int
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	saved := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(saved)
		return err
	}
	return nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/cache"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type CreateBookingInput struct {
	ClientID      *uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TourPackageID uint
	DepartureDate time.Time
	Participants  int
	Notes         string
}

type Stats struct {
	TotalPackages   int64   `json:"total_packages"`
	TotalBookings   int64   `json:"total_bookings"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingBookings int64   `json:"pending_bookings"`
}

type BookingService interface {
	CreateBooking(input CreateBookingInput) (*model.Booking, error)
	SetStatus(id uint, status model.BookingStatus) error
	SetPaymentStatus(id uint, status model.PaymentStatus) error
	GetByID(id uint) (*model.Booking, error)
	GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error)
	ListForClient(clientID uint) ([]model.Booking, error)
	ListByCustomerEmail(email string) ([]model.Booking, error)
	ListAll(status model.BookingStatus) ([]model.Booking, error)
	Recent(limit int) ([]model.Booking, error)
	DashboardStats() (*Stats, error)
}

type bookingService struct {
	bookings repository.BookingRepo
	packages repository.PackageRepo
	cache    Cache

	now func() time.Time
}

var _ BookingService = (*bookingService)(nil)

const statsCacheTTL = time.Minute

// admin-settable statuses; "completed" comes from post-trip reconciliation
// and is deliberately not accepted here
var settableStatuses = map[model.BookingStatus]bool{
	model.BookingStatusPending:   true,
	model.BookingStatusConfirmed: true,
	model.BookingStatusCancelled: true,
}

var settablePaymentStatuses = map[model.PaymentStatus]bool{
	model.PaymentStatusPending: true,
	model.PaymentStatusPaid:    true,
}

func NewBookingService(bookingRepo repository.BookingRepo, packageRepo repository.PackageRepo, cache Cache) *bookingService {
	return &bookingService{
		bookings: bookingRepo,
		packages: packageRepo,
		cache:    cache,
		now:      time.Now,
	}
}

// CreateBooking persists a price-locked booking. The total is always computed
// here from the package price, never taken from the request.
func (s *bookingService) CreateBooking(input CreateBookingInput) (*model.Booking, error) {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerEmail) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" {
		return nil, fmt.Errorf("customer name, email and phone are required: %w", service.ErrInvalidInput)
	}

	pkg, err := s.packages.GetByID(input.TourPackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, service.ErrNotFound
	}

	if input.Participants < 1 || input.Participants > pkg.MaxParticipants {
		return nil, fmt.Errorf("participants must be between 1 and %d: %w", pkg.MaxParticipants, service.ErrInvalidInput)
	}

	today := s.now().Truncate(24 * time.Hour)
	if input.DepartureDate.Before(today) {
		return nil, fmt.Errorf("departure date is in the past: %w", service.ErrInvalidInput)
	}

	booking := &model.Booking{
		ClientID:      input.ClientID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(strings.ToLower(input.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		TourPackageID: pkg.ID,
		DepartureDate: input.DepartureDate,
		Participants:  input.Participants,
		TotalPrice:    pkg.Price * float64(input.Participants),
		Status:        model.BookingStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		Notes:         input.Notes,
		InvoiceNumber: "INV-" + strings.ToUpper(uuid.NewString()),
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	s.invalidateStats()
	return booking, nil
}

// SetStatus applies an admin status transition. A transition to the current
// status is a successful no-op; an unknown value leaves the row untouched.
func (s *bookingService) SetStatus(id uint, status model.BookingStatus) error {
	if !settableStatuses[status] {
		return fmt.Errorf("unknown booking status %q: %w", status, service.ErrInvalidInput)
	}
	affected, err := s.bookings.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrNotFound
	}
	s.invalidateStats()
	return nil
}

func (s *bookingService) SetPaymentStatus(id uint, status model.PaymentStatus) error {
	if !settablePaymentStatuses[status] {
		return fmt.Errorf("unknown payment status %q: %w", status, service.ErrInvalidInput)
	}
	affected, err := s.bookings.UpdatePaymentStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrNotFound
	}
	s.invalidateStats()
	return nil
}

func (s *bookingService) GetByID(id uint) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error) {
	booking, err := s.bookings.GetByInvoiceNumber(invoiceNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListForClient(clientID uint) ([]model.Booking, error) {
	return s.bookings.ListByClientID(clientID)
}

func (s *bookingService) ListByCustomerEmail(email string) ([]model.Booking, error) {
	return s.bookings.ListByCustomerEmail(strings.TrimSpace(strings.ToLower(email)))
}

func (s *bookingService) ListAll(status model.BookingStatus) ([]model.Booking, error) {
	if status != "" && !settableStatuses[status] && status != model.BookingStatusCompleted {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, service.ErrInvalidInput)
	}
	return s.bookings.ListAll(status)
}

func (s *bookingService) Recent(limit int) ([]model.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.bookings.ListRecent(limit)
}

// DashboardStats counts revenue on payment_status alone: a confirmed but
// unpaid booking contributes nothing until it is marked paid.
func (s *bookingService) DashboardStats() (*Stats, error) {
	if s.cache != nil {
		var cached Stats
		if err := s.cache.Get(cache.DashboardStatsKey, &cached); err == nil {
			return &cached, nil
		}
	}

	totalPackages, err := s.packages.CountActive()
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count()
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.bookings.SumTotalPricePaid()
	if err != nil {
		return nil, err
	}
	pending, err := s.bookings.CountByStatus(model.BookingStatusPending)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalPackages:   totalPackages,
		TotalBookings:   totalBookings,
		TotalRevenue:    totalRevenue,
		PendingBookings: pending,
	}
	if s.cache != nil {
		_ = s.cache.Set(cache.DashboardStatsKey, stats, statsCacheTTL)
	}
	return stats, nil
}

func (s *bookingService) invalidateStats() {
	if s.cache != nil {
		_ = s.cache.Delete(cache.DashboardStatsKey)
	}
}

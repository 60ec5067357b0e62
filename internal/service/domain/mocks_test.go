package domain

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) WithTx(tx *gorm.DB) repository.SessionRepo {
	return m
}

func (m *MockSessionRepo) Create(session *model.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByTokenAndKind(token string, kind model.SessionKind) (*model.Session, error) {
	args := m.Called(token, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepo) DeleteByTokenAndKind(token string, kind model.SessionKind) error {
	args := m.Called(token, kind)
	return args.Error(0)
}

func (m *MockSessionRepo) DeleteExpiredBefore(deadline time.Time) (int64, error) {
	args := m.Called(deadline)
	return args.Get(0).(int64), args.Error(1)
}

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) WithTx(tx *gorm.DB) repository.ClientRepo {
	return m
}

func (m *MockClientRepo) Create(client *model.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepo) GetByID(id uint) (*model.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepo) GetByEmail(email string) (*model.Client, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepo) UpdateProfile(id uint, name, phone, address string) error {
	args := m.Called(id, name, phone, address)
	return args.Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) WithTx(tx *gorm.DB) repository.AdminRepo {
	return m
}

func (m *MockAdminRepo) Create(admin *model.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepo) GetByID(id uint) (*model.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepo) GetByEmail(email string) (*model.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

type MockPackageRepo struct {
	mock.Mock
}

func (m *MockPackageRepo) WithTx(tx *gorm.DB) repository.PackageRepo {
	return m
}

func (m *MockPackageRepo) Create(pkg *model.TourPackage) error {
	args := m.Called(pkg)
	return args.Error(0)
}

func (m *MockPackageRepo) Update(pkg *model.TourPackage) error {
	args := m.Called(pkg)
	return args.Error(0)
}

func (m *MockPackageRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPackageRepo) GetByID(id uint) (*model.TourPackage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourPackage), args.Error(1)
}

func (m *MockPackageRepo) ListAll() ([]model.TourPackage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TourPackage), args.Error(1)
}

func (m *MockPackageRepo) ListActive(filter repository.PackageFilter) ([]model.TourPackage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TourPackage), args.Error(1)
}

func (m *MockPackageRepo) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) WithTx(tx *gorm.DB) repository.BookingRepo {
	return m
}

func (m *MockBookingRepo) Create(booking *model.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(id uint) (*model.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error) {
	args := m.Called(invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByClientID(clientID uint) ([]model.Booking, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByCustomerEmail(email string) ([]model.Booking, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListAll(status model.BookingStatus) ([]model.Booking, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListRecent(limit int) ([]model.Booking, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(id uint, status model.BookingStatus) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) UpdatePaymentStatus(id uint, status model.PaymentStatus) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) CountByStatus(status model.BookingStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) SumTotalPricePaid() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

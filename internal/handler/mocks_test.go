package handler

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(kind model.SessionKind, principalID uint) (string, time.Time, error) {
	args := m.Called(kind, principalID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionService) ValidateClient(token string) (*model.Client, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockSessionService) ValidateAdmin(token string) (*model.Admin, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockSessionService) DestroySession(kind model.SessionKind, token string) {
	m.Called(kind, token)
}

func (m *MockSessionService) PurgeExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Register(name, email, phone, password string) (*model.Client, error) {
	args := m.Called(name, email, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Authenticate(email, password string) (*model.Client, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) GetByID(id uint) (*model.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) UpdateProfile(id uint, name, phone, address string) error {
	args := m.Called(id, name, phone, address)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(input domain.CreateBookingInput) (*model.Booking, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) SetStatus(id uint, status model.BookingStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockBookingService) SetPaymentStatus(id uint, status model.PaymentStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockBookingService) GetByID(id uint) (*model.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error) {
	args := m.Called(invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) ListForClient(clientID uint) ([]model.Booking, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) ListByCustomerEmail(email string) ([]model.Booking, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) ListAll(status model.BookingStatus) ([]model.Booking, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) Recent(limit int) ([]model.Booking, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) DashboardStats() (*domain.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/mq"
	"github.com/kyodai-travel/tourbook/internal/service"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

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

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(queueName string, message any) error {
	args := m.Called(queueName, message)
	return args.Error(0)
}

func sampleBooking() *model.Booking {
	return &model.Booking{
		ID:            11,
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		TotalPrice:    1500000,
		Status:        model.BookingStatusPending,
		InvoiceNumber: "INV-TEST",
		DepartureDate: time.Now().AddDate(0, 1, 0),
	}
}

func TestBookingWorkflow_CreateBooking_PublishesCreatedEvent(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	booking := sampleBooking()
	bookings.On("CreateBooking", mock.AnythingOfType("domain.CreateBookingInput")).Return(booking, nil)

	var published mq.BookingNotificationMessage
	publisher.On("Publish", mq.BookingNotificationImmediateQueue, mock.AnythingOfType("mq.BookingNotificationMessage")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(mq.BookingNotificationMessage)
		}).
		Return(nil)

	got, err := w.CreateBooking(domain.CreateBookingInput{})
	assert.NoError(t, err)
	assert.Equal(t, booking, got)
	assert.Equal(t, mq.EventBookingCreated, published.Event)
	assert.Equal(t, uint(11), published.BookingID)
	assert.Equal(t, "INV-TEST", published.InvoiceNumber)
	assert.Equal(t, float64(1500000), published.TotalPrice)
}

func TestBookingWorkflow_CreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	bookings.On("CreateBooking", mock.Anything).Return(sampleBooking(), nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	got, err := w.CreateBooking(domain.CreateBookingInput{})
	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestBookingWorkflow_CreateBooking_ServiceErrorSkipsPublish(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	bookings.On("CreateBooking", mock.Anything).Return(nil, service.ErrInvalidInput)

	got, err := w.CreateBooking(domain.CreateBookingInput{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookingWorkflow_CreateBooking_NilPublisher(t *testing.T) {
	bookings := &MockBookingService{}
	w := NewBookingWorkflow(bookings, nil, zap.NewNop())

	bookings.On("CreateBooking", mock.Anything).Return(sampleBooking(), nil)

	got, err := w.CreateBooking(domain.CreateBookingInput{})
	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestBookingWorkflow_SetStatus_PublishesStatusChange(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	updated := sampleBooking()
	updated.Status = model.BookingStatusConfirmed
	bookings.On("SetStatus", uint(11), model.BookingStatusConfirmed).Return(nil)
	bookings.On("GetByID", uint(11)).Return(updated, nil)

	var published mq.BookingNotificationMessage
	publisher.On("Publish", mq.BookingNotificationImmediateQueue, mock.AnythingOfType("mq.BookingNotificationMessage")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(mq.BookingNotificationMessage)
		}).
		Return(nil)

	err := w.SetStatus(11, model.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, mq.EventBookingStatusChanged, published.Event)
	assert.Equal(t, string(model.BookingStatusConfirmed), published.Status)
}

func TestBookingWorkflow_SetStatus_ReloadFailureStillSucceeds(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	bookings.On("SetStatus", uint(11), model.BookingStatusCancelled).Return(nil)
	bookings.On("GetByID", uint(11)).Return(nil, errors.New("connection refused"))

	err := w.SetStatus(11, model.BookingStatusCancelled)
	assert.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookingWorkflow_SetStatus_ServiceErrorPropagates(t *testing.T) {
	bookings := &MockBookingService{}
	publisher := &MockPublisher{}
	w := NewBookingWorkflow(bookings, publisher, zap.NewNop())

	bookings.On("SetStatus", uint(11), model.BookingStatus("bogus")).Return(service.ErrInvalidInput)

	err := w.SetStatus(11, model.BookingStatus("bogus"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

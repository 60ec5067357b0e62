package workflow

import (
	"go.uber.org/zap"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/mq"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

// Publisher pushes a message onto a named queue.
type Publisher interface {
	Publish(queueName string, message any) error
}

// BookingWorkflow wraps the booking service with notification events. The
// events are advisory: a failed publish is logged and never fails the
// booking operation itself.
type BookingWorkflow struct {
	bookingService domain.BookingService
	publisher      Publisher
	logger         *zap.Logger
}

func NewBookingWorkflow(bookingService domain.BookingService, publisher Publisher, logger *zap.Logger) *BookingWorkflow {
	return &BookingWorkflow{
		bookingService: bookingService,
		publisher:      publisher,
		logger:         logger,
	}
}

func (w *BookingWorkflow) CreateBooking(input domain.CreateBookingInput) (*model.Booking, error) {
	booking, err := w.bookingService.CreateBooking(input)
	if err != nil {
		return nil, err
	}

	w.notify(mq.EventBookingCreated, booking)

	return booking, nil
}

func (w *BookingWorkflow) SetStatus(id uint, status model.BookingStatus) error {
	if err := w.bookingService.SetStatus(id, status); err != nil {
		return err
	}

	booking, err := w.bookingService.GetByID(id)
	if err != nil {
		w.logger.Warn("booking reload for notification failed",
			zap.Uint("booking_id", id), zap.Error(err))
		return nil
	}
	w.notify(mq.EventBookingStatusChanged, booking)

	return nil
}

func (w *BookingWorkflow) notify(event string, booking *model.Booking) {
	if w.publisher == nil {
		return
	}
	message := mq.BookingNotificationMessage{
		Event:         event,
		BookingID:     booking.ID,
		InvoiceNumber: booking.InvoiceNumber,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		TotalPrice:    booking.TotalPrice,
		Status:        string(booking.Status),
		DepartureDate: booking.DepartureDate,
	}
	if err := w.publisher.Publish(mq.BookingNotificationImmediateQueue, message); err != nil {
		w.logger.Warn("failed to publish booking notification",
			zap.String("event", event), zap.Uint("booking_id", booking.ID), zap.Error(err))
	}
}

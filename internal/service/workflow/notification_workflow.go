package workflow

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kyodai-travel/tourbook/internal/mq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationWorkflow consumes booking events and emits the customer
// notification. Delivery is a structured log line; SMTP is out of scope.
type NotificationWorkflow struct {
	logger *zap.Logger
}

func NewNotificationWorkflow(logger *zap.Logger) *NotificationWorkflow {
	return &NotificationWorkflow{
		logger: logger,
	}
}

func (w *NotificationWorkflow) Start(mqConn *amqp.Connection) error {
	if err := w.ConsumeBookingNotifications(mqConn); err != nil {
		return err
	}
	return nil
}

func (w *NotificationWorkflow) ConsumeBookingNotifications(conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.BookingNotificationImmediateQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handleNotification(msg); err != nil {
				w.logger.Error("failed to handle booking notification", zap.Error(err))
			}
		}
	}()

	return nil
}

func (w *NotificationWorkflow) handleNotification(msg amqp.Delivery) error {
	var message mq.BookingNotificationMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		msg.Nack(false, false)
		return err
	}

	w.logger.Info("sending booking notification email",
		zap.String("event", message.Event),
		zap.String("to", message.CustomerEmail),
		zap.String("invoice", message.InvoiceNumber),
		zap.String("status", message.Status),
		zap.Float64("total_price", message.TotalPrice),
	)

	msg.Ack(false)

	return nil
}

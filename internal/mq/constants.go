package mq

import "time"

// Queue names and message definitions

// immediate queue from the booking workflow to the notification consumer
// deliver messages to notify customers about bookings they placed
const (
	BookingNotificationImmediateQueue = "booking.notification.immediate"
)

// notification event names
const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

type BookingNotificationMessage struct {
	Event         string    `json:"event"`
	BookingID     uint      `json:"booking_id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	DepartureDate time.Time `json:"departure_date"`
}

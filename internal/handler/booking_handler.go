package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

type BookingHandler struct {
	app *app.App
}

func NewBookingHandler(app *app.App) *BookingHandler {
	return &BookingHandler{
		app: app,
	}
}

// HandleCreateBooking accepts bookings from guests and logged-in clients
// alike. Any total_price in the request body is ignored; the server computes
// the total from the package price.
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	departureDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid departure date, expected YYYY-MM-DD",
			"detail": err.Error(),
		})
		return
	}

	input := domain.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TourPackageID: req.TourPackageID,
		DepartureDate: departureDate,
		Participants:  req.Participants,
		Notes:         req.Notes,
	}

	// attach the client when a valid session cookie rides along
	if token, err := ctx.Cookie(ClientSessionCookie); err == nil {
		if client, err := h.app.SessionService.ValidateClient(token); err == nil {
			input.ClientID = &client.ID
		}
	}

	booking, err := h.app.BookingWorkflow.CreateBooking(input)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, gin.H{
		"success":        true,
		"booking_id":     booking.ID,
		"invoice_number": booking.InvoiceNumber,
		"total_price":    booking.TotalPrice,
		"status":         booking.Status,
	})
}

func (h *BookingHandler) HandleMyBookings(ctx *gin.Context) {
	client := CurrentClient(ctx)

	status := model.BookingStatus(ctx.Query("status"))
	bookings, err := h.app.BookingService.ListForClient(client.ID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	if status != "" {
		filtered := bookings[:0]
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	ctx.JSON(200, gin.H{
		"bookings": bookings,
	})
}

// HandleMyInvoices matches on the snapshot email so bookings placed as a
// guest before registering still show up.
func (h *BookingHandler) HandleMyInvoices(ctx *gin.Context) {
	client := CurrentClient(ctx)

	bookings, err := h.app.BookingService.ListByCustomerEmail(client.Email)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"invoices": bookings,
	})
}

func (h *BookingHandler) HandleGetInvoice(ctx *gin.Context) {
	client := CurrentClient(ctx)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	booking, err := h.app.BookingService.GetByID(uint(id))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	if !ownsBooking(client, booking) {
		// hide other customers' invoices without confirming they exist
		ctx.JSON(404, gin.H{
			"error": "Resource not found",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"invoice": booking,
	})
}

func ownsBooking(client *model.Client, booking *model.Booking) bool {
	if booking.ClientID != nil && *booking.ClientID == client.ID {
		return true
	}
	return booking.CustomerEmail == client.Email
}

type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	TourPackageID uint    `json:"tour_package_id" binding:"required"`
	DepartureDate string  `json:"departure_date" binding:"required"`
	Participants  int     `json:"participants" binding:"required"`
	Notes         string  `json:"notes"`
	TotalPrice    float64 `json:"total_price"` // accepted but never trusted
}

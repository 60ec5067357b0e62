package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

// AdminHandler serves the back office: package/destination management,
// booking oversight and the dashboard aggregates. Every route behind it is
// wrapped in RequireAdmin.
type AdminHandler struct {
	app *app.App
}

func NewAdminHandler(app *app.App) *AdminHandler {
	return &AdminHandler{
		app: app,
	}
}

func (h *AdminHandler) HandleListPackages(ctx *gin.Context) {
	pkgs, err := h.app.PackageService.ListAll()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"packages": pkgs,
	})
}

func (h *AdminHandler) HandleCreatePackage(ctx *gin.Context) {
	var req PackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	pkg, err := h.app.PackageService.Create(req.toInput())
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(201, gin.H{
		"success": true,
		"package": pkg,
	})
}

func (h *AdminHandler) HandleUpdatePackage(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req PackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	pkg, err := h.app.PackageService.Update(id, req.toInput())
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success": true,
		"package": pkg,
	})
}

func (h *AdminHandler) HandleDeletePackage(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := h.app.PackageService.Delete(id); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AdminHandler) HandleGetPackage(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	pkg, err := h.app.PackageService.GetByID(id)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"package": pkg,
	})
}

func (h *AdminHandler) HandleCreateDestination(ctx *gin.Context) {
	var req DestinationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	dest, err := h.app.DestinationService.Create(req.toInput())
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(201, gin.H{
		"success":     true,
		"destination": dest,
	})
}

func (h *AdminHandler) HandleUpdateDestination(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req DestinationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	dest, err := h.app.DestinationService.Update(id, req.toInput())
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success":     true,
		"destination": dest,
	})
}

func (h *AdminHandler) HandleDeleteDestination(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := h.app.DestinationService.Delete(id); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AdminHandler) HandleCreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	category, err := h.app.CategoryService.Create(req.Name, req.Description)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(201, gin.H{
		"success":  true,
		"category": category,
	})
}

func (h *AdminHandler) HandleListBookings(ctx *gin.Context) {
	status := model.BookingStatus(ctx.Query("status"))
	bookings, err := h.app.BookingService.ListAll(status)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"bookings": bookings,
	})
}

func (h *AdminHandler) HandleRecentBookings(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	bookings, err := h.app.BookingService.Recent(limit)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"bookings": bookings,
	})
}

func (h *AdminHandler) HandleUpdateBookingStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req UpdateBookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.BookingWorkflow.SetStatus(id, model.BookingStatus(req.Status)); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AdminHandler) HandleUpdatePaymentStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.BookingService.SetPaymentStatus(id, model.PaymentStatus(req.PaymentStatus)); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AdminHandler) HandleStats(ctx *gin.Context) {
	stats, err := h.app.BookingService.DashboardStats()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	ctx.JSON(200, stats)
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

type PackageRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required"`
	DurationDays    int     `json:"duration_days" binding:"required"`
	MaxParticipants int     `json:"max_participants" binding:"required"`
	CategoryID      uint    `json:"category_id"`
	DestinationID   uint    `json:"destination_id"`
	ImageURL        string  `json:"image_url"`
	Itinerary       string  `json:"itinerary"`
	Includes        string  `json:"includes"`
	Excludes        string  `json:"excludes"`
	IsActive        *bool   `json:"is_active"`
}

func (r PackageRequest) toInput() domain.PackageInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.PackageInput{
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		DurationDays:    r.DurationDays,
		MaxParticipants: r.MaxParticipants,
		CategoryID:      r.CategoryID,
		DestinationID:   r.DestinationID,
		ImageURL:        r.ImageURL,
		Itinerary:       r.Itinerary,
		Includes:        r.Includes,
		Excludes:        r.Excludes,
		IsActive:        active,
	}
}

type DestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r DestinationRequest) toInput() domain.DestinationInput {
	return domain.DestinationInput{
		Name:        r.Name,
		Country:     r.Country,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

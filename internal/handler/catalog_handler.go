package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
)

// CatalogHandler serves the public storefront reads plus review creation.
type CatalogHandler struct {
	app *app.App
}

func NewCatalogHandler(app *app.App) *CatalogHandler {
	return &CatalogHandler{
		app: app,
	}
}

func (h *CatalogHandler) HandleListPackages(ctx *gin.Context) {
	filter := repository.PackageFilter{
		CategoryID:    uintQuery(ctx, "category_id"),
		DestinationID: uintQuery(ctx, "destination_id"),
	}

	pkgs, err := h.app.PackageService.ListActive(filter)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"packages": pkgs,
	})
}

func (h *CatalogHandler) HandleGetPackage(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid package id",
		})
		return
	}

	pkg, err := h.app.PackageService.GetActiveByID(uint(id))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"package": pkg,
	})
}

func (h *CatalogHandler) HandleListDestinations(ctx *gin.Context) {
	dests, err := h.app.DestinationService.ListAll()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"destinations": dests,
	})
}

func (h *CatalogHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.app.CategoryService.ListAll()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"categories": categories,
	})
}

func (h *CatalogHandler) HandleListReviews(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid package id",
		})
		return
	}

	reviews, err := h.app.ReviewService.ListByPackageID(uint(id))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"reviews": reviews,
	})
}

func (h *CatalogHandler) HandleCreateReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid package id",
		})
		return
	}

	var req CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	input := domain.ReviewInput{
		TourPackageID: uint(id),
		CustomerName:  req.CustomerName,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if token, err := ctx.Cookie(ClientSessionCookie); err == nil {
		if client, err := h.app.SessionService.ValidateClient(token); err == nil {
			input.ClientID = &client.ID
		}
	}

	review, err := h.app.ReviewService.Create(input)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, gin.H{
		"success": true,
		"review":  review,
	})
}

func uintQuery(ctx *gin.Context, name string) uint {
	v, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

type CreateReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

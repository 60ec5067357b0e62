package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
	"github.com/kyodai-travel/tourbook/internal/model"
)

type AuthHandler struct {
	app *app.App
}

func NewAuthHandler(app *app.App) *AuthHandler {
	return &AuthHandler{
		app: app,
	}
}

func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	client, err := h.app.ClientService.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	// registration logs the client straight in, same as the storefront flow
	token, expiresAt, err := h.app.SessionService.CreateSession(model.SessionKindClient, client.ID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	setSessionCookie(ctx, ClientSessionCookie, token, expiresAt, h.app.Config.IsProduction())

	ctx.JSON(201, gin.H{
		"success": true,
		"client":  clientJSON(client),
	})
}

func (h *AuthHandler) HandleClientLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	client, err := h.app.ClientService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	token, expiresAt, err := h.app.SessionService.CreateSession(model.SessionKindClient, client.ID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	setSessionCookie(ctx, ClientSessionCookie, token, expiresAt, h.app.Config.IsProduction())

	ctx.JSON(200, gin.H{
		"success": true,
		"client":  clientJSON(client),
	})
}

// HandleClientLogout never fails: the server-side delete is best effort and
// the cookie is cleared regardless.
func (h *AuthHandler) HandleClientLogout(ctx *gin.Context) {
	token, _ := ctx.Cookie(ClientSessionCookie)
	h.app.SessionService.DestroySession(model.SessionKindClient, token)
	clearSessionCookie(ctx, ClientSessionCookie, h.app.Config.IsProduction())
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AuthHandler) HandleAdminLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	admin, err := h.app.AdminService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	token, expiresAt, err := h.app.SessionService.CreateSession(model.SessionKindAdmin, admin.ID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}
	setSessionCookie(ctx, AdminSessionCookie, token, expiresAt, h.app.Config.IsProduction())

	ctx.JSON(200, gin.H{
		"success": true,
		"admin":   adminJSON(admin),
	})
}

func (h *AuthHandler) HandleAdminLogout(ctx *gin.Context) {
	token, _ := ctx.Cookie(AdminSessionCookie)
	h.app.SessionService.DestroySession(model.SessionKindAdmin, token)
	clearSessionCookie(ctx, AdminSessionCookie, h.app.Config.IsProduction())
	ctx.JSON(200, gin.H{
		"success": true,
	})
}

func (h *AuthHandler) HandleProfile(ctx *gin.Context) {
	client := CurrentClient(ctx)
	ctx.JSON(200, gin.H{
		"client": clientJSON(client),
	})
}

func (h *AuthHandler) HandleUpdateProfile(ctx *gin.Context) {
	client := CurrentClient(ctx)

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.ClientService.UpdateProfile(client.ID, req.Name, req.Phone, req.Address); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, gin.H{
		"success": true,
	})
}

// clientJSON and adminJSON list fields explicitly so the password hash can
// never end up in a response.
func clientJSON(client *model.Client) gin.H {
	return gin.H{
		"id":      client.ID,
		"name":    client.Name,
		"email":   client.Email,
		"phone":   client.Phone,
		"address": client.Address,
	}
}

func adminJSON(admin *model.Admin) gin.H {
	return gin.H{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

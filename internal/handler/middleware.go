package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
	"github.com/kyodai-travel/tourbook/internal/model"
)

// Each principal kind has its own cookie; the two are never interchangeable.
const (
	ClientSessionCookie = "client_session"
	AdminSessionCookie  = "admin_session"

	clientContextKey = "client"
	adminContextKey  = "admin"
)

func RequireClient(app *app.App) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, _ := ctx.Cookie(ClientSessionCookie)
		client, err := app.SessionService.ValidateClient(token)
		if err != nil {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "Please log in",
			})
			return
		}
		ctx.Set(clientContextKey, client)
		ctx.Next()
	}
}

func RequireAdmin(app *app.App) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, _ := ctx.Cookie(AdminSessionCookie)
		admin, err := app.SessionService.ValidateAdmin(token)
		if err != nil {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "Please log in",
			})
			return
		}
		ctx.Set(adminContextKey, admin)
		ctx.Next()
	}
}

func CurrentClient(ctx *gin.Context) *model.Client {
	if v, ok := ctx.Get(clientContextKey); ok {
		if client, ok := v.(*model.Client); ok {
			return client
		}
	}
	return nil
}

func CurrentAdmin(ctx *gin.Context) *model.Admin {
	if v, ok := ctx.Get(adminContextKey); ok {
		if admin, ok := v.(*model.Admin); ok {
			return admin
		}
	}
	return nil
}

func setSessionCookie(ctx *gin.Context, name, token string, expiresAt time.Time, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, token, int(time.Until(expiresAt).Seconds()), "/", "", secure, true)
}

func clearSessionCookie(ctx *gin.Context, name string, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, "", -1, "/", "", secure, true)
}

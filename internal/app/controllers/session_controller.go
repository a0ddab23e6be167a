package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/services"
	"github.com/yigit/campuserp/internal/middleware"
)

// SessionController exposes the client session to API callers
type SessionController struct {
	authService     *services.AuthService
	directorySource string
	logger          zerolog.Logger
}

// NewSessionController creates a new SessionController. directorySource names
// the credential directory backend reported by the health check.
func NewSessionController(authService *services.AuthService, directorySource string, logger zerolog.Logger) *SessionController {
	return &SessionController{
		authService:     authService,
		directorySource: directorySource,
		logger:          logger,
	}
}

// GetSession returns the identity, navigation and capabilities of the caller
// @Summary Current session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Router /api/v1/session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	client, ok := middleware.ClientFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingClient)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.authService.Session(client), ""))
}

// UpdateSettings applies a partial update to the caller's preferences
// @Summary Update settings
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /api/v1/settings [patch]
func (c *SessionController) UpdateSettings(ctx *gin.Context) {
	client, ok := middleware.ClientFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingClient)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Str("clientId", client.ID).Msg("Invalid settings payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated := c.authService.UpdateSettings(client, &req)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(updated, "Settings updated"))
}

// Health reports liveness and session counts
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (c *SessionController) Health(ctx *gin.Context) {
	stats := c.authService.Stats()
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:        "ok",
		Directory:     c.directorySource,
		Clients:       stats.Clients,
		Authenticated: stats.Authenticated,
	})
}

// Ping answers pong
func (c *SessionController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

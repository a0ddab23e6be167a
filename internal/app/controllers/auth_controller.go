// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/repositories"
	"github.com/yigit/campuserp/internal/app/services"
	"github.com/yigit/campuserp/internal/middleware"
)

// Redirect targets after login and logout
const (
	afterLogin  = "/dashboard"
	afterLogout = "/login"
)

// AuthController handles the login screen and sign in/out
type AuthController struct {
	authService *services.AuthService
	directory   repositories.DirectoryRepository
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController. The entries of directory
// are shown on the login screen as demo accounts.
func NewAuthController(authService *services.AuthService, directory repositories.DirectoryRepository, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		directory:   directory,
		logger:      logger,
	}
}

// demoAccounts lists the directory. A failed lookup leaves the list empty,
// the form itself still works.
func (c *AuthController) demoAccounts(ctx *gin.Context) []dto.DemoAccount {
	entries, err := c.directory.List(ctx.Request.Context())
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to list demo accounts")
		return []dto.DemoAccount{}
	}

	demo := make([]dto.DemoAccount, 0, len(entries))
	for _, e := range entries {
		demo = append(demo, dto.DemoAccount{Email: e.Email, Role: e.Role})
	}
	return demo
}

// LoginScreen renders the login screen
// @Summary Login screen
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LoginScreen}
// @Success 302 "Already signed in, redirected to /dashboard"
// @Router /login [get]
func (c *AuthController) LoginScreen(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginScreen{
		Roles:       models.AllRoles,
		DefaultRole: models.RoleStudent,
		Demo:        c.demoAccounts(ctx),
	}, ""))
}

// Login authenticates the client session
// @Summary Sign in
// @Description Verifies email, password and role against the directory. The
// @Description call takes about a second. Form posts are redirected to the
// @Description dashboard; JSON callers get the session back.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Success 303 "Signed in, redirected to /dashboard"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 503 {object} dto.ErrorResponse "Credential directory unavailable"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	client, ok := middleware.ClientFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingClient)
		return
	}

	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Str("clientId", client.ID).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if _, err := c.authService.Login(ctx.Request.Context(), client, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if isFormPost(ctx) {
		ctx.Redirect(http.StatusSeeOther, afterLogin)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.authService.Session(client), "Login successful"))
}

// Logout signs the client session out and returns to the login screen
// @Summary Sign out
// @Tags auth
// @Success 303 "Redirected to /login"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if client, ok := middleware.ClientFromContext(ctx); ok {
		c.authService.Logout(client)
	}
	ctx.Redirect(http.StatusSeeOther, afterLogout)
}

func isFormPost(ctx *gin.Context) bool {
	switch ctx.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/services"
	"github.com/yigit/campuserp/internal/app/session"
	"github.com/yigit/campuserp/internal/middleware"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	"github.com/yigit/campuserp/internal/pkg/helpers"
)

var errMissingClient = apperrors.NewCustomError(apperrors.ErrClientNotFound, "Client session missing")

// ScreenController serves the portal screens as JSON view models. Every
// handler runs behind the route gate, so the session is authenticated.
type ScreenController struct {
	viewService *services.ViewService
}

// NewScreenController creates a new ScreenController
func NewScreenController(viewService *services.ViewService) *ScreenController {
	return &ScreenController{viewService: viewService}
}

// signedIn returns the client session and its identity. A session signed out
// between the gate and the handler is sent back to the login screen.
func signedIn(ctx *gin.Context) (*session.Client, *models.Identity, bool) {
	client, ok := middleware.ClientFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingClient)
		return nil, nil, false
	}
	identity := client.Store.CurrentIdentity()
	if identity == nil {
		ctx.Redirect(http.StatusFound, afterLogout)
		return nil, nil, false
	}
	return client, identity, true
}

// Root sends the portal root to the dashboard
// @Summary Portal root
// @Tags screens
// @Success 302 "Redirected to /dashboard"
// @Router / [get]
func (c *ScreenController) Root(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, afterLogin)
}

// Dashboard renders the role dashboard
// @Summary Dashboard
// @Tags screens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardScreen}
// @Router /dashboard [get]
func (c *ScreenController) Dashboard(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Dashboard(identity), ""))
}

// Admissions renders the admissions screen
// @Summary Admissions
// @Tags screens
// @Produce json
// @Param q query string false "Name or email contains"
// @Param status query string false "all, pending, approved or rejected"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionsScreen}
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Router /admissions [get]
func (c *ScreenController) Admissions(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}

	var q dto.AdmissionsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	q.Page, q.Size = helpers.ParsePaginationParams(ctx)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Admissions(identity, q), ""))
}

// Fees renders the fee screen; students see their own records only
// @Summary Fees
// @Tags screens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FeesScreen}
// @Router /fees [get]
func (c *ScreenController) Fees(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Fees(identity), ""))
}

// Hostel renders the rooms of one hostel block
// @Summary Hostel
// @Tags screens
// @Produce json
// @Param block query string false "Hostel block" default(A)
// @Success 200 {object} dto.APIResponse{data=dto.HostelScreen}
// @Router /hostel [get]
func (c *ScreenController) Hostel(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}

	var q dto.HostelQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Hostel(identity, q), ""))
}

// Library renders the library catalogue
// @Summary Library
// @Tags screens
// @Produce json
// @Param q query string false "Title, author or ISBN"
// @Param category query string false "Book category"
// @Success 200 {object} dto.APIResponse{data=dto.LibraryScreen}
// @Router /library [get]
func (c *ScreenController) Library(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}

	var q dto.LibraryQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Library(identity, q), ""))
}

// Examinations renders exams and results
// @Summary Examinations
// @Tags screens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ExaminationsScreen}
// @Router /examinations [get]
func (c *ScreenController) Examinations(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Examinations(identity), ""))
}

// Profile renders the signed-in identity
// @Summary Profile
// @Tags screens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileScreen}
// @Router /profile [get]
func (c *ScreenController) Profile(ctx *gin.Context) {
	_, identity, ok := signedIn(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Profile(identity), ""))
}

// Settings renders the client's preferences
// @Summary Settings
// @Tags screens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SettingsScreen}
// @Router /settings [get]
func (c *ScreenController) Settings(ctx *gin.Context) {
	client, identity, ok := signedIn(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.viewService.Settings(identity, client.Settings()), ""))
}

// NotFound answers paths outside the navigation surface once the gate lets
// them through
func (c *ScreenController) NotFound(ctx *gin.Context) {
	middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrScreenNotFound, "Page not found").
		WithDetails(map[string]interface{}{"path": ctx.Request.URL.Path}))
}

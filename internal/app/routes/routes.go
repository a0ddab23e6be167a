package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campuserp/internal/app/controllers"
	"github.com/yigit/campuserp/internal/middleware"
	"github.com/yigit/campuserp/internal/pkg/logger"
	"github.com/yigit/campuserp/internal/pkg/websocket"
)

// GateMiddleware applies Gate to the request path of a navigation request.
// It runs after SessionMiddleware.ClientSession.
func GateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := false
		clientID := ""
		if client, ok := middleware.ClientFromContext(c); ok {
			authenticated = client.Store.IsAuthenticated()
			clientID = client.ID
		}

		decision := Gate(c.Request.URL.Path, authenticated)
		if decision.Action == Redirect {
			lgr := logger.ForClient(clientID)
			lgr.Debug().
				Str("path", c.Request.URL.Path).
				Str("location", decision.Location).
				Bool("authenticated", authenticated).
				Msg("Navigation redirected")
			c.Redirect(redirectStatus(c.Request.Method), decision.Location)
			c.Abort()
			return
		}
		c.Next()
	}
}

// redirectStatus makes a redirected form post arrive as a GET
func redirectStatus(method string) int {
	if method == http.MethodGet || method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	screenController *controllers.ScreenController,
	sessionController *controllers.SessionController,
	streamHandler *websocket.Handler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	clientSession := sessionMiddleware.ClientSession()

	// --- Screens: every navigation request goes through the gate ---
	screens := router.Group("")
	screens.Use(clientSession, GateMiddleware())
	{
		screens.GET(PathRoot, screenController.Root)
		screens.GET(PathLogin, authController.LoginScreen)
		screens.POST(PathLogin, authController.Login)
		screens.GET(PathDashboard, screenController.Dashboard)
		screens.GET(PathAdmissions, screenController.Admissions)
		screens.GET(PathFees, screenController.Fees)
		screens.GET(PathHostel, screenController.Hostel)
		screens.GET(PathLibrary, screenController.Library)
		screens.GET(PathExaminations, screenController.Examinations)
		screens.GET(PathProfile, screenController.Profile)
		screens.GET(PathSettings, screenController.Settings)
	}

	// Logout is allowed from any state
	router.POST("/logout", clientSession, authController.Logout)

	// Unknown paths are gated like screens and answer 404 once rendered
	router.NoRoute(clientSession, GateMiddleware(), screenController.NotFound)

	// --- API ---
	v1 := router.Group("/api/v1")
	v1.GET("/health", sessionController.Health)

	api := v1.Group("")
	api.Use(clientSession)
	{
		api.GET("/session", sessionController.GetSession)
		api.GET("/session/events", streamHandler.HandleConnection)
		api.PATCH("/settings", sessionMiddleware.RequireAuthenticated(), sessionController.UpdateSettings)
	}

	router.GET("/ping", sessionController.Ping)
}

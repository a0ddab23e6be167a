package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuserp/internal/app/controllers"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/repositories"
	"github.com/yigit/campuserp/internal/app/services"
	"github.com/yigit/campuserp/internal/app/session"
	"github.com/yigit/campuserp/internal/middleware"
	"github.com/yigit/campuserp/internal/pkg/auth"
	"github.com/yigit/campuserp/internal/pkg/websocket"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repos, err := repositories.NewMemoryRepositories(models.DemoIdentities())
	require.NoError(t, err)
	return newRouterWithRepos(t, repos)
}

func newRouterWithRepos(t *testing.T, repos *repositories.Repositories) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pw, err := auth.NewDemoPasswordWithCost("password", bcrypt.MinCost)
	require.NoError(t, err)

	registry := session.NewRegistry(session.NewDirectoryVerifier(repos.Directory, pw, 0))
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "routes-secret", ClientTokenExp: time.Hour, TokenIssuer: "test"})
	authService := services.NewAuthService(registry, jwtService, zerolog.Nop())
	viewService := services.NewViewService(repos.Records)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, repos.Directory, zerolog.Nop()),
		controllers.NewScreenController(viewService),
		controllers.NewSessionController(authService, "memory", zerolog.Nop()),
		websocket.NewHandler(websocket.NewHub(zerolog.Nop()), zerolog.Nop()),
		middleware.NewSessionMiddleware(authService, false),
	)
	return router
}

// browser replays the client token like a tab holding the cookie
type browser struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (b *browser) do(method, path string, body string, contentType string) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if b.token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.ClientCookieName, Value: b.token})
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	if issued := w.Header().Get(middleware.ClientTokenHeader); issued != "" {
		b.token = issued
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, "", "")
}

func (b *browser) loginForm(email, password, role string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}, "role": {role}}
	return b.do(http.MethodPost, PathLogin, form.Encode(), "application/x-www-form-urlencoded")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAnonymousNavigationRedirectsToLogin(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	for _, path := range []string{"/", "/dashboard", "/fees", "/settings", "/nowhere"} {
		w := b.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, PathLogin, w.Header().Get("Location"), path)
	}

	w := b.get(PathLogin)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "student", data["defaultRole"])
	assert.Len(t, data["demoAccounts"], 3)
}

func TestFormLoginFlow(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	w := b.loginForm("sarah@staff.edu", "password", "staff")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathDashboard, w.Header().Get("Location"))
	require.NotEmpty(t, b.token)

	w = b.get(PathDashboard)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Welcome back, Dr. Sarah Wilson!", data["welcome"])

	w = b.get(PathLogin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathDashboard, w.Header().Get("Location"))

	w = b.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathDashboard, w.Header().Get("Location"))

	w = b.get("/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	notFound := decode(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "RES_001", notFound["code"])
	assert.Equal(t, "/nowhere", notFound["details"].(map[string]interface{})["path"])

	w = b.do(http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))

	w = b.get(PathDashboard)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))
}

func TestLoginRejected(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	w := b.loginForm("sarah@staff.edu", "password", "admin")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	errBody := decode(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "AUTH_001", errBody["code"])
	assert.Equal(t, "Invalid credentials", errBody["message"])

	// resubmission is allowed
	w = b.loginForm("sarah@staff.edu", "password", "staff")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestLoginValidation(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	w := b.do(http.MethodPost, PathLogin, `{"email":"not-an-email","password":"x","role":"student"}`, "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decode(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "VAL_001", errBody["code"])
	assert.Equal(t, "email", errBody["field"])

	w = b.do(http.MethodPost, PathLogin, `{"email":`, "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJSONLoginReturnsSession(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	w := b.do(http.MethodPost, PathLogin, `{"email":"alex@student.edu","password":"password","role":"student"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["isAuthenticated"])
	assert.Equal(t, "alex@student.edu", data["user"].(map[string]interface{})["email"])

	w = b.get("/api/v1/session")
	require.Equal(t, http.StatusOK, w.Code)
	data = decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["capabilities"].(map[string]interface{})["viewsOwnRecordsOnly"])
}

func TestFormPostRedirectUsesSeeOther(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}
	require.Equal(t, http.StatusSeeOther, b.loginForm("admin@college.edu", "password", "admin").Code)

	w := b.loginForm("admin@college.edu", "password", "admin")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathDashboard, w.Header().Get("Location"))
}

func TestSettingsRequireAuthentication(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}

	w := b.do(http.MethodPatch, "/api/v1/settings", `{"theme":"dark"}`, "application/json")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_008", decode(t, w)["error"].(map[string]interface{})["code"])

	require.Equal(t, http.StatusSeeOther, b.loginForm("admin@college.edu", "password", "admin").Code)

	w = b.do(http.MethodPatch, "/api/v1/settings", `{"theme":"neon"}`, "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.do(http.MethodPatch, "/api/v1/settings", `{"theme":"dark","privacy":{"showEmail":true}}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	w = b.get(PathSettings)
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode(t, w)["data"].(map[string]interface{})["settings"].(map[string]interface{})
	assert.Equal(t, "dark", settings["theme"])
}

func TestStudentScreensAreScoped(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}
	require.Equal(t, http.StatusSeeOther, b.loginForm("alex@student.edu", "password", "student").Code)

	w := b.get(PathFees)
	require.Equal(t, http.StatusOK, w.Code)
	records := decode(t, w)["data"].(map[string]interface{})["records"].([]interface{})
	require.Len(t, records, 1)
	assert.Equal(t, "CS2021001", records[0].(map[string]interface{})["rollNumber"])

	w = b.get("/admissions?status=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.get("/admissions?page=x&size=2")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)
	tab1 := &browser{t: t, router: router}
	tab2 := &browser{t: t, router: router}

	require.Equal(t, http.StatusSeeOther, tab1.loginForm("alex@student.edu", "password", "student").Code)
	tab2.get(PathLogin)

	assert.Equal(t, http.StatusOK, tab1.get(PathDashboard).Code)
	assert.Equal(t, http.StatusFound, tab2.get(PathDashboard).Code)
}

func TestHealthAndPing(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t)}
	b.loginForm("alex@student.edu", "password", "student")

	w := b.get("/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["directory"])
	assert.Equal(t, float64(1), body["authenticated"])

	assert.Equal(t, http.StatusOK, b.get("/ping").Code)
}

func TestRedirectStatus(t *testing.T) {
	assert.Equal(t, http.StatusFound, redirectStatus(http.MethodGet))
	assert.Equal(t, http.StatusFound, redirectStatus(http.MethodHead))
	assert.Equal(t, http.StatusSeeOther, redirectStatus(http.MethodPost))
}

func TestLoginScreenListsDirectoryEntries(t *testing.T) {
	repos, err := repositories.NewMemoryRepositories([]models.Identity{
		{ID: "7", Name: "Priya Nair", Email: "priya@staff.edu", Role: models.RoleStaff},
	})
	require.NoError(t, err)
	b := &browser{t: t, router: newRouterWithRepos(t, repos)}

	w := b.get(PathLogin)
	require.Equal(t, http.StatusOK, w.Code)
	demo := decode(t, w)["data"].(map[string]interface{})["demoAccounts"].([]interface{})
	require.Len(t, demo, 1)
	assert.Equal(t, "priya@staff.edu", demo[0].(map[string]interface{})["email"])
	assert.Equal(t, "staff", demo[0].(map[string]interface{})["role"])
}

type unavailableDirectory struct{}

func (unavailableDirectory) FindByEmailAndRole(context.Context, string, models.Role) (*models.Identity, error) {
	return nil, errors.New("connection refused")
}

func (unavailableDirectory) List(context.Context) ([]models.Identity, error) {
	return nil, errors.New("connection refused")
}

func TestDirectoryOutage(t *testing.T) {
	repos, err := repositories.NewMemoryRepositories(nil)
	require.NoError(t, err)
	repos.Directory = unavailableDirectory{}
	b := &browser{t: t, router: newRouterWithRepos(t, repos)}

	w := b.get(PathLogin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"].(map[string]interface{})["demoAccounts"])

	w = b.loginForm("alex@student.edu", "password", "student")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SRV_002", decode(t, w)["error"].(map[string]interface{})["code"])

	w = b.get(PathDashboard)
	assert.Equal(t, http.StatusFound, w.Code)
}

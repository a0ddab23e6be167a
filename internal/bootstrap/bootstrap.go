package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campuserp/internal/app/controllers"
	appMigrations "github.com/yigit/campuserp/internal/app/migrations"
	appRepos "github.com/yigit/campuserp/internal/app/repositories"
	appRoutes "github.com/yigit/campuserp/internal/app/routes"
	appServices "github.com/yigit/campuserp/internal/app/services"
	"github.com/yigit/campuserp/internal/app/session"
	"github.com/yigit/campuserp/internal/config"
	"github.com/yigit/campuserp/internal/db"
	appMiddleware "github.com/yigit/campuserp/internal/middleware"
	pkgAuth "github.com/yigit/campuserp/internal/pkg/auth"
	"github.com/yigit/campuserp/internal/pkg/helpers"
	"github.com/yigit/campuserp/internal/pkg/logger"
	"github.com/yigit/campuserp/internal/pkg/websocket"
	"github.com/yigit/campuserp/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Registry          *session.Registry
	JWTService        *pkgAuth.JWTService
	AuthService       *appServices.AuthService
	ViewService       *appServices.ViewService
	AuthController    *appControllers.AuthController
	ScreenController  *appControllers.ScreenController
	SessionController *appControllers.SessionController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Hub               *websocket.Hub
	StreamHandler     *websocket.Handler
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the
// directory. It returns nil when the directory is held in memory.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Directory.Source != config.DirectoryPostgres {
		lgr.Info().Str("source", cfg.Directory.Source).Msg("Credential directory held in memory, skipping database")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Directory.Seed {
		dir := appRepos.NewPostgresDirectory(database.Pool)
		if _, err := seed.CreateDirectoryEntries(ctx, dir, cfg.DirectoryEntries(), lgr); err != nil {
			// a partially seeded directory still serves the entries it has
			lgr.Error().Err(err).Msg("Failed to seed directory, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies wires repositories, the session registry, services,
// controllers and the session event stream.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	if database != nil {
		deps.Repos = appRepos.NewPostgresRepositories(database.Pool)
	} else {
		deps.Repos, err = appRepos.NewMemoryRepositories(cfg.DirectoryEntries())
		if err != nil {
			return nil, fmt.Errorf("failed to build credential directory: %w", err)
		}
	}

	demoPassword, err := pkgAuth.NewDemoPassword(cfg.Auth.DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	latency := helpers.ParseDuration(cfg.Auth.LoginLatency, session.DefaultLatency)
	verifier := session.NewDirectoryVerifier(deps.Repos.Directory, demoPassword, latency)
	deps.Registry = session.NewRegistry(verifier)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		ClientTokenExp: helpers.ParseDuration(cfg.JWT.ClientTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Registry, deps.JWTService, lgr)
	deps.ViewService = appServices.NewViewService(deps.Repos.Records)

	deps.Hub = websocket.NewHub(lgr)
	deps.StreamHandler = websocket.NewHandler(deps.Hub, lgr)
	deps.Registry.Observe(auditSessionEvent(lgr))
	deps.Registry.Observe(deps.Hub.Publish)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.AuthService, cfg.Server.SecureCookie)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Repos.Directory, lgr)
	deps.ScreenController = appControllers.NewScreenController(deps.ViewService)
	deps.SessionController = appControllers.NewSessionController(deps.AuthService, cfg.Directory.Source, lgr)

	return deps, nil
}

// auditSessionEvent logs every session change with the client it belongs to
func auditSessionEvent(lgr zerolog.Logger) session.Observer {
	return func(clientID string, ev session.Event) {
		event := lgr.Info().Str("clientId", clientID).Bool("authenticated", ev.Authenticated)
		if ev.Identity != nil {
			event = event.Str("email", ev.Identity.Email).Str("role", string(ev.Identity.Role))
		}
		event.Msg("Session changed")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ScreenController,
		deps.SessionController,
		deps.StreamHandler,
		deps.SessionMiddleware,
	)

	return router
}

package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/galacticorp/hr-portal/docs" // Import generated swagger docs
	appControllers "github.com/galacticorp/hr-portal/internal/app/controllers"
	appRoutes "github.com/galacticorp/hr-portal/internal/app/routes"
	appServices "github.com/galacticorp/hr-portal/internal/app/services"
	"github.com/galacticorp/hr-portal/internal/app/store"
	"github.com/galacticorp/hr-portal/internal/config"
	appMiddleware "github.com/galacticorp/hr-portal/internal/middleware"
	"github.com/galacticorp/hr-portal/internal/pkg/identity"
	"github.com/galacticorp/hr-portal/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ActivityService    appServices.ActivityService // Interface type
	ActivityController *appControllers.ActivityController
	PortalController   *appControllers.PortalController
	Identity           identity.Provider
	Store              *store.ActivityStore
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the durable activity mirror and loads the catalog, seeding
// the defaults when the mirror is absent or unreadable.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.ActivityStore, error) {
	dir := filepath.Dir(cfg.Storage.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			lgr.Error().Err(err).Str("path", dir).Msg("Failed to create storage directory")
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	s, err := store.Open(cfg.Storage.Path, cfg.Storage.Bucket, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open activity store")
		return nil, err
	}

	lgr.Info().Str("path", cfg.Storage.Path).Int("activities", s.Count()).Msg("Activity store ready")
	return s, nil
}

// BuildDependencies initializes the identity provider, services and controllers.
func BuildDependencies(cfg *config.Config, activityStore *store.ActivityStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: activityStore}

	deps.Identity = identity.NewStaticProvider(cfg.Identity.UserID, cfg.Identity.UserName)

	deps.ActivityService = appServices.NewActivityService(activityStore, deps.Identity, lgr)

	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService, deps.Identity)
	deps.PortalController = appControllers.NewPortalController()

	return deps, nil
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ActivityController,
		deps.PortalController,
	)

	return router
}

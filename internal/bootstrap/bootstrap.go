package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/selim/campushub/internal/app/auth"
	appControllers "github.com/selim/campushub/internal/app/controllers"
	appMigrations "github.com/selim/campushub/internal/app/migrations"
	appRepos "github.com/selim/campushub/internal/app/repositories"
	appRoutes "github.com/selim/campushub/internal/app/routes"
	appServices "github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/config"
	"github.com/selim/campushub/internal/db"
	appMiddleware "github.com/selim/campushub/internal/middleware"
	pkgAuth "github.com/selim/campushub/internal/pkg/auth"
	"github.com/selim/campushub/internal/pkg/filestorage"
	"github.com/selim/campushub/internal/pkg/logger"
	"github.com/selim/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	PostService       appServices.PostService
	CommentService    appServices.CommentService
	FriendService     appServices.FriendService
	MessageService    appServices.MessageService
	GroupService      appServices.GroupService
	ReportService     appServices.ReportService
	UserService       appServices.UserService
	PostController    *appControllers.PostController
	CommentController *appControllers.CommentController
	FriendController  *appControllers.FriendController
	MessageController *appControllers.MessageController
	GroupController   *appControllers.GroupController
	ReportController  *appControllers.ReportController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	IdentityVerifier  *pkgAuth.IdentityVerifier
	AuthzService      *appAuth.AuthorizationService
	Logger            zerolog.Logger
	FileStorage       *filestorage.LocalStorage
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding failure is not fatal; the server can run with an empty store
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// File storage base URL must match the static file serving endpoint
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.IdentityVerifier = pkgAuth.NewIdentityVerifier(pkgAuth.IdentityConfig{
		SecretKey: cfg.Identity.Secret,
		Issuer:    cfg.Identity.Issuer,
	})

	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.LikeRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		deps.AuthzService,
		lgr,
	)
	deps.CommentService = appServices.NewCommentService(
		deps.Repos.CommentRepository,
		deps.Repos.PostRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		lgr,
	)
	deps.FriendService = appServices.NewFriendService(
		deps.Repos.FriendRequestRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.MessageService = appServices.NewMessageService(
		deps.Repos.MessageRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository, lgr)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ReportRepository,
		deps.Repos.PostRepository,
		deps.Repos.CommentRepository,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.FileStorage,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.IdentityVerifier)

	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService)
	deps.FriendController = appControllers.NewFriendController(deps.FriendService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, deps.FriendService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.PostController,
		deps.CommentController,
		deps.FriendController,
		deps.MessageController,
		deps.GroupController,
		deps.ReportController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

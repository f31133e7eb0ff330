package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campuscell/studentcell/internal/app/controllers"
	appRepos "github.com/campuscell/studentcell/internal/app/repositories"
	appRoutes "github.com/campuscell/studentcell/internal/app/routes"
	appServices "github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/config"
	appMiddleware "github.com/campuscell/studentcell/internal/middleware"
	"github.com/campuscell/studentcell/internal/pkg/email"
	"github.com/campuscell/studentcell/internal/pkg/logger"
	"github.com/campuscell/studentcell/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService  *appServices.StudentService
	RosterService   *appServices.RosterService
	ImportService   *appServices.ImportService
	ExportService   *appServices.ExportService
	NoticeService   *appServices.NoticeService
	FormService     *appServices.FormService
	HelpdeskService *appServices.HelpdeskService
	EmailService    *appServices.EmailService

	StudentController  *appControllers.StudentController
	ImportController   *appControllers.ImportController
	ExportController   *appControllers.ExportController
	NoticeController   *appControllers.NoticeController
	FormController     *appControllers.FormController
	HelpdeskController *appControllers.HelpdeskController
	EmailController    *appControllers.EmailController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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

// SetupStores creates the in-memory stores and seeds them.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	repos := appRepos.NewRepositories()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := seed.LoadRoster(ctx, cfg.Store.SeedPath, repos, lgr); err != nil {
		lgr.Error().Err(err).Str("path", cfg.Store.SeedPath).Msg("Failed to seed student roster")
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, repos, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return repos, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.StudentService = appServices.NewStudentService(repos.StudentRepository)
	deps.RosterService = appServices.NewRosterService(repos.StudentRepository)
	deps.ImportService = appServices.NewImportService(repos.StudentRepository)
	deps.ExportService = appServices.NewExportService(cfg.Export.SheetName)
	deps.NoticeService = appServices.NewNoticeService(repos.NoticeRepository)
	deps.FormService = appServices.NewFormService(repos.FormRepository)
	deps.HelpdeskService = appServices.NewHelpdeskService(repos.TicketRepository)
	deps.EmailService = appServices.NewEmailService(repos.StudentRepository, sender, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.RosterService)
	deps.ImportController = appControllers.NewImportController(deps.ImportService)
	deps.ExportController = appControllers.NewExportController(deps.ExportService, deps.RosterService, deps.StudentService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.FormController = appControllers.NewFormController(deps.FormService)
	deps.HelpdeskController = appControllers.NewHelpdeskController(deps.HelpdeskService)
	deps.EmailController = appControllers.NewEmailController(deps.EmailService)

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
	router.Use(appMiddleware.RequestLogger())

	// The admin UI is served from a different origin during development.
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ImportController,
		deps.ExportController,
		deps.NoticeController,
		deps.FormController,
		deps.HelpdeskController,
		deps.EmailController,
	)

	return router
}

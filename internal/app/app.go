package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/controller"
	"web3_journey_backend/internal/localstore"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/pkg/database"
	"web3_journey_backend/pkg/logger"
	"web3_journey_backend/pkg/monitoring"
	"web3_journey_backend/pkg/security"
	"web3_journey_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services  *services
	hubCancel context.CancelFunc
}

type repositories struct {
	user        *repository.UserRepository
	learning    *repository.LearningProgressRepository
	project     *repository.ProjectProgressRepository
	stats       *repository.StatsRepository
	note        *repository.NoteRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	progress    *service.ProgressService
	stats       *service.StatsService
	ai          *service.AIService
	storage     service.StorageProvider
	certificate *service.CertificateService
	report      *service.ReportService
	note        *service.NoteService
	hub         *service.ProgressHub
	guestStores *localstore.Manager
}

type controllers struct {
	auth        *controller.AuthController
	progress    *controller.ProgressController
	stats       *controller.StatsController
	content     *controller.ContentController
	ai          *controller.AIController
	certificate *controller.CertificateController
	report      *controller.ReportController
	note        *controller.NoteController
	guest       *controller.GuestController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		learning:    repository.NewLearningProgressRepository(db),
		project:     repository.NewProjectProgressRepository(db),
		stats:       repository.NewStatsRepository(db),
		note:        repository.NewNoteRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.progress = service.NewProgressService(repos.learning, repos.project, rdb)
	s.stats = service.NewStatsService(repos.stats, s.progress, rdb)
	s.ai = service.NewAIService(cfg)
	s.certificate = service.NewCertificateService(repos.certificate, repos.user, s.progress, storage, cfg)
	s.report = service.NewReportService(s.progress, s.stats, cfg)
	s.note = service.NewNoteService(repos.note)
	s.guestStores = localstore.NewManager(cfg.Guest.DataDir)

	s.hub = service.NewProgressHub(s.progress, rdb)
	hubCtx, cancel := context.WithCancel(context.Background())
	a.hubCancel = cancel
	go s.hub.Run(hubCtx)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		progress:    controller.NewProgressController(s.progress, s.stats, s.hub),
		stats:       controller.NewStatsController(s.stats),
		content:     controller.NewContentController(),
		ai:          controller.NewAIController(s.ai),
		certificate: controller.NewCertificateController(s.certificate),
		report:      controller.NewReportController(s.report, s.auth),
		note:        controller.NewNoteController(s.note),
		guest:       controller.NewGuestController(s.guestStores),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to run database migration", zap.Error(err))
		log.Fatalf("Failed to run database migration: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("web3-journey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.hubCancel != nil {
		a.hubCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

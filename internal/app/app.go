package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"fe_exam_backend/internal/config"
	"fe_exam_backend/internal/controller"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/pkg/configwatcher"
	"fe_exam_backend/pkg/database"
	"fe_exam_backend/pkg/logger"
	"fe_exam_backend/pkg/monitoring"
	"fe_exam_backend/pkg/security"
	"fe_exam_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	answer   *repository.AnswerRepository
	exam     *repository.ExamRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	question *service.QuestionService
	practice *service.PracticeService
	exam     *service.ExamService
	mastery  *service.MasteryService
	coverage *service.CoverageService
	ranking  *service.RankingService
	bank     *service.BankService
	storage  *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	question    *controller.QuestionController
	practice    *controller.PracticeController
	exam        *controller.ExamController
	achievement *controller.AchievementController
	ranking     *controller.RankingController
	bank        *controller.BankController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		answer:   repository.NewAnswerRepository(db),
		exam:     repository.NewExamRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.answer)
	s.question = service.NewQuestionService(repos.question, rdb)
	s.mastery = service.NewMasteryService(repos.answer)
	s.coverage = service.NewCoverageService(repos.question, s.mastery)
	s.ranking = service.NewRankingService(repos.user, repos.answer, cfg.Ranking)
	s.practice = service.NewPracticeService(repos.question, repos.answer, repos.user, s.mastery)
	s.exam = service.NewExamService(repos.question, repos.answer, repos.exam, repos.user)
	s.bank = service.NewBankService(repos.question, s.question, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user),
		question:    controller.NewQuestionController(s.question),
		practice:    controller.NewPracticeController(s.practice),
		exam:        controller.NewExamController(s.exam),
		achievement: controller.NewAchievementController(s.coverage),
		ranking:     controller.NewRankingController(s.ranking),
		bank:        controller.NewBankController(s.bank, s.exam),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchRankingConfig hot-reloads the scoring parameters when the config
// file changes; the running service picks them up on the next Score call.
func (a *App) watchRankingConfig(configDir string) {
	configFile := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		logger.Log.Warn("Config file not found, ranking hot-reload disabled", zap.String("path", configFile))
		return
	}
	go configwatcher.WatchConfig(configFile, func(cfg *config.Config) {
		a.services.ranking.UpdateConfig(cfg.Ranking)
		logger.Log.Info("Ranking config reloaded",
			zap.Float64("accuracy_weight", cfg.Ranking.AccuracyWeight),
			zap.Float64("volume_weight", cfg.Ranking.VolumeWeight),
			zap.Float64("activity_weight", cfg.Ranking.ActivityWeight))
	})
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, question cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("fe-exam-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchRankingConfig(configDir)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}

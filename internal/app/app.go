package app

import (
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/controller"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/pkg/database"
	"bjj_academy_backend/pkg/logger"
	"bjj_academy_backend/pkg/monitoring"
	"bjj_academy_backend/pkg/security"
	"bjj_academy_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	user         *repository.UserRepository
	course       *repository.CourseRepository
	lesson       *repository.LessonRepository
	drill        *repository.DrillRepository
	interaction  *repository.InteractionRepository
	purchase     *repository.PurchaseRepository
	subscription *repository.SubscriptionRepository
	payment      *repository.PaymentRepository
	trainingLog  *repository.TrainingLogRepository
	sparring     *repository.SparringVideoRepository
	feed         *repository.FeedRepository
	leaderboard  *repository.LeaderboardRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	user           *service.UserService
	access         *service.AccessService
	recommendation *service.RecommendationService
	course         *service.CourseService
	drill          *service.DrillService
	interaction    *service.InteractionService
	payment        *service.PaymentService
	training       *service.TrainingService
	leaderboard    *service.LeaderboardService
	feed           *service.FeedService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	drill          *controller.DrillController
	recommendation *controller.RecommendationController
	interaction    *controller.InteractionController
	payment        *controller.PaymentController
	training       *controller.TrainingController
	leaderboard    *controller.LeaderboardController
	feed           *controller.FeedController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		lesson:       repository.NewLessonRepository(db),
		drill:        repository.NewDrillRepository(db),
		interaction:  repository.NewInteractionRepository(db),
		purchase:     repository.NewPurchaseRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		payment:      repository.NewPaymentRepository(db),
		trainingLog:  repository.NewTrainingLogRepository(db),
		sparring:     repository.NewSparringVideoRepository(db),
		feed:         repository.NewFeedRepository(db),
		leaderboard:  repository.NewLeaderboardRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.access = service.NewAccessService(repos.subscription, repos.purchase, repos.lesson)
	s.recommendation = service.NewRecommendationService(repos.drill, repos.lesson, repos.interaction, repos.user)
	s.course = service.NewCourseService(repos.course, repos.lesson, repos.interaction, s.access)
	s.drill = service.NewDrillService(repos.drill, repos.interaction, s.access)
	s.interaction = service.NewInteractionService(repos.interaction)
	s.payment = service.NewPaymentService(cfg, repos.payment, repos.purchase, repos.subscription, repos.course, repos.drill)
	s.training = service.NewTrainingService(repos.trainingLog, repos.sparring, repos.leaderboard)
	s.leaderboard = service.NewLeaderboardService(repos.leaderboard, repos.user)
	s.feed = service.NewFeedService(repos.feed, repos.interaction, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.user),
		course:         controller.NewCourseController(s.course, s.access),
		drill:          controller.NewDrillController(s.drill),
		recommendation: controller.NewRecommendationController(s.recommendation),
		interaction:    controller.NewInteractionController(s.interaction),
		payment:        controller.NewPaymentController(s.payment),
		training:       controller.NewTrainingController(s.training),
		leaderboard:    controller.NewLeaderboardController(s.leaderboard),
		feed:           controller.NewFeedController(s.feed),
		health:         controller.NewHealthController(db, rdb),
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

// startBackgroundTasks 每日免费动作轮换
func (a *App) startBackgroundTasks(s *services) {
	s.drill.EnsureDailyFree()
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		for range ticker.C {
			if err := s.drill.RotateDailyFree(); err != nil {
				logger.Log.Error("daily free rotation error", zap.Error(err))
			}
		}
	}()
}

// ReloadConfig 热更新配置，由配置文件监听器调用
func (a *App) ReloadConfig(cfg *config.Config) {
	*a.Config = *cfg
	logger.Log.Info("configuration reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	runMigrations := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, runMigrations)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
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

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("bjj-academy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

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

	log.Println("Server exiting")
}

package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barprep_backend/internal/config"
	"barprep_backend/internal/controller"
	"barprep_backend/internal/llm"
	"barprep_backend/internal/repository"
	"barprep_backend/internal/service"
	"barprep_backend/pkg/database"
	"barprep_backend/pkg/logger"
	"barprep_backend/pkg/monitoring"
	"barprep_backend/pkg/security"
	"barprep_backend/pkg/tracing"

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
}

type repositories struct {
	user           *repository.UserRepository
	session        *repository.SessionRepository
	response       *repository.ResponseRepository
	analytics      *repository.AnalyticsRepository
	chat           *repository.ChatRepository
	recommendation *repository.RecommendationRepository
}

type services struct {
	auth           *service.AuthService
	ai             *service.AIService
	session        *service.SessionService
	analytics      *service.AnalyticsService
	chat           *service.ChatService
	recommendation *service.RecommendationService
}

type controllers struct {
	auth           *controller.AuthController
	session        *controller.SessionController
	question       *controller.QuestionController
	diagnostic     *controller.DiagnosticController
	analytics      *controller.AnalyticsController
	chat           *controller.ChatController
	recommendation *controller.RecommendationController
	health         *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		session:        repository.NewSessionRepository(db),
		response:       repository.NewResponseRepository(db),
		analytics:      repository.NewAnalyticsRepository(db),
		chat:           repository.NewChatRepository(db),
		recommendation: repository.NewRecommendationRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, registry *llm.Registry) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.ai = service.NewAIService(registry)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.session, rdb)
	s.recommendation = service.NewRecommendationService(repos.recommendation)
	s.session = service.NewSessionService(repos.session, repos.response, s.analytics, s.recommendation, s.ai)
	s.chat = service.NewChatService(repos.chat, s.ai)

	return s
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		session:        controller.NewSessionController(s.session),
		question:       controller.NewQuestionController(s.session),
		diagnostic:     controller.NewDiagnosticController(s.session),
		analytics:      controller.NewAnalyticsController(s.analytics),
		chat:           controller.NewChatController(s.chat),
		recommendation: controller.NewRecommendationController(s.recommendation),
		health:         controller.NewHealthController(db, s.ai.Providers),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	registry, err := llm.NewRegistry(context.Background(), llm.Config{
		OpenAI:    llm.ProviderSettings(cfg.AI.OpenAI),
		Anthropic: llm.ProviderSettings(cfg.AI.Anthropic),
		Gemini:    llm.ProviderSettings(cfg.AI.Gemini),
		DeepSeek:  llm.ProviderSettings(cfg.AI.DeepSeek),
	})
	if err != nil {
		logger.Log.Fatal("Failed to initialize content providers", zap.Error(err))
	}
	logger.Log.Info("Content providers registered", zap.Strings("providers", registry.Names()))

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := initRepositories(db)
	services := initServices(repos, cfg, rdb, registry)
	controllers := initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		serviceName := cfg.Tracing.ServiceName
		if serviceName == "" {
			serviceName = "barprep-backend"
		}
		if _, err := tracing.InitTracer(serviceName, cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

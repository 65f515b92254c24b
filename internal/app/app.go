package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"quizdeck_backend/internal/config"
	"quizdeck_backend/internal/controller"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/service"
	"quizdeck_backend/pkg/logger"
	"quizdeck_backend/pkg/monitoring"
	"quizdeck_backend/pkg/security"
	"quizdeck_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Router          *gin.Engine
	cfg             atomic.Pointer[config.Config]
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	module *repository.ModuleRepository
}

type services struct {
	module *service.ModuleService
	quiz   *service.QuizService
}

type controllers struct {
	module *controller.ModuleController
	quiz   *controller.QuizController
	health *controller.HealthController
}

// Config returns the currently active configuration. Middlewares read their
// settings through it on every request, so a reload is picked up immediately.
func (a *App) Config() *config.Config {
	return a.cfg.Load()
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps in a freshly loaded config and notifies subscribers.
// Invoked by the configwatcher goroutine.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.cfg.Store(cfg)
	logger.Log.Info("Config reloaded")
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	moduleRepo, err := repository.NewModuleRepository(cfg.Storage.ModulesPath(), cfg.Storage.TemplateFile)
	if err != nil {
		logger.Log.Fatal("Failed to initialize module store", zap.Error(err))
	}
	return &repositories{module: moduleRepo}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		module: service.NewModuleService(repos.module),
		quiz:   service.NewQuizService(nil),
	}
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		module: controller.NewModuleController(s.module),
		quiz:   controller.NewQuizController(s.quiz, s.module),
		health: controller.NewHealthController(repos.module),
	}
}

func (a *App) allowedOrigins() []string {
	return a.Config().CORS.AllowedOrigins
}

func (a *App) rateLimits() (int, time.Duration) {
	cfg := a.Config()
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	return cfg.RateLimit.MaxRequests, window
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.rateLimits))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{}
	app.cfg.Store(cfg)

	repos := app.initRepositories(cfg)
	services := app.initServices(repos)
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("quizdeck", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	// The tracer provider is built once at startup, so flipping the toggle in
	// a reloaded config cannot take effect until the next restart.
	tracingAtBoot := cfg.Tracing.Enabled
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		if newCfg.Tracing.Enabled != tracingAtBoot {
			logger.Log.Warn("Tracing toggle changed in config; restart to apply")
		}
	})

	app.registerRoutes(router, controllers)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config().Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config().Server.Port)
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}

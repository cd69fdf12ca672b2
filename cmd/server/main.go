package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/adapters/event"
	httpAdapter "github.com/khoahotran/interview-tracker/adapters/http"
	"github.com/khoahotran/interview-tracker/adapters/llm"
	"github.com/khoahotran/interview-tracker/adapters/media_storage"
	"github.com/khoahotran/interview-tracker/adapters/notify"
	"github.com/khoahotran/interview-tracker/adapters/persistence"
	adminUC "github.com/khoahotran/interview-tracker/internal/application/usecase/admin"
	analysisUC "github.com/khoahotran/interview-tracker/internal/application/usecase/analysis"
	authUC "github.com/khoahotran/interview-tracker/internal/application/usecase/auth"
	interviewUC "github.com/khoahotran/interview-tracker/internal/application/usecase/interview"
	standupUC "github.com/khoahotran/interview-tracker/internal/application/usecase/standup"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/imaging"
	"github.com/khoahotran/interview-tracker/pkg/logger"
	"github.com/khoahotran/interview-tracker/pkg/metrics"
	"github.com/khoahotran/interview-tracker/pkg/tracing"
)

const serviceName = "interview-tracker-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env, serviceName)
	defer appLogger.Sync()
	appLogger.Info("Starting Interview Tracker API server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer tp.Shutdown(context.Background())

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka producer", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	llmService, err := llm.NewLLMService(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	interviewRepo := persistence.NewPostgresInterviewRepo(dbPool, appLogger)
	standupRepo := persistence.NewPostgresStandupRepo(dbPool, appLogger)
	pageCache := persistence.NewRedisPageCache(redisClient, appLogger)
	sessions := persistence.NewRedisSessionStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	resetNotifier := notify.NewLogNotifier(appLogger)
	imageSettings := interviewUC.ImageSettings{
		Folder: cfg.Cloudinary.Folder,
		Options: imaging.Options{
			MaxWidth:  cfg.Image.MaxWidth,
			Quality:   cfg.Image.JPEGQuality,
			MaxBytes:  cfg.Image.MaxBytes,
			MaxPixels: cfg.Image.MaxPixels,
		},
	}

	// Use Cases
	listStandupsUseCase := standupUC.NewListStandupsUseCase(standupRepo, profileRepo, pageCache, cfg.Cache.PageTTL, appLogger)

	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			authUC.NewSignUpUseCase(userRepo, appLogger),
			authUC.NewSignInUseCase(userRepo, profileRepo, jwtSvc, appLogger),
			authUC.NewSignOutUseCase(sessions),
			authUC.NewRequestPasswordResetUseCase(userRepo, sessions, resetNotifier, cfg.Auth.ResetTokenTTL, cfg.Auth.ResetURLFormat, appLogger),
			authUC.NewUpdatePasswordUseCase(userRepo, sessions, appLogger),
			userRepo,
			appLogger,
		),
		Interview: httpAdapter.NewInterviewHandler(
			interviewUC.NewListInterviewsUseCase(interviewRepo, profileRepo, pageCache, cfg.Cache.PageTTL, appLogger),
			interviewUC.NewCreateInterviewUseCase(interviewRepo, uploader, pageCache, kafkaClient, imageSettings, appLogger),
			interviewUC.NewUpdateInterviewUseCase(interviewRepo, uploader, pageCache, kafkaClient, imageSettings, appLogger),
			interviewUC.NewUpdateStatusUseCase(interviewRepo, pageCache, kafkaClient, appLogger),
			interviewUC.NewDeleteInterviewUseCase(interviewRepo, uploader, pageCache, kafkaClient, appLogger),
			appLogger,
		),
		Standup: httpAdapter.NewStandupHandler(
			listStandupsUseCase,
			standupUC.NewUpsertStandupUseCase(standupRepo, pageCache, kafkaClient, appLogger),
			standupUC.NewDeleteStandupUseCase(standupRepo, pageCache, kafkaClient, appLogger),
			appLogger,
		),
		Analysis: httpAdapter.NewAnalysisHandler(analysisUC.NewAnalyzeScriptUseCase(llmService, analysisUC.Settings{
			Temperature: float32(cfg.LLM.Temperature),
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		}, appLogger), appLogger),
		Profile: httpAdapter.NewProfileHandler(adminUC.NewAdminUseCase(profileRepo, appLogger), appLogger),
		RSS:     httpAdapter.NewRSSHandler(standupUC.NewFeedUseCase(listStandupsUseCase, cfg.App.BaseURL, appLogger), appLogger),
	}

	// Router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metrics.NewBuilder("interview_tracker", prometheus.DefaultRegisterer).Build())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))
	router.GET("/metrics", metrics.Handler(prometheus.DefaultGatherer))

	httpAdapter.RegisterRoutes(router, handlers, httpAdapter.RouterDeps{
		JWT:      jwtSvc,
		Revoker:  sessions,
		Profiles: profileRepo,
		Logger:   appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}

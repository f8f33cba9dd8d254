package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/cache"
	"github.com/pixelforge/pixelforge-api/internal/database/postgres"
	"github.com/pixelforge/pixelforge-api/internal/fallback"
	"github.com/pixelforge/pixelforge-api/internal/handlers"
	"github.com/pixelforge/pixelforge-api/internal/middleware"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/repository"
	"github.com/pixelforge/pixelforge-api/internal/services"
	"github.com/pixelforge/pixelforge-api/pkg/db"
	"github.com/pixelforge/pixelforge-api/pkg/httpclient"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"github.com/pixelforge/pixelforge-api/pkg/profiling"
	"github.com/pixelforge/pixelforge-api/pkg/sanity"
	"github.com/pixelforge/pixelforge-api/pkg/storage"
	"github.com/pixelforge/pixelforge-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerContentRoutes registers the public content endpoints consumed by
// the Next.js frontend during page rendering.
func registerContentRoutes(
	group *gin.RouterGroup,
	generalRateLimiter *middleware.RateLimiter,
	contentHandler *handlers.ContentHandler,
) {
	group.GET("/posts", generalRateLimiter.Middleware(), contentHandler.GetPosts)
	group.GET("/posts/:slug", generalRateLimiter.Middleware(), contentHandler.GetPostBySlug)
	group.GET("/careers", generalRateLimiter.Middleware(), contentHandler.GetCareers)
	group.GET("/careers/:slug", generalRateLimiter.Middleware(), contentHandler.GetCareerBySlug)
	group.GET("/team", generalRateLimiter.Middleware(), contentHandler.GetTeamMembers)
	group.GET("/services", generalRateLimiter.Middleware(), contentHandler.GetServices)
	group.GET("/testimonials", generalRateLimiter.Middleware(), contentHandler.GetTestimonials)
	group.GET("/success-stories", generalRateLimiter.Middleware(), contentHandler.GetSuccessStories)
	group.GET("/success-stories/:slug", generalRateLimiter.Middleware(), contentHandler.GetSuccessStoryBySlug)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting PixelForge API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (no-op unless enabled)
	stopProfiler, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Error("Failed to initialize profiler", zap.Error(err))
	} else {
		defer stopProfiler()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool. With DB_WORK_OFFLINE set the
	// client stays nil and form submissions fail with a persistence error
	// instead of the process refusing to start.
	var pgClient *postgres.Client
	if cfg.Database.WorkOffline {
		logger.Warn("DB_WORK_OFFLINE is set, running without a database")
	} else {
		pool, err := db.NewPool(context.Background(), db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
		}
		defer pool.Close()

		// NOTE: Database migrations are run separately via the migrate command

		pgClient = postgres.NewClient(pool)
	}

	// Object storage for resume uploads. Left nil when credentials are not
	// configured; the application service rejects submissions in that case.
	var resumeStorage services.ResumeStorage
	if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		storageClient, err := storage.NewClient(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			cfg.Storage.BucketName,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize storage client", zap.Error(err))
		}
		resumeStorage = storageClient
	} else {
		logger.Warn("Object storage is not configured, resume uploads are disabled")
	}

	// HTTP client for external API calls
	httpClient := httpclient.NewStandardClient()

	// Content sources: Sanity CMS as primary, embedded dataset as fallback
	sanityClient := sanity.NewClient(
		cfg.Sanity.ProjectID,
		cfg.Sanity.Dataset,
		cfg.Sanity.APIVersion,
		cfg.Sanity.Token,
		httpClient,
	)

	fallbackDataset, err := fallback.Load()
	if err != nil {
		logger.Fatal("Failed to load fallback dataset", zap.Error(err))
	}

	contentCache := cache.NewContentCache(map[string]time.Duration{
		models.TagPosts: time.Duration(cfg.Cache.PostsTTLSeconds) * time.Second,
	}, time.Duration(cfg.Cache.ContentTTLSeconds)*time.Second)

	// Initialize repositories
	contentRepo := repository.NewContentRepository(
		repository.NewSanityDataSource(sanityClient),
		repository.NewFallbackDataSource(fallbackDataset),
		contentCache,
		cfg.Cache.DisableContentCache,
	)
	contactRepo := repository.NewContactRequestRepository(pgClient)
	applicationRepo := repository.NewJobApplicationRepository(pgClient)

	// Initialize services
	contentService := services.NewContentService(contentRepo)
	revalidateService := services.NewRevalidateService(contentRepo, cfg)
	contactService := services.NewContactService(contactRepo, cfg, httpClient)
	applicationService := services.NewApplicationService(applicationRepo, contentRepo, resumeStorage, cfg, httpClient)

	// Initialize handlers
	contentHandler := handlers.NewContentHandler(contentService)
	revalidateHandler := handlers.NewRevalidateHandler(revalidateService, cfg)
	contactHandler := handlers.NewContactHandler(contactService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	logsHandler := handlers.NewLogsHandler(cfg.Logging.Dir)
	healthHandler := handlers.NewHealthHandler(func() bool {
		if pgClient == nil {
			// Offline mode is intentional, not a failure
			return true
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pgClient.Ping(ctx) == nil
	})

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.SignatureHeader, "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	webhookRateLimiter := middleware.NewRateLimiter(20, 40)   // 20 req/sec, burst of 40
	formRateLimiter := middleware.NewRateLimiter(5, 10)       // 5 req/sec, burst of 10 (prevent spam)

	// API routes
	api := router.Group("/api")
	// Utility endpoints (not versioned - operational endpoints)
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// CMS webhook endpoint; signature-verified, raw body limited to 1 MB
	api.POST("/revalidate", webhookRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), revalidateHandler.HandleWebhook)
	api.GET("/revalidate", generalRateLimiter.Middleware(), revalidateHandler.Status)

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerContentRoutes(v1, generalRateLimiter, contentHandler)
	v1.POST("/contact", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContactForm)
	v1.POST("/careers/:slug/apply", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(12*1024*1024), applicationHandler.SubmitApplication)
	v1.POST("/logs", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), logsHandler.ReceiveFrontendLogs)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

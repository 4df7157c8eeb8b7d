package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/cache"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/config"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/database"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/handler"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/middleware"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/repository"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/worker"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// main is the application entrypoint for the LearnRite console API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting learnrite console api")

	// 3. Connect database
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Connect(connectCtx, &cfg.DB)
	connectCancel()
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	store := connectStore(cfg)

	// 4. Initialize backend client and stores
	backend := schoolapi.NewClient(schoolapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	refCache := cache.NewReferenceCache(store, cfg.Cache.ReferenceTTL)
	sessions := cache.NewSessionStore(store, cfg.Cache.SessionTTL)
	creds := cache.NewCredentialStore(store)
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// 5. Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(db)

	// 6. Initialize services
	refSvc := service.NewReferenceService(backend, refCache)
	bundleSvc := service.NewBundleService(backend, refSvc, sessions, submissionRepo)
	admissionSvc := service.NewAdmissionService(backend)
	authSvc := service.NewAuthService(backend, creds, jwtManager)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health: handler.NewHealthHandler(
			handler.HealthCheck{Name: "database", Check: db.PingContext},
			handler.HealthCheck{Name: "cache", Check: store.Ping},
		),
		Auth:      handler.NewAuthHandler(authSvc),
		Reference: handler.NewReferenceHandler(refSvc),
		Bundle:    handler.NewBundleHandler(bundleSvc),
		Admission: handler.NewAdmissionHandler(admissionSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(authSvc)
	loginLimiter := middleware.NewLoginRateLimiter(5, time.Minute)
	defer loginLimiter.Close()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw, loginLimiter)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewReferenceWarmWorker(refSvc, cfg.Backend.ServiceToken, cfg.Worker.ReferenceWarmInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// connectStore connects to Redis. Outside production an unreachable Redis
// falls back to an in-process store.
func connectStore(cfg *config.Config) cache.Store {
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err == nil {
		log.Info().Msg("redis connected successfully")
		return redisClient
	}
	if cfg.Env == "production" {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	log.Warn().Err(err).Msg("redis unavailable, using in-memory store")
	return cache.NewMemoryStore()
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Reference *handler.ReferenceHandler
	Bundle    *handler.BundleHandler
	Admission *handler.AdmissionHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware, loginLimiter *middleware.LoginRateLimiter) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", loginLimiter.Handle(), handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		admin.POST("/auth/logout", handlers.Auth.Logout)
		admin.GET("/auth/me", handlers.Auth.Me)

		// Reference data
		admin.GET("/reference", handlers.Reference.Bootstrap)
		admin.GET("/schools", handlers.Reference.Schools)
		admin.GET("/classes", handlers.Reference.Classes)
		admin.GET("/languages", handlers.Reference.Languages)
		admin.GET("/brands", handlers.Reference.Brands)
		admin.GET("/products", handlers.Reference.Products)
		admin.GET("/categories", handlers.Reference.Categories)
		admin.GET("/categories/:categoryId/subcategories", handlers.Reference.SubCategories)
		admin.GET("/categories/:categoryId/subcategories/:subCategoryId/products", handlers.Reference.ProductsFor)

		// Bundles
		admin.GET("/bundles", handlers.Bundle.ListBundles)
		admin.GET("/bundles/submissions", handlers.Bundle.ListSubmissions)
		admin.DELETE("/bundles/:id", handlers.Bundle.DeleteBundle)

		// Bundle editing sessions
		sessions := admin.Group("/bundles/sessions")
		sessions.POST("", handlers.Bundle.OpenSession)
		sessions.GET("/:sessionId", handlers.Bundle.GetSession)
		sessions.PATCH("/:sessionId", handlers.Bundle.UpdateHeader)
		sessions.DELETE("/:sessionId", handlers.Bundle.CancelSession)
		sessions.POST("/:sessionId/submit", handlers.Bundle.Submit)
		sessions.POST("/:sessionId/sections", handlers.Bundle.AddSection)
		sessions.DELETE("/:sessionId/sections/:sectionId", handlers.Bundle.RemoveSection)
		sessions.PUT("/:sessionId/sections/:sectionId/category", handlers.Bundle.SetCategory)
		sessions.PUT("/:sessionId/sections/:sectionId/subcategory", handlers.Bundle.SetSubcategory)
		sessions.GET("/:sessionId/sections/:sectionId/options", handlers.Bundle.SectionOptions)
		sessions.POST("/:sessionId/sections/:sectionId/products", handlers.Bundle.AddProduct)
		sessions.DELETE("/:sessionId/sections/:sectionId/products/:productId", handlers.Bundle.RemoveProduct)
		sessions.POST("/:sessionId/sections/:sectionId/products/:productId/quantity", handlers.Bundle.AdjustQuantity)
		sessions.PUT("/:sessionId/sections/:sectionId/products/:productId/mandatory", handlers.Bundle.SetMandatory)

		// Admissions
		admin.POST("/admissions", handlers.Admission.CreateAdmission)
		admin.GET("/admissions", handlers.Admission.ListAdmissions)
		admin.GET("/admissions/:id", handlers.Admission.GetAdmission)
		admin.PUT("/admissions/:id", handlers.Admission.UpdateAdmission)
		admin.DELETE("/admissions/:id", handlers.Admission.DeleteAdmission)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

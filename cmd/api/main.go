package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cryptodash/internal/app"
	"cryptodash/internal/config"
	"cryptodash/internal/handlers"
	"cryptodash/internal/logger"
	"cryptodash/internal/middleware"
	"cryptodash/internal/scheduler"
	"cryptodash/internal/validator"

	_ "cryptodash/internal/docs" // Import swagger docs
)

// @title           cryptodash API
// @version         1.0
// @description     cryptodash serves market data, a mock portfolio and the add-item form checks of a crypto dashboard.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Initialize services
	a, err := app.Open(ctx, appConfig, log)
	if err != nil {
		return err
	}
	defer a.Close()

	// Periodic market refresh
	sched := scheduler.New(log)
	refresh := a.RefreshJob(nil)
	if err := sched.AddJob(appConfig.RefreshSchedule(), refresh); err != nil {
		return fmt.Errorf("failed to schedule market refresh: %w", err)
	}
	go func() {
		if err := sched.RunNow(refresh); err != nil {
			log.Warnw("Initial market refresh failed", "error", err)
		}
	}()
	sched.Start()
	defer sched.Stop()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(a.Sessions)
	coinHandler := handlers.NewCoinHandler(a.Coins)
	portfolioHandler := handlers.NewPortfolioHandler(a.Portfolio)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		snap := a.Coins.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":              "ok",
			"market_refreshed_at": snap.UpdatedAt,
		})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	requireSession := middleware.AuthMiddleware(a.Sessions)

	// Session routes
	authHandler.RegisterRoutes(v1.Group("/auth"), requireSession)

	// Coin routes
	coins := v1.Group("/coins")
	coins.GET("", coinHandler.ListCoins)
	coins.GET("/trending", coinHandler.GetTrending)

	// Coin detail is only served to a logged-in session
	protected := coins.Group("/")
	protected.Use(requireSession)
	protected.GET("/:id", coinHandler.GetCoin)
	protected.GET("/:id/history", coinHandler.GetHistory)

	// Portfolio routes
	portfolio := v1.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetItems)
	portfolio.GET("/summary", portfolioHandler.GetSummary)
	portfolio.GET("/allocation", portfolioHandler.GetAllocation)
	portfolio.POST("/items", portfolioHandler.SubmitItem)
	portfolio.POST("/items/validate", portfolioHandler.ValidateItem)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting cryptodash server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

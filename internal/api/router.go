package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/billed/expense-api/internal/api/handler"
	"github.com/billed/expense-api/internal/api/middleware"
	"github.com/billed/expense-api/internal/core/domain"
	"github.com/billed/expense-api/internal/core/service"
	"github.com/billed/expense-api/internal/infrastructure/config"
	mongodb "github.com/billed/expense-api/internal/infrastructure/db/mongo"
	redisdb "github.com/billed/expense-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("billed"))

	// --- Dependencies ---
	billRepo := mongodb.NewBillRepository(db)
	receiptStore, err := mongodb.NewReceiptStore(db, cfg.ReceiptBaseURL)
	if err != nil {
		return nil, err
	}
	dedup := redisdb.NewSubmissionDedup(rdb)
	sessions := middleware.SessionReader{}
	navigator := NewNavigator(log)

	submissionService := service.NewSubmissionService(billRepo, receiptStore, sessions, navigator, dedup, log)
	listingService := service.NewListingService(billRepo, sessions, log)
	billHandler := handler.NewBillHandler(submissionService, listingService, receiptStore)

	sessionMW := middleware.Session(cfg.JWTSecret)
	employeeOnly := middleware.RequireType(domain.UserTypeEmployee, domain.UserTypeAdmin)

	// --- Bill routes ---
	bills := e.Group("/v1/bills", sessionMW, employeeOnly)
	bills.GET("", billHandler.List)
	bills.POST("", billHandler.Submit)
	bills.POST("/receipt", billHandler.UploadReceipt)

	// Receipt images are fetched by <img> tags, which carry no Authorization
	// header. Keys are unguessable UUIDs.
	e.GET("/v1/bills/receipt/:key", billHandler.DownloadReceipt)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}

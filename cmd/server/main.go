package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/ciberehd/proposaldb/internal/config"
	"github.com/ciberehd/proposaldb/internal/database"
	"github.com/ciberehd/proposaldb/internal/handlers"
	"github.com/ciberehd/proposaldb/internal/middleware"
	"github.com/ciberehd/proposaldb/internal/repository"
	"github.com/ciberehd/proposaldb/internal/services"

	_ "github.com/ciberehd/proposaldb/docs/api" // Swagger docs
)

// @title CIBEREHD Proposals API
// @version 1.0.0
// @description Grant proposal submission and review service for CIBEREHD project calls

// @contact.name API Support
// @contact.email info@ciberehd.org

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load .env when present, then configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the store (in-memory sqlite unless configured otherwise)
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := repository.NewGormStore(db)
	proposalHandler := &handlers.ProposalHandler{Service: services.NewProposalService(store)}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	// Prometheus metrics
	prometheus := fiberprometheus.New("proposaldb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	api.Get("/health", healthHandler.Health)

	api.Post("/proposals", proposalHandler.CreateProposal)
	api.Get("/proposals", proposalHandler.ListProposals)
	api.Get("/proposals/reference/:referenceNumber", proposalHandler.GetProposalByReference)
	api.Get("/proposals/:id", proposalHandler.GetProposal)
	api.Patch("/proposals/:id/status", proposalHandler.UpdateProposalStatus)

	api.Post("/budget-items", proposalHandler.CreateBudgetItem)
	api.Get("/proposals/:id/budget-items", proposalHandler.GetBudgetItems)
	api.Post("/files", proposalHandler.CreateFile)
	api.Get("/proposals/:id/files", proposalHandler.GetFiles)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/llm"
	"github.com/aidevelo/aidevelo-ai-be/internal/core/payment"
	"github.com/aidevelo/aidevelo-ai-be/internal/core/ratelimit"
	"github.com/aidevelo/aidevelo-ai-be/internal/handlers"
	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
	"github.com/aidevelo/aidevelo-ai-be/internal/services"
	"github.com/aidevelo/aidevelo-ai-be/internal/shared/config"
	"github.com/aidevelo/aidevelo-ai-be/internal/shared/database"
	"github.com/aidevelo/aidevelo-ai-be/internal/shared/utils"

	_ "github.com/aidevelo/aidevelo-ai-be/docs"
)

// @title AIDevelo.AI API
// @version 1.0
// @description Storefront and chat backend for the AIDevelo.AI agent platform
// @contact.name API Support
// @contact.email hello@aidevelo.ai
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting aidevelo-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories
	agentConfigRepo := repositories.NewAgentConfigRepo(db.GORM)
	sessionRepo := repositories.NewSessionRepo(db.GORM)
	messageRepo := repositories.NewMessageRepo(db.GORM)
	leadRepo := repositories.NewLeadRepo(db.GORM)
	orderRepo := repositories.NewOrderRepo(db.GORM)

	// Init core services
	llmService := llm.NewService(cfg)
	limiter := ratelimit.NewMemoryLimiter()

	gateway, err := payment.NewGateway(cfg, db.GORM)
	if err != nil {
		log.Fatalf("❌ Failed to create payment gateway: %v", err)
	}

	chatService := services.NewChatService(
		sessionRepo, messageRepo, agentConfigRepo,
		llmService, limiter,
		time.Duration(cfg.LLMTimeout)*time.Second,
	)
	leadService := services.NewLeadService(leadRepo)
	checkoutService := services.NewCheckoutService(orderRepo, gateway)

	// Optional idle-session sweep; off unless configured
	cleanup := services.NewCleanupService(sessionRepo, cfg.SessionIdleMinutes)
	if err := cleanup.Start(cfg.SessionSweepCron); err != nil {
		log.Fatalf("❌ Failed to start session sweep: %v", err)
	}
	defer cleanup.Stop()

	// Init handlers
	chatHandler := handlers.NewChatHandler(chatService)
	pricingHandler := handlers.NewPricingHandler()
	leadHandler := handlers.NewLeadHandler(leadService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	agentConfigHandler := handlers.NewAgentConfigHandler(agentConfigRepo)
	healthHandler := handlers.NewHealthHandler(llmService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "AIDevelo.AI API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Chat routes
	app.Post("/chat/sessions", chatHandler.CreateSession)
	app.Post("/chat/messages", chatHandler.PostMessage)
	app.Post("/chat/sessions/:id/end", chatHandler.EndSession)
	app.Get("/chat/sessions/:id/messages", chatHandler.GetMessages)

	// Pricing routes
	app.Get("/pricing/modules", pricingHandler.GetModules)
	app.Post("/pricing/quote", pricingHandler.CalculateQuote)

	// Lead routes
	app.Post("/leads", leadHandler.CreateLead)

	// Checkout routes
	app.Post("/checkout/orders", checkoutHandler.CreateOrder)
	app.Get("/checkout/orders/:id", checkoutHandler.GetOrder)
	app.Get("/checkout/orders/:id/qr", checkoutHandler.GetOrderQR)

	// Agent config routes
	app.Get("/agent-configs/:id", agentConfigHandler.GetAgentConfig)

	log.Printf("✅ aidevelo-api running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"fieldmate/internal/database"
	"fieldmate/internal/handler"
	"fieldmate/internal/middleware"
	"fieldmate/internal/observability"
	"fieldmate/internal/repository"
	"fieldmate/internal/service"
	"fieldmate/internal/state"
	"fieldmate/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	logger := observability.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	slog.SetDefault(logger)

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "fieldmate.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("Database open failed: %v", err)
	}
	slog.Info("database ready", "path", dbPath)

	// Set up WebSocket hub for data-change notifications
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Cache -> Service -> Handler)
	saleRepo := repository.NewSaleRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	crmRepo := repository.NewCRMRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	txManager := database.NewTxManager(db)

	cache := state.NewCache(saleRepo, attendanceRepo, targetRepo, crmRepo, settingsRepo)
	if err := cache.LoadAll(context.Background()); err != nil {
		log.Fatalf("Initial cache load failed: %v", err)
	}

	saleService := service.NewSaleService(saleRepo, cache, wsHub)
	attendanceService := service.NewAttendanceService(attendanceRepo, cache, wsHub)
	targetService := service.NewTargetService(targetRepo, cache, wsHub)
	crmService := service.NewCRMService(crmRepo, cache, wsHub)
	settingsService := service.NewSettingsService(settingsRepo, cache, wsHub)
	backupService := service.NewBackupService(
		saleRepo, attendanceRepo, targetRepo, crmRepo, settingsRepo,
		txManager, cache, wsHub, logger,
	)
	reportService := service.NewReportService(cache, nil) // document renderer plugs in here
	assistantService := service.NewAssistantService(cache)

	// Initialize Handlers
	saleHandler := handler.NewSaleHandler(saleService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, reportService)
	targetHandler := handler.NewTargetHandler(targetService, reportService)
	crmHandler := handler.NewCRMHandler(crmService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	backupHandler := handler.NewBackupHandler(backupService)
	reportHandler := handler.NewReportHandler(reportService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	// Set up Gin Router
	router := gin.Default()

	// CORS: the UI is served from the local dev server
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	saleHandler.RegisterRoutes(router.Group(""))
	attendanceHandler.RegisterRoutes(router.Group(""))
	targetHandler.RegisterRoutes(router.Group(""))
	crmHandler.RegisterRoutes(router.Group(""))
	settingsHandler.RegisterRoutes(router.Group(""))
	backupHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))
	assistantHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server listening", "port", port)
	if err := router.Run("127.0.0.1:" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

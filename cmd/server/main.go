package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"room-review-backend/internal/config"
	"room-review-backend/internal/database"
	"room-review-backend/internal/handler"
	"room-review-backend/internal/middleware"
	"room-review-backend/internal/registry"
	"room-review-backend/internal/repository"
	"room-review-backend/internal/service"
	"room-review-backend/internal/storage"
	"room-review-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Load the static office/floor capacity configuration
	offices, err := config.LoadOffices(cfg.Storage.OfficesFile)
	if err != nil {
		log.Fatalf("Failed to load office configuration: %v", err)
	}
	log.Printf("Office configuration loaded: %d offices", len(offices))

	// 3. Select the persistence gateway
	var gateway storage.Gateway
	var audit service.Auditor
	switch cfg.Storage.Driver {
	case "mysql":
		db := database.Connect(cfg)
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database schema: %v", err)
		}
		gateway = repository.NewRoomRepo(db)
		audit = repository.NewAuditRepo(db)
	case "file":
		gateway = storage.NewFileStore(cfg.Storage.FilePath)
		audit = service.NopAuditor{}
	default:
		log.Fatalf("Unknown storage driver %q (expected mysql or file)", cfg.Storage.Driver)
	}
	log.Printf("Using %s storage driver", cfg.Storage.Driver)

	// 4. Build the registry from persisted state
	rooms, err := gateway.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load rooms: %v", err)
	}
	reg := registry.New(offices, rooms)
	log.Printf("Registry loaded with %d rooms", reg.Len())

	// 5. Initialize services
	roomService := service.NewRoomService(reg, gateway, audit)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Serve uploaded photos
	uploadsRoot := filepath.Dir(cfg.Storage.UploadDir)
	if uploadsRoot == "." {
		uploadsRoot = cfg.Storage.UploadDir
	}
	r.Static("/uploads", uploadsRoot)

	// 8. Register handlers
	roomHandler := handler.NewRoomHandler(roomService, cfg.Storage.UploadDir)
	exportHandler := handler.NewExportHandler(roomService)
	dashboardHandler := handler.NewDashboardHandler(roomService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "room-review-backend",
		})
	})

	roomRoutes := r.Group("/rooms")
	{
		roomRoutes.GET("", roomHandler.ListRooms)
		roomRoutes.POST("", roomHandler.CreateRoom)
		roomRoutes.POST("/delete", roomHandler.BulkDelete)
		roomRoutes.GET("/:id", roomHandler.GetRoom)
		roomRoutes.PUT("/:id", roomHandler.RecordReview)
		roomRoutes.DELETE("/:id", roomHandler.DeleteRoom)
		roomRoutes.GET("/:id/history", roomHandler.GetHistory)
		roomRoutes.GET("/:id/export", exportHandler.ExportHistory)
	}

	r.GET("/export/spreadsheet", exportHandler.ExportSpreadsheet)
	r.GET("/dashboard", dashboardHandler.GetDashboard)
	r.POST("/init-sample-data", dashboardHandler.InitSampleData)

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal, then flush state before exiting
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := roomService.Save(); err != nil {
		log.Printf("Warning: failed to flush state on shutdown: %v", err)
	}
	log.Println("Server exited")
}

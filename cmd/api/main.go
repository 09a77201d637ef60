package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/virtual-office/pkg/validator"

	"github.com/johnquangdev/virtual-office/internal/adapter/handler"
	"github.com/johnquangdev/virtual-office/internal/adapter/repository"
	"github.com/johnquangdev/virtual-office/internal/infrastructure/cache"
	"github.com/johnquangdev/virtual-office/internal/infrastructure/database"
	"github.com/johnquangdev/virtual-office/internal/infrastructure/storage"
	"github.com/johnquangdev/virtual-office/internal/usecase/catalog"
	"github.com/johnquangdev/virtual-office/internal/usecase/chat"
	companyUsecase "github.com/johnquangdev/virtual-office/internal/usecase/company"
	meetingUsecase "github.com/johnquangdev/virtual-office/internal/usecase/meeting"
	"github.com/johnquangdev/virtual-office/pkg/config"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

// @title           Virtual Office API
// @version         1.0
// @description     API for the virtual office backend: AI staff meetings, streaming conversations, image mentions, summaries and action items

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize cache. Redis failures fall back to the in-process store
	// so the catalog endpoints keep working.
	var cacheStore cache.Store = cache.NewMemoryStore()
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			defer redisStore.Close()
			cacheStore = redisStore
		}
	}

	// Initialize attachment storage
	log.Println("🗄️  Initializing attachment storage...")
	blobStore, err := storage.NewLocalStore(cfg.Server.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	var archiver meetingUsecase.Archiver
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioArchiver, err := storage.NewMinIOArchiver(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		archiver = minioArchiver
	}

	// Initialize generation backends
	log.Println("🤖 Initializing generation backends...")
	clients := make(map[llm.Provider]llm.Client)
	if cfg.LLM.GeminiAPIKey != "" {
		clients[llm.ProviderGemini] = llm.NewGeminiClient(cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiBaseURL, cfg.LLM.GeminiModel)
		log.Println("✅ Gemini backend configured")
	}
	if cfg.LLM.OllamaBaseURL != "" {
		clients[llm.ProviderOllama] = llm.NewOllamaClient(cfg.LLM.OllamaBaseURL, cfg.LLM.OllamaModel)
		log.Printf("✅ Ollama backend configured at %s", cfg.LLM.OllamaBaseURL)
	}
	registry := llm.NewRegistry(clients)

	summaryProvider, err := llm.ParseProvider(cfg.LLM.SummaryProvider)
	if err != nil {
		log.Fatalf("Invalid SUMMARY_PROVIDER: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	imageRepo := repository.NewMeetingImageRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	assetRepo := repository.NewCompanyAssetRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)

	// Initialize services
	log.Println("✨ Initializing services...")
	resolver := chat.NewMentionResolver(imageRepo, assetRepo, blobStore.BaseDir(), logger)
	assembler := chat.NewContextAssembler(messageRepo, knowledgeRepo, imageRepo, logger)
	chatService := chat.NewService(meetingRepo, participantRepo, messageRepo, companyRepo, resolver, assembler, registry, logger)
	meetingService := meetingUsecase.NewService(meetingRepo, participantRepo, messageRepo, imageRepo, actionItemRepo,
		companyRepo, staffRepo, registry, blobStore, archiver, summaryProvider, cfg.LLM.SummaryModel, logger)
	companyService := companyUsecase.NewService(companyRepo, assetRepo, knowledgeRepo, logger)
	catalogService := catalog.NewService(registry, cacheStore, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, chatService, logger)
	companyHandler := handler.NewCompanyHandler(companyService, logger)
	llmHandler := handler.NewLLMHandler(catalogService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, companyHandler, llmHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

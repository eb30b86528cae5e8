package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/nextgenbank/voicebank/internal/assistant"
	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/delivery"
	"github.com/nextgenbank/voicebank/internal/history"
	"github.com/nextgenbank/voicebank/internal/infra"
	"github.com/nextgenbank/voicebank/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var archive infra.AudioArchive
	if os.Getenv("S3_ENDPOINT") != "" {
		archive, err = infra.NewS3AudioArchive()
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
	} else {
		baseLogger.Warn("S3_ENDPOINT not set, voice clips will not be archived")
	}

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	userRepo := bank.NewUserRepo(db)
	transactionRepo := bank.NewTransactionRepo(db)
	recordRepo := history.NewRepo(db)

	// =========================================================================
	// CLIENTS (AI / STT)
	// =========================================================================

	var completer assistant.Completer
	var stt speech.STTClient
	if os.Getenv("OPENAI_API_KEY") != "" {
		completer = assistant.NewOpenAIClient()
		stt = speech.NewWhisperClient()
	} else {
		baseLogger.Warn("OPENAI_API_KEY not set, falling back to keyword intent detection, no transcription")
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	authService := bank.NewAuthService(userRepo, os.Getenv("AUTH_SECRET"))
	transferService := bank.NewTransferService(userRepo, transactionRepo)
	recordService := history.NewService(recordRepo)

	assistantService := assistant.NewService(
		completer,
		userRepo,
		transactionRepo,
		transferService,
		recordService,
		baseLogger,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	voiceHandler := delivery.NewVoiceBankingHandler(assistantService, stt, archive, baseLogger)
	authHandler := delivery.NewAuthHandler(authService, recordService, baseLogger)
	userHandler := delivery.NewUserHandler(userRepo)
	transactionsHandler := delivery.NewTransactionsHandler(transactionRepo)
	healthHandler := delivery.NewHealthHandler(stt != nil)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		voiceHandler,
		authHandler,
		userHandler,
		transactionsHandler,
		healthHandler,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

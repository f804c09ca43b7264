package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-backend/config"
	_ "go-resume-backend/docs" // Important for Swagger
	"go-resume-backend/internal/delivery/graph"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/schema"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/userclient"
)

// @title           Resume Backend API
// @version         1.0
// @description     Resume management backend with REST and GraphQL APIs.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting resume backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, int32(cfg.DBMaxConns))
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	// Schema changesets run to completion before the server accepts
	// traffic. Any failed changeset aborts startup.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 60*time.Second)
	if err := schema.EnsureTables(startupCtx, dbPool); err != nil {
		logger.Log.Error("Failed to create base tables", "error", err)
		cancelStartup()
		os.Exit(1)
	}
	manager := schema.NewManager(postgres.NewChangeSetRepository(dbPool), schema.DefaultChangeSets(dbPool))
	if err := manager.Run(startupCtx); err != nil {
		logger.Log.Error("Schema changeset failed, refusing to start", "error", err)
		cancelStartup()
		os.Exit(1)
	}
	cancelStartup()

	candidateRepo := postgres.NewCandidateRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	users := userclient.New(cfg.UserServiceURL)

	authUC := usecase.NewAuthUsecase(users)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo, educationRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)

	resolver := graph.NewResolver(candidateUC, educationUC, jobUC)
	gqlSchema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.Log.Error("Failed to build GraphQL schema", "error", err)
		os.Exit(1)
	}

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		EducationUC: educationUC,
		JobUC:       jobUC,
		GQLSchema:   gqlSchema,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

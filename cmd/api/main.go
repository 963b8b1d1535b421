// @title CivicVoter API
// @version 1.0
// @description Civic information API for King County, WA: address-to-district resolution, candidate browsing and comparison, and a policy-preference quiz.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"civicvoter/internal/adapter"
	"civicvoter/internal/adapter/geocode"
	"civicvoter/internal/adapter/gis"
	"civicvoter/internal/cache"
	"civicvoter/internal/config"
	"civicvoter/internal/domain"
	"civicvoter/internal/handler"
	"civicvoter/internal/logger"
	"civicvoter/internal/middleware"
	"civicvoter/internal/repository"
	"civicvoter/internal/service"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Redis backs all per-session state.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// External lookup adapters.
	geocoder, err := geocode.NewArcGISGeocoder(cfg.Lookup.GeocoderURL, cfg.Lookup.RequestTimeout)
	if err != nil {
		appLogger.Fatal("Failed to create geocoder", zap.Error(err))
	}
	boundaryClient := gis.NewBoundaryClient(cfg.Lookup)

	// The candidate dataset is loaded once at startup. A load failure keeps
	// the server up; candidate endpoints report the dataset as unavailable.
	var candidateRepo domain.CandidateRepository
	candidateRepo, err = repository.NewCSVCandidateRepository(cfg.Dataset.CandidatesPath)
	if err != nil {
		appLogger.Error("Failed to load candidate dataset",
			zap.String("path", cfg.Dataset.CandidatesPath), zap.Error(err))
		candidateRepo = repository.NewUnavailableCandidateRepository(err)
	}
	questionRepo := repository.NewStaticQuestionRepository()
	electionRepo := repository.NewStaticElectionRepository()
	fallbackTable := repository.NewFallbackTable()

	// Services.
	sessionService := service.NewSessionService(cacheAdapter, cfg.Session.TTL)
	districtService := service.NewDistrictService(geocoder, boundaryClient, fallbackTable, sessionService)
	ballotService := service.NewBallotService(candidateRepo, electionRepo, sessionService)
	selectionService := service.NewSelectionService(candidateRepo, sessionService)
	quizService := service.NewQuizService(questionRepo, candidateRepo)

	// Handlers.
	sessionHandler := handler.NewSessionHandler(sessionService)
	addressHandler := handler.NewAddressHandler(districtService, sessionService)
	ballotHandler := handler.NewBallotHandler(ballotService, selectionService)
	quizHandler := handler.NewQuizHandler(quizService)
	checklistHandler := handler.NewChecklistHandler(sessionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.SessionIDHeader,
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := cacheAdapter.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiGroup := app.Group("/api")

	apiGroup.Post("/sessions", sessionHandler.CreateSession)
	apiGroup.Get("/elections", ballotHandler.ListElections)
	apiGroup.Get("/districts/fallback/:zip", addressHandler.GetFallbackDistricts)
	apiGroup.Get("/quiz/questions", quizHandler.GetQuestions)

	// Everything touching per-session state requires a session ID.
	sessionGroup := apiGroup.Group("", middleware.RequireSession())
	sessionGroup.Post("/address/resolve", addressHandler.ResolveAddress)
	sessionGroup.Get("/address", addressHandler.GetAddress)
	sessionGroup.Get("/candidates", ballotHandler.ListCandidates)
	sessionGroup.Get("/candidates/:id", ballotHandler.GetCandidate)
	sessionGroup.Post("/selection/toggle", ballotHandler.ToggleSelection)
	sessionGroup.Get("/selection", ballotHandler.GetSelection)
	sessionGroup.Get("/selection/compare", ballotHandler.CompareSelection)
	sessionGroup.Post("/quiz/score", quizHandler.ScoreQuiz)
	sessionGroup.Get("/checklist/:name", checklistHandler.GetChecklist)
	sessionGroup.Put("/checklist/:name", checklistHandler.UpdateChecklist)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Error("Failed to close Redis client", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

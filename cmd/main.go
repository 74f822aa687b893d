package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/db"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/handlers"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/middleware"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/server"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	baseURL := utils.GetEnv("BASE_URL", "http://localhost:8080", log)
	allowedOrigins := utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	gamePlanRepo := repos.NewGamePlanRepo(thePG, log)
	gamePlanNodeRepo := repos.NewGamePlanNodeRepo(thePG, log)
	trainingRepo := repos.NewTrainingRepo(thePG, log)
	competitionRepo := repos.NewCompetitionRepo(thePG, log)
	techniqueRepo := repos.NewTechniqueRepo(thePG, log)
	positionRepo := repos.NewPositionRepo(thePG, log)
	noteRepo := repos.NewNoteRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	media := services.NewMediaLinker(baseURL)
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo)
	userService := services.NewUserService(thePG, log, media, userRepo)
	gamePlanService := services.NewGamePlanService(thePG, log, media, gamePlanRepo, gamePlanNodeRepo)
	trainingService := services.NewTrainingService(thePG, log, media, trainingRepo)
	competitionService := services.NewCompetitionService(thePG, log, media, competitionRepo)
	techniqueService := services.NewTechniqueService(thePG, log, media, techniqueRepo, positionRepo)
	noteService := services.NewNoteService(thePG, log, noteRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthcheckHandler := handlers.NewHealthcheckHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	gamePlanHandler := handlers.NewGamePlanHandler(gamePlanService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	competitionHandler := handlers.NewCompetitionHandler(competitionService)
	techniqueHandler := handlers.NewTechniqueHandler(techniqueService)
	noteHandler := handlers.NewNoteHandler(noteService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:     strings.Split(allowedOrigins, ","),
		AuthMiddleware:     authMiddleware,
		HealthcheckHandler: healthcheckHandler,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		GamePlanHandler:    gamePlanHandler,
		TrainingHandler:    trainingHandler,
		CompetitionHandler: competitionHandler,
		TechniqueHandler:   techniqueHandler,
		NoteHandler:        noteHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}

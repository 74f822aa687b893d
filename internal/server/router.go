package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/handlers"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins     []string
	AuthMiddleware     *middleware.AuthMiddleware
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	GamePlanHandler    *handlers.GamePlanHandler
	TrainingHandler    *handlers.TrainingHandler
	CompetitionHandler *handlers.CompetitionHandler
	TechniqueHandler   *handlers.TechniqueHandler
	NoteHandler        *handlers.NoteHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)

	api := router.Group("/api")

	// Public
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.PUT("/user", cfg.UserHandler.UpdateProfile)

	protected.GET("/planos-jogo", cfg.GamePlanHandler.List)
	protected.POST("/planos-jogo", cfg.GamePlanHandler.Create)
	protected.GET("/planos-jogo/:id", cfg.GamePlanHandler.Get)
	protected.PUT("/planos-jogo/:id", cfg.GamePlanHandler.Update)
	protected.DELETE("/planos-jogo/:id", cfg.GamePlanHandler.Delete)
	protected.POST("/planos-jogo/:id/nodes", cfg.GamePlanHandler.AddNode)
	protected.DELETE("/planos-jogo/:id/nodes/:nodeId", cfg.GamePlanHandler.RemoveNode)

	protected.GET("/treinos", cfg.TrainingHandler.List)
	protected.POST("/treinos", cfg.TrainingHandler.Create)
	protected.GET("/treinos/:id", cfg.TrainingHandler.Get)
	protected.PUT("/treinos/:id", cfg.TrainingHandler.Update)
	protected.DELETE("/treinos/:id", cfg.TrainingHandler.Delete)
	protected.PATCH("/treinos/:id/visibilidade", cfg.TrainingHandler.SetVisibility)
	protected.POST("/treinos/:id/imagens", cfg.TrainingHandler.AddImages)
	protected.DELETE("/treinos/:id/imagens/:imageId", cfg.TrainingHandler.DeleteImage)

	protected.GET("/competicoes", cfg.CompetitionHandler.List)
	protected.GET("/competicoes/comunidade", cfg.CompetitionHandler.ListCommunity)
	protected.POST("/competicoes", cfg.CompetitionHandler.Create)
	protected.GET("/competicoes/:id", cfg.CompetitionHandler.Get)
	protected.PUT("/competicoes/:id", cfg.CompetitionHandler.Update)
	protected.DELETE("/competicoes/:id", cfg.CompetitionHandler.Delete)
	protected.PATCH("/competicoes/:id/visibilidade", cfg.CompetitionHandler.SetVisibility)
	protected.DELETE("/competicoes/:id/imagens/:imageId", cfg.CompetitionHandler.DeleteImage)

	protected.GET("/tecnicas", cfg.TechniqueHandler.List)
	protected.GET("/tecnicas/publicas", cfg.TechniqueHandler.ListPublic)
	protected.POST("/tecnicas", cfg.TechniqueHandler.Create)
	protected.GET("/tecnicas/:id", cfg.TechniqueHandler.Get)
	protected.PUT("/tecnicas/:id", cfg.TechniqueHandler.Update)
	protected.DELETE("/tecnicas/:id", cfg.TechniqueHandler.Delete)
	protected.PATCH("/tecnicas/:id/destaque", cfg.TechniqueHandler.SetDestaque)
	protected.PATCH("/tecnicas/:id/visibilidade", cfg.TechniqueHandler.SetVisibility)

	protected.GET("/posicoes", cfg.TechniqueHandler.ListPositions)
	protected.POST("/posicoes", cfg.TechniqueHandler.AddPosition)
	protected.DELETE("/posicoes/:id", cfg.TechniqueHandler.DeletePosition)

	protected.GET("/observacoes", cfg.NoteHandler.List)
	protected.POST("/observacoes", cfg.NoteHandler.Create)
	protected.GET("/observacoes/:id", cfg.NoteHandler.Get)
	protected.PUT("/observacoes/:id", cfg.NoteHandler.Update)
	protected.DELETE("/observacoes/:id", cfg.NoteHandler.Delete)

	return router
}

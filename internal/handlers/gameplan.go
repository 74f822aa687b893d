package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
)

type GamePlanHandler struct {
	planService services.GamePlanService
}

func NewGamePlanHandler(planService services.GamePlanService) *GamePlanHandler {
	return &GamePlanHandler{planService: planService}
}

func (gh *GamePlanHandler) List(c *gin.Context) {
	plans, err := gh.planService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, plans)
}

func (gh *GamePlanHandler) Get(c *gin.Context) {
	planID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	plan, err := gh.planService.Get(c.Request.Context(), planID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func (gh *GamePlanHandler) Create(c *gin.Context) {
	var req services.CreatePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	plan, err := gh.planService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, plan)
}

func (gh *GamePlanHandler) Update(c *gin.Context) {
	planID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	plan, err := gh.planService.Update(c.Request.Context(), planID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func (gh *GamePlanHandler) Delete(c *gin.Context) {
	planID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := gh.planService.Delete(c.Request.Context(), planID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Plano excluído")
}

func (gh *GamePlanHandler) AddNode(c *gin.Context) {
	planID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.AddNodeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	plan, err := gh.planService.AddNode(c.Request.Context(), planID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, plan)
}

func (gh *GamePlanHandler) RemoveNode(c *gin.Context) {
	planID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	plan, err := gh.planService.RemoveNode(c.Request.Context(), planID, c.Param("nodeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

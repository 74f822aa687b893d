package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
)

type TrainingHandler struct {
	trainingService services.TrainingService
}

func NewTrainingHandler(trainingService services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

func (th *TrainingHandler) List(c *gin.Context) {
	page, err := th.trainingService.List(c.Request.Context(), services.ListTrainingInput{
		Tipo:      c.Query("tipo"),
		DiaSemana: c.Query("diaSemana"),
		Page:      queryInt(c, "page"),
		PerPage:   queryInt(c, "perPage"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (th *TrainingHandler) Get(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	session, err := th.trainingService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, session)
}

func (th *TrainingHandler) Create(c *gin.Context) {
	var req services.CreateTrainingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	session, err := th.trainingService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, session)
}

func (th *TrainingHandler) Update(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTrainingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	session, err := th.trainingService.Update(c.Request.Context(), sessionID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, session)
}

func (th *TrainingHandler) Delete(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := th.trainingService.Delete(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Treino excluído")
}

func (th *TrainingHandler) SetVisibility(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Publico bool `json:"isPublico"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	session, err := th.trainingService.SetVisibility(c.Request.Context(), sessionID, req.Publico)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, session)
}

func (th *TrainingHandler) AddImages(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Imagens []string `json:"imagens"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	session, err := th.trainingService.AddImages(c.Request.Context(), sessionID, req.Imagens)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, session)
}

func (th *TrainingHandler) DeleteImage(c *gin.Context) {
	sessionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	imageID, ok := paramUUID(c, "imageId")
	if !ok {
		return
	}

	if err := th.trainingService.DeleteImage(c.Request.Context(), sessionID, imageID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Imagem excluída")
}

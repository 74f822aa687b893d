package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
)

type CompetitionHandler struct {
	compService services.CompetitionService
}

func NewCompetitionHandler(compService services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{compService: compService}
}

func (ch *CompetitionHandler) List(c *gin.Context) {
	page, err := ch.compService.List(c.Request.Context(), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (ch *CompetitionHandler) ListCommunity(c *gin.Context) {
	page, err := ch.compService.ListCommunity(c.Request.Context(), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (ch *CompetitionHandler) Get(c *gin.Context) {
	compID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	comp, err := ch.compService.Get(c.Request.Context(), compID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, comp)
}

func (ch *CompetitionHandler) Create(c *gin.Context) {
	var req services.CreateCompetitionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	comp, err := ch.compService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, comp)
}

func (ch *CompetitionHandler) Update(c *gin.Context) {
	compID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCompetitionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	comp, err := ch.compService.Update(c.Request.Context(), compID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, comp)
}

func (ch *CompetitionHandler) Delete(c *gin.Context) {
	compID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := ch.compService.Delete(c.Request.Context(), compID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Competição excluída")
}

func (ch *CompetitionHandler) SetVisibility(c *gin.Context) {
	compID, ok := paramUUID(c, "id")
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

	comp, err := ch.compService.SetVisibility(c.Request.Context(), compID, req.Publico)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, comp)
}

func (ch *CompetitionHandler) DeleteImage(c *gin.Context) {
	compID, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	imageID, ok := paramUUID(c, "imageId")
	if !ok {
		return
	}

	if err := ch.compService.DeleteImage(c.Request.Context(), compID, imageID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Imagem excluída")
}

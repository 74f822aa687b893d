package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
)

type TechniqueHandler struct {
	techniqueService services.TechniqueService
}

func NewTechniqueHandler(techniqueService services.TechniqueService) *TechniqueHandler {
	return &TechniqueHandler{techniqueService: techniqueService}
}

func (th *TechniqueHandler) List(c *gin.Context) {
	techniques, err := th.techniqueService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, techniques)
}

func (th *TechniqueHandler) ListPublic(c *gin.Context) {
	page, err := th.techniqueService.ListPublic(c.Request.Context(), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (th *TechniqueHandler) Get(c *gin.Context) {
	techniqueID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	technique, err := th.techniqueService.Get(c.Request.Context(), techniqueID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, technique)
}

func (th *TechniqueHandler) Create(c *gin.Context) {
	var req services.CreateTechniqueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	technique, err := th.techniqueService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, technique)
}

func (th *TechniqueHandler) Update(c *gin.Context) {
	techniqueID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTechniqueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	technique, err := th.techniqueService.Update(c.Request.Context(), techniqueID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, technique)
}

func (th *TechniqueHandler) Delete(c *gin.Context) {
	techniqueID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := th.techniqueService.Delete(c.Request.Context(), techniqueID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Técnica excluída")
}

func (th *TechniqueHandler) SetDestaque(c *gin.Context) {
	techniqueID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Destacado bool `json:"destacado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	technique, err := th.techniqueService.SetDestaque(c.Request.Context(), techniqueID, req.Destacado)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, technique)
}

func (th *TechniqueHandler) SetVisibility(c *gin.Context) {
	techniqueID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Publica bool `json:"publica"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	technique, err := th.techniqueService.SetVisibility(c.Request.Context(), techniqueID, req.Publica)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, technique)
}

func (th *TechniqueHandler) ListPositions(c *gin.Context) {
	positions, err := th.techniqueService.ListPositions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, positions)
}

func (th *TechniqueHandler) AddPosition(c *gin.Context) {
	var req struct {
		Nome string `json:"nome"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	position, err := th.techniqueService.AddPosition(c.Request.Context(), req.Nome)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, position)
}

func (th *TechniqueHandler) DeletePosition(c *gin.Context) {
	positionID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := th.techniqueService.DeletePosition(c.Request.Context(), positionID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Posição excluída")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/services"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (nh *NoteHandler) List(c *gin.Context) {
	page, err := nh.noteService.List(c.Request.Context(), services.ListNotesInput{
		Tag:     c.Query("tag"),
		Termo:   c.Query("termo"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "perPage"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (nh *NoteHandler) Get(c *gin.Context) {
	noteID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	note, err := nh.noteService.Get(c.Request.Context(), noteID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, note)
}

func (nh *NoteHandler) Create(c *gin.Context) {
	var req services.CreateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	note, err := nh.noteService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, note)
}

func (nh *NoteHandler) Update(c *gin.Context) {
	noteID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	note, err := nh.noteService.Update(c.Request.Context(), noteID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, note)
}

func (nh *NoteHandler) Delete(c *gin.Context) {
	noteID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := nh.noteService.Delete(c.Request.Context(), noteID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Observação excluída")
}

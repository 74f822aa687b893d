package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

const notePageSize = 20

type CreateNoteInput struct {
	Titulo   string `json:"titulo"`
	Conteudo string `json:"conteudo"`
	Tag      string `json:"tag"`
	Data     string `json:"data"`
}

type UpdateNoteInput struct {
	Titulo   *string `json:"titulo"`
	Conteudo *string `json:"conteudo"`
	Tag      *string `json:"tag"`
	Data     *string `json:"data"`
}

type ListNotesInput struct {
	Tag     string
	Termo   string
	Page    int
	PerPage int
}

type NotePage struct {
	Items      []*types.Note `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

type NoteService interface {
	Create(ctx context.Context, in CreateNoteInput) (*types.Note, error)
	List(ctx context.Context, in ListNotesInput) (*NotePage, error)
	Get(ctx context.Context, noteID uuid.UUID) (*types.Note, error)
	Update(ctx context.Context, noteID uuid.UUID, in UpdateNoteInput) (*types.Note, error)
	Delete(ctx context.Context, noteID uuid.UUID) error
}

type noteService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo repos.NoteRepo
}

func NewNoteService(db *gorm.DB, baseLog *logger.Logger, noteRepo repos.NoteRepo) NoteService {
	serviceLog := baseLog.With("service", "NoteService")
	return &noteService{
		db:       db,
		log:      serviceLog,
		noteRepo: noteRepo,
	}
}

// parseNoteDate accepts the date in ISO form; absent or malformed values
// fall back to now, matching how entries are created from the app.
func parseNoteDate(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Now()
}

func (ns *noteService) Create(ctx context.Context, in CreateNoteInput) (*types.Note, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Titulo) == "" || strings.TrimSpace(in.Conteudo) == "" {
		return nil, apierr.Validation("Campos titulo e conteudo são obrigatórios")
	}

	note := &types.Note{
		ID:       uuid.New(),
		UserID:   userID,
		Titulo:   strings.TrimSpace(in.Titulo),
		Conteudo: in.Conteudo,
		Tag:      in.Tag,
		Data:     parseNoteDate(in.Data),
	}
	if _, err := ns.noteRepo.Create(ctx, nil, []*types.Note{note}); err != nil {
		ns.log.Error("Create note failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar observação")
	}

	return note, nil
}

func (ns *noteService) List(ctx context.Context, in ListNotesInput) (*NotePage, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	offset, page, perPage := pageWindow(in.Page, in.PerPage, notePageSize)
	notes, total, err := ns.noteRepo.List(ctx, nil, userID, repos.NoteFilter{
		Tag:    in.Tag,
		Termo:  in.Termo,
		Offset: offset,
		Limit:  perPage,
	})
	if err != nil {
		ns.log.Error("List notes failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar observações")
	}

	return &NotePage{Items: notes, Pagination: buildPagination(page, perPage, total)}, nil
}

func (ns *noteService) Get(ctx context.Context, noteID uuid.UUID) (*types.Note, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return ns.get(ctx, userID, noteID)
}

func (ns *noteService) get(ctx context.Context, userID, noteID uuid.UUID) (*types.Note, error) {
	note, err := ns.noteRepo.GetOwned(ctx, nil, noteID, userID)
	if err != nil {
		ns.log.Error("Get note failed", "error", err, "note_id", noteID)
		return nil, apierr.Internal("Erro ao obter observação")
	}
	if note == nil {
		return nil, apierr.NotFound("Observação não encontrada")
	}
	return note, nil
}

func (ns *noteService) Update(ctx context.Context, noteID uuid.UUID, in UpdateNoteInput) (*types.Note, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Titulo != nil {
		if strings.TrimSpace(*in.Titulo) == "" {
			return nil, apierr.Validation("Titulo é obrigatório")
		}
		fields["titulo"] = strings.TrimSpace(*in.Titulo)
	}
	if in.Conteudo != nil {
		fields["conteudo"] = *in.Conteudo
	}
	if in.Tag != nil {
		fields["tag"] = *in.Tag
	}
	if in.Data != nil {
		fields["data"] = parseNoteDate(*in.Data)
	}

	if err := ns.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		note, err := ns.noteRepo.GetOwned(ctx, tx, noteID, userID)
		if err != nil {
			return err
		}
		if note == nil {
			return apierr.NotFound("Observação não encontrada")
		}
		return ns.noteRepo.UpdateFields(ctx, tx, note.ID, fields)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ns.log.Error("Update note failed", "error", err, "note_id", noteID)
		return nil, apierr.Internal("Erro ao atualizar observação")
	}

	return ns.get(ctx, userID, noteID)
}

func (ns *noteService) Delete(ctx context.Context, noteID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	note, err := ns.noteRepo.GetOwned(ctx, nil, noteID, userID)
	if err != nil {
		ns.log.Error("Get note failed", "error", err, "note_id", noteID)
		return apierr.Internal("Erro ao excluir observação")
	}
	if note == nil {
		return apierr.NotFound("Observação não encontrada")
	}

	if err := ns.noteRepo.Delete(ctx, nil, note.ID); err != nil {
		ns.log.Error("Delete note failed", "error", err, "note_id", noteID)
		return apierr.Internal("Erro ao excluir observação")
	}

	return nil
}

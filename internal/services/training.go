package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/utils"
)

const trainingPageSize = 10

type CreateTrainingInput struct {
	NumeroAula  int    `json:"numeroAula"`
	Tipo        string `json:"tipo"`
	DiaSemana   string `json:"diaSemana"`
	Horario     string `json:"horario"`
	Data        string `json:"data"`
	Observacoes string `json:"observacoes"`
}

type UpdateTrainingInput struct {
	NumeroAula  *int    `json:"numeroAula"`
	Tipo        *string `json:"tipo"`
	DiaSemana   *string `json:"diaSemana"`
	Horario     *string `json:"horario"`
	Data        *string `json:"data"`
	Observacoes *string `json:"observacoes"`
}

type ListTrainingInput struct {
	Tipo      string
	DiaSemana string
	Page      int
	PerPage   int
}

// ImageDTO is an attached image with its delivery URL expanded.
type ImageDTO struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

type TrainingDTO struct {
	*types.TrainingSession
	Imagens []ImageDTO `json:"imagens"`
}

type TrainingPage struct {
	Items      []*TrainingDTO `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

type TrainingService interface {
	Create(ctx context.Context, in CreateTrainingInput) (*TrainingDTO, error)
	List(ctx context.Context, in ListTrainingInput) (*TrainingPage, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*TrainingDTO, error)
	Update(ctx context.Context, sessionID uuid.UUID, in UpdateTrainingInput) (*TrainingDTO, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	SetVisibility(ctx context.Context, sessionID uuid.UUID, publico bool) (*TrainingDTO, error)
	AddImages(ctx context.Context, sessionID uuid.UUID, filenames []string) (*TrainingDTO, error)
	DeleteImage(ctx context.Context, sessionID, imageID uuid.UUID) error
}

type trainingService struct {
	db           *gorm.DB
	log          *logger.Logger
	media        MediaLinker
	trainingRepo repos.TrainingRepo
}

func NewTrainingService(db *gorm.DB, baseLog *logger.Logger, media MediaLinker, trainingRepo repos.TrainingRepo) TrainingService {
	serviceLog := baseLog.With("service", "TrainingService")
	return &trainingService{
		db:           db,
		log:          serviceLog,
		media:        media,
		trainingRepo: trainingRepo,
	}
}

func (ts *trainingService) dto(session *types.TrainingSession) *TrainingDTO {
	images := make([]ImageDTO, 0, len(session.Imagens))
	for _, img := range session.Imagens {
		images = append(images, ImageDTO{ID: img.ID, URL: ts.media.TrainingImageURL(img.Filename)})
	}
	return &TrainingDTO{TrainingSession: session, Imagens: images}
}

func (ts *trainingService) Create(ctx context.Context, in CreateTrainingInput) (*TrainingDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Tipo) == "" || strings.TrimSpace(in.DiaSemana) == "" {
		return nil, apierr.Validation("Campos tipo e diaSemana são obrigatórios")
	}

	session := &types.TrainingSession{
		ID:          uuid.New(),
		UserID:      userID,
		NumeroAula:  in.NumeroAula,
		Tipo:        strings.TrimSpace(in.Tipo),
		DiaSemana:   strings.TrimSpace(in.DiaSemana),
		Horario:     in.Horario,
		Data:        in.Data,
		Observacoes: in.Observacoes,
	}
	if _, err := ts.trainingRepo.Create(ctx, nil, []*types.TrainingSession{session}); err != nil {
		ts.log.Error("Create training failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar treino")
	}

	return ts.dto(session), nil
}

func (ts *trainingService) List(ctx context.Context, in ListTrainingInput) (*TrainingPage, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	offset, page, perPage := pageWindow(in.Page, in.PerPage, trainingPageSize)
	sessions, total, err := ts.trainingRepo.List(ctx, nil, userID, repos.TrainingFilter{
		Tipo:      in.Tipo,
		DiaSemana: in.DiaSemana,
		Offset:    offset,
		Limit:     perPage,
	})
	if err != nil {
		ts.log.Error("List trainings failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar treinos")
	}

	items := make([]*TrainingDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, ts.dto(s))
	}

	return &TrainingPage{Items: items, Pagination: buildPagination(page, perPage, total)}, nil
}

func (ts *trainingService) Get(ctx context.Context, sessionID uuid.UUID) (*TrainingDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return ts.get(ctx, userID, sessionID)
}

func (ts *trainingService) get(ctx context.Context, userID, sessionID uuid.UUID) (*TrainingDTO, error) {
	session, err := ts.trainingRepo.GetOwned(ctx, nil, sessionID, userID)
	if err != nil {
		ts.log.Error("Get training failed", "error", err, "session_id", sessionID)
		return nil, apierr.Internal("Erro ao obter treino")
	}
	if session == nil {
		return nil, apierr.NotFound("Treino não encontrado")
	}
	return ts.dto(session), nil
}

func (ts *trainingService) Update(ctx context.Context, sessionID uuid.UUID, in UpdateTrainingInput) (*TrainingDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.NumeroAula != nil {
		fields["numero_aula"] = *in.NumeroAula
	}
	if in.Tipo != nil {
		fields["tipo"] = *in.Tipo
	}
	if in.DiaSemana != nil {
		fields["dia_semana"] = *in.DiaSemana
	}
	if in.Horario != nil {
		fields["horario"] = *in.Horario
	}
	if in.Data != nil {
		fields["data"] = *in.Data
	}
	if in.Observacoes != nil {
		fields["observacoes"] = *in.Observacoes
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := ts.trainingRepo.GetOwned(ctx, tx, sessionID, userID)
		if err != nil {
			return err
		}
		if session == nil {
			return apierr.NotFound("Treino não encontrado")
		}
		return ts.trainingRepo.UpdateFields(ctx, tx, session.ID, fields)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ts.log.Error("Update training failed", "error", err, "session_id", sessionID)
		return nil, apierr.Internal("Erro ao atualizar treino")
	}

	return ts.get(ctx, userID, sessionID)
}

func (ts *trainingService) Delete(ctx context.Context, sessionID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := ts.trainingRepo.GetOwned(ctx, tx, sessionID, userID)
		if err != nil {
			return err
		}
		if session == nil {
			return apierr.NotFound("Treino não encontrado")
		}
		if err := ts.trainingRepo.DeleteImagesBySessionID(ctx, tx, session.ID); err != nil {
			return err
		}
		return ts.trainingRepo.Delete(ctx, tx, session.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		ts.log.Error("Delete training failed", "error", err, "session_id", sessionID)
		return apierr.Internal("Erro ao excluir treino")
	}

	return nil
}

func (ts *trainingService) SetVisibility(ctx context.Context, sessionID uuid.UUID, publico bool) (*TrainingDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := ts.trainingRepo.GetOwned(ctx, tx, sessionID, userID)
		if err != nil {
			return err
		}
		if session == nil {
			return apierr.NotFound("Treino não encontrado")
		}
		return ts.trainingRepo.UpdateFields(ctx, tx, session.ID, map[string]any{"is_publico": publico})
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ts.log.Error("Set training visibility failed", "error", err, "session_id", sessionID)
		return nil, apierr.Internal("Erro ao atualizar treino")
	}

	return ts.get(ctx, userID, sessionID)
}

func (ts *trainingService) AddImages(ctx context.Context, sessionID uuid.UUID, filenames []string) (*TrainingDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	images := make([]*types.TrainingImage, 0, len(filenames))
	for _, f := range filenames {
		name := utils.NormalizeFilename(f)
		if name == "" {
			continue
		}
		images = append(images, &types.TrainingImage{
			ID:       uuid.New(),
			TreinoID: sessionID,
			Filename: name,
		})
	}
	if len(images) == 0 {
		return nil, apierr.Validation("Nenhuma imagem válida informada")
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := ts.trainingRepo.GetOwned(ctx, tx, sessionID, userID)
		if err != nil {
			return err
		}
		if session == nil {
			return apierr.NotFound("Treino não encontrado")
		}
		_, err = ts.trainingRepo.AddImages(ctx, tx, images)
		return err
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ts.log.Error("Add training images failed", "error", err, "session_id", sessionID)
		return nil, apierr.Internal("Erro ao adicionar imagens")
	}

	return ts.get(ctx, userID, sessionID)
}

func (ts *trainingService) DeleteImage(ctx context.Context, sessionID, imageID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := ts.trainingRepo.GetOwned(ctx, tx, sessionID, userID)
		if err != nil {
			return err
		}
		if session == nil {
			return apierr.NotFound("Treino não encontrado")
		}
		image, err := ts.trainingRepo.GetImage(ctx, tx, session.ID, imageID)
		if err != nil {
			return err
		}
		if image == nil {
			return apierr.NotFound("Imagem não encontrada")
		}
		return ts.trainingRepo.DeleteImage(ctx, tx, image.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		ts.log.Error("Delete training image failed", "error", err, "session_id", sessionID, "image_id", imageID)
		return apierr.Internal("Erro ao excluir imagem")
	}

	return nil
}

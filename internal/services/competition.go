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
)

const competitionPageSize = 10

type CreateCompetitionInput struct {
	NomeEvento         string `json:"nomeEvento"`
	Cidade             string `json:"cidade"`
	Data               string `json:"data"`
	Modalidade         string `json:"modalidade"`
	Colocacao          string `json:"colocacao"`
	Categoria          string `json:"categoria"`
	NumeroLutas        int    `json:"numeroLutas"`
	NumeroVitorias     int    `json:"numeroVitorias"`
	NumeroDerrotas     int    `json:"numeroDerrotas"`
	NumeroFinalizacoes int    `json:"numeroFinalizacoes"`
	Observacoes        string `json:"observacoes"`
}

type UpdateCompetitionInput struct {
	NomeEvento         *string `json:"nomeEvento"`
	Cidade             *string `json:"cidade"`
	Data               *string `json:"data"`
	Modalidade         *string `json:"modalidade"`
	Colocacao          *string `json:"colocacao"`
	Categoria          *string `json:"categoria"`
	NumeroLutas        *int    `json:"numeroLutas"`
	NumeroVitorias     *int    `json:"numeroVitorias"`
	NumeroDerrotas     *int    `json:"numeroDerrotas"`
	NumeroFinalizacoes *int    `json:"numeroFinalizacoes"`
	Observacoes        *string `json:"observacoes"`
}

type CompetitionDTO struct {
	*types.Competition
	Imagens []ImageDTO `json:"imagens"`
}

// UserSummary is the owner card shown on community listings.
type UserSummary struct {
	Nome   string `json:"nome"`
	Imagem string `json:"imagem"`
	Faixa  string `json:"faixa"`
}

type CommunityCompetitionDTO struct {
	*CompetitionDTO
	Usuario UserSummary `json:"usuario"`
}

type CompetitionPage struct {
	Items      []*CompetitionDTO `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

type CommunityCompetitionPage struct {
	Items      []*CommunityCompetitionDTO `json:"items"`
	Pagination Pagination                 `json:"pagination"`
}

type CompetitionService interface {
	Create(ctx context.Context, in CreateCompetitionInput) (*CompetitionDTO, error)
	List(ctx context.Context, page, perPage int) (*CompetitionPage, error)
	ListCommunity(ctx context.Context, page, perPage int) (*CommunityCompetitionPage, error)
	Get(ctx context.Context, compID uuid.UUID) (*CompetitionDTO, error)
	Update(ctx context.Context, compID uuid.UUID, in UpdateCompetitionInput) (*CompetitionDTO, error)
	Delete(ctx context.Context, compID uuid.UUID) error
	SetVisibility(ctx context.Context, compID uuid.UUID, publico bool) (*CompetitionDTO, error)
	DeleteImage(ctx context.Context, compID, imageID uuid.UUID) error
}

type competitionService struct {
	db       *gorm.DB
	log      *logger.Logger
	media    MediaLinker
	compRepo repos.CompetitionRepo
}

func NewCompetitionService(db *gorm.DB, baseLog *logger.Logger, media MediaLinker, compRepo repos.CompetitionRepo) CompetitionService {
	serviceLog := baseLog.With("service", "CompetitionService")
	return &competitionService{
		db:       db,
		log:      serviceLog,
		media:    media,
		compRepo: compRepo,
	}
}

func (cs *competitionService) dto(comp *types.Competition) *CompetitionDTO {
	images := make([]ImageDTO, 0, len(comp.Imagens))
	for _, img := range comp.Imagens {
		images = append(images, ImageDTO{ID: img.ID, URL: cs.media.CompetitionImageURL(img.Filename)})
	}
	return &CompetitionDTO{Competition: comp, Imagens: images}
}

func (cs *competitionService) Create(ctx context.Context, in CreateCompetitionInput) (*CompetitionDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.NomeEvento) == "" || strings.TrimSpace(in.Data) == "" {
		return nil, apierr.Validation("Campos nomeEvento e data são obrigatórios")
	}

	comp := &types.Competition{
		ID:                 uuid.New(),
		UserID:             userID,
		NomeEvento:         strings.TrimSpace(in.NomeEvento),
		Cidade:             in.Cidade,
		Data:               in.Data,
		Modalidade:         in.Modalidade,
		Colocacao:          in.Colocacao,
		Categoria:          in.Categoria,
		NumeroLutas:        in.NumeroLutas,
		NumeroVitorias:     in.NumeroVitorias,
		NumeroDerrotas:     in.NumeroDerrotas,
		NumeroFinalizacoes: in.NumeroFinalizacoes,
		Observacoes:        in.Observacoes,
	}
	if _, err := cs.compRepo.Create(ctx, nil, []*types.Competition{comp}); err != nil {
		cs.log.Error("Create competition failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar competição")
	}

	return cs.dto(comp), nil
}

func (cs *competitionService) List(ctx context.Context, page, perPage int) (*CompetitionPage, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	offset, page, perPage := pageWindow(page, perPage, competitionPageSize)
	comps, total, err := cs.compRepo.List(ctx, nil, userID, offset, perPage)
	if err != nil {
		cs.log.Error("List competitions failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar competições")
	}

	items := make([]*CompetitionDTO, 0, len(comps))
	for _, c := range comps {
		items = append(items, cs.dto(c))
	}

	return &CompetitionPage{Items: items, Pagination: buildPagination(page, perPage, total)}, nil
}

func (cs *competitionService) ListCommunity(ctx context.Context, page, perPage int) (*CommunityCompetitionPage, error) {
	if _, err := currentUserID(ctx); err != nil {
		return nil, err
	}

	offset, page, perPage := pageWindow(page, perPage, competitionPageSize)
	comps, total, err := cs.compRepo.ListPublic(ctx, nil, offset, perPage)
	if err != nil {
		cs.log.Error("List community competitions failed", "error", err)
		return nil, apierr.Internal("Erro ao listar competições da comunidade")
	}

	items := make([]*CommunityCompetitionDTO, 0, len(comps))
	for _, c := range comps {
		var owner UserSummary
		if c.User != nil {
			owner = UserSummary{
				Nome:   c.User.Nome,
				Imagem: cs.media.AvatarURL(c.User.Imagem),
				Faixa:  c.User.Faixa,
			}
		}
		items = append(items, &CommunityCompetitionDTO{
			CompetitionDTO: cs.dto(c),
			Usuario:        owner,
		})
	}

	return &CommunityCompetitionPage{Items: items, Pagination: buildPagination(page, perPage, total)}, nil
}

func (cs *competitionService) Get(ctx context.Context, compID uuid.UUID) (*CompetitionDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return cs.get(ctx, userID, compID)
}

func (cs *competitionService) get(ctx context.Context, userID, compID uuid.UUID) (*CompetitionDTO, error) {
	comp, err := cs.compRepo.GetOwned(ctx, nil, compID, userID)
	if err != nil {
		cs.log.Error("Get competition failed", "error", err, "comp_id", compID)
		return nil, apierr.Internal("Erro ao obter competição")
	}
	if comp == nil {
		return nil, apierr.NotFound("Competição não encontrada")
	}
	return cs.dto(comp), nil
}

func (cs *competitionService) Update(ctx context.Context, compID uuid.UUID, in UpdateCompetitionInput) (*CompetitionDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.NomeEvento != nil {
		fields["nome_evento"] = *in.NomeEvento
	}
	if in.Cidade != nil {
		fields["cidade"] = *in.Cidade
	}
	if in.Data != nil {
		fields["data"] = *in.Data
	}
	if in.Modalidade != nil {
		fields["modalidade"] = *in.Modalidade
	}
	if in.Colocacao != nil {
		fields["colocacao"] = *in.Colocacao
	}
	if in.Categoria != nil {
		fields["categoria"] = *in.Categoria
	}
	if in.NumeroLutas != nil {
		fields["numero_lutas"] = *in.NumeroLutas
	}
	if in.NumeroVitorias != nil {
		fields["numero_vitorias"] = *in.NumeroVitorias
	}
	if in.NumeroDerrotas != nil {
		fields["numero_derrotas"] = *in.NumeroDerrotas
	}
	if in.NumeroFinalizacoes != nil {
		fields["numero_finalizacoes"] = *in.NumeroFinalizacoes
	}
	if in.Observacoes != nil {
		fields["observacoes"] = *in.Observacoes
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comp, err := cs.compRepo.GetOwned(ctx, tx, compID, userID)
		if err != nil {
			return err
		}
		if comp == nil {
			return apierr.NotFound("Competição não encontrada")
		}
		return cs.compRepo.UpdateFields(ctx, tx, comp.ID, fields)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		cs.log.Error("Update competition failed", "error", err, "comp_id", compID)
		return nil, apierr.Internal("Erro ao atualizar competição")
	}

	return cs.get(ctx, userID, compID)
}

func (cs *competitionService) Delete(ctx context.Context, compID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comp, err := cs.compRepo.GetOwned(ctx, tx, compID, userID)
		if err != nil {
			return err
		}
		if comp == nil {
			return apierr.NotFound("Competição não encontrada")
		}
		if err := cs.compRepo.DeleteImagesByCompID(ctx, tx, comp.ID); err != nil {
			return err
		}
		return cs.compRepo.Delete(ctx, tx, comp.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		cs.log.Error("Delete competition failed", "error", err, "comp_id", compID)
		return apierr.Internal("Erro ao excluir competição")
	}

	return nil
}

func (cs *competitionService) SetVisibility(ctx context.Context, compID uuid.UUID, publico bool) (*CompetitionDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comp, err := cs.compRepo.GetOwned(ctx, tx, compID, userID)
		if err != nil {
			return err
		}
		if comp == nil {
			return apierr.NotFound("Competição não encontrada")
		}
		return cs.compRepo.UpdateFields(ctx, tx, comp.ID, map[string]any{"is_publico": publico})
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		cs.log.Error("Set competition visibility failed", "error", err, "comp_id", compID)
		return nil, apierr.Internal("Erro ao atualizar competição")
	}

	return cs.get(ctx, userID, compID)
}

func (cs *competitionService) DeleteImage(ctx context.Context, compID, imageID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comp, err := cs.compRepo.GetOwned(ctx, tx, compID, userID)
		if err != nil {
			return err
		}
		if comp == nil {
			return apierr.NotFound("Competição não encontrada")
		}
		image, err := cs.compRepo.GetImage(ctx, tx, comp.ID, imageID)
		if err != nil {
			return err
		}
		if image == nil {
			return apierr.NotFound("Imagem não encontrada")
		}
		return cs.compRepo.DeleteImage(ctx, tx, image.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		cs.log.Error("Delete competition image failed", "error", err, "comp_id", compID, "image_id", imageID)
		return apierr.Internal("Erro ao excluir imagem")
	}

	return nil
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/utils"
)

const techniquePageSize = 12

type CreateTechniqueInput struct {
	Nome        string   `json:"nome"`
	Categoria   string   `json:"categoria"`
	Posicao     string   `json:"posicao"`
	Passos      []string `json:"passos"`
	Observacoes []string `json:"observacoes"`
	Nota        int      `json:"nota"`
	Video       bool     `json:"video"`
	VideoURL    string   `json:"video_url"`
	VideoPoster string   `json:"video_poster"`
}

type UpdateTechniqueInput struct {
	Nome        *string   `json:"nome"`
	Categoria   *string   `json:"categoria"`
	Posicao     *string   `json:"posicao"`
	Passos      *[]string `json:"passos"`
	Observacoes *[]string `json:"observacoes"`
	Nota        *int      `json:"nota"`
	Video       *bool     `json:"video"`
	VideoURL    *string   `json:"video_url"`
	VideoPoster *string   `json:"video_poster"`
}

type TechniqueDTO struct {
	*types.Technique
	VideoURL    *string `json:"video_url"`
	VideoPoster *string `json:"video_poster"`
}

type PublicTechniqueDTO struct {
	*TechniqueDTO
	Usuario UserSummary `json:"usuario"`
}

type PublicTechniquePage struct {
	Items      []*PublicTechniqueDTO `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

type TechniqueService interface {
	Create(ctx context.Context, in CreateTechniqueInput) (*TechniqueDTO, error)
	List(ctx context.Context) ([]*TechniqueDTO, error)
	ListPublic(ctx context.Context, page, perPage int) (*PublicTechniquePage, error)
	Get(ctx context.Context, techniqueID uuid.UUID) (*TechniqueDTO, error)
	Update(ctx context.Context, techniqueID uuid.UUID, in UpdateTechniqueInput) (*TechniqueDTO, error)
	Delete(ctx context.Context, techniqueID uuid.UUID) error
	SetDestaque(ctx context.Context, techniqueID uuid.UUID, destacado bool) (*TechniqueDTO, error)
	SetVisibility(ctx context.Context, techniqueID uuid.UUID, publica bool) (*TechniqueDTO, error)
	ListPositions(ctx context.Context) ([]*types.Position, error)
	AddPosition(ctx context.Context, nome string) (*types.Position, error)
	DeletePosition(ctx context.Context, positionID uuid.UUID) error
}

type techniqueService struct {
	db            *gorm.DB
	log           *logger.Logger
	media         MediaLinker
	techniqueRepo repos.TechniqueRepo
	positionRepo  repos.PositionRepo
}

func NewTechniqueService(
	db *gorm.DB,
	baseLog *logger.Logger,
	media MediaLinker,
	techniqueRepo repos.TechniqueRepo,
	positionRepo repos.PositionRepo,
) TechniqueService {
	serviceLog := baseLog.With("service", "TechniqueService")
	return &techniqueService{
		db:            db,
		log:           serviceLog,
		media:         media,
		techniqueRepo: techniqueRepo,
		positionRepo:  positionRepo,
	}
}

func (ts *techniqueService) dto(t *types.Technique) *TechniqueDTO {
	return &TechniqueDTO{
		Technique:   t,
		VideoURL:    ts.media.TechniqueVideoURL(t.VideoFile),
		VideoPoster: ts.media.TechniquePosterURL(t.PosterFile),
	}
}

func (ts *techniqueService) Create(ctx context.Context, in CreateTechniqueInput) (*TechniqueDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Categoria) == "" || strings.TrimSpace(in.Posicao) == "" {
		return nil, apierr.Validation("Campos nome, categoria e posicao são obrigatórios")
	}

	technique := &types.Technique{
		ID:          uuid.New(),
		UserID:      userID,
		Nome:        strings.TrimSpace(in.Nome),
		Categoria:   strings.TrimSpace(in.Categoria),
		Posicao:     strings.TrimSpace(in.Posicao),
		Passos:      in.Passos,
		Observacoes: in.Observacoes,
		Nota:        in.Nota,
		Video:       in.Video,
		VideoFile:   utils.NormalizeFilename(in.VideoURL),
		PosterFile:  utils.NormalizeFilename(in.VideoPoster),
	}
	if _, err := ts.techniqueRepo.Create(ctx, nil, []*types.Technique{technique}); err != nil {
		ts.log.Error("Create technique failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar técnica")
	}

	return ts.dto(technique), nil
}

func (ts *techniqueService) List(ctx context.Context) ([]*TechniqueDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	techniques, err := ts.techniqueRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		ts.log.Error("List techniques failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar técnicas")
	}

	items := make([]*TechniqueDTO, 0, len(techniques))
	for _, t := range techniques {
		items = append(items, ts.dto(t))
	}

	return items, nil
}

func (ts *techniqueService) ListPublic(ctx context.Context, page, perPage int) (*PublicTechniquePage, error) {
	if _, err := currentUserID(ctx); err != nil {
		return nil, err
	}

	offset, page, perPage := pageWindow(page, perPage, techniquePageSize)
	techniques, total, err := ts.techniqueRepo.ListPublic(ctx, nil, offset, perPage)
	if err != nil {
		ts.log.Error("List public techniques failed", "error", err)
		return nil, apierr.Internal("Erro ao listar técnicas públicas")
	}

	items := make([]*PublicTechniqueDTO, 0, len(techniques))
	for _, t := range techniques {
		var owner UserSummary
		if t.User != nil {
			owner = UserSummary{
				Nome:   t.User.Nome,
				Imagem: ts.media.AvatarURL(t.User.Imagem),
				Faixa:  t.User.Faixa,
			}
		}
		items = append(items, &PublicTechniqueDTO{TechniqueDTO: ts.dto(t), Usuario: owner})
	}

	return &PublicTechniquePage{Items: items, Pagination: buildPagination(page, perPage, total)}, nil
}

func (ts *techniqueService) Get(ctx context.Context, techniqueID uuid.UUID) (*TechniqueDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return ts.get(ctx, userID, techniqueID)
}

func (ts *techniqueService) get(ctx context.Context, userID, techniqueID uuid.UUID) (*TechniqueDTO, error) {
	technique, err := ts.techniqueRepo.GetOwned(ctx, nil, techniqueID, userID)
	if err != nil {
		ts.log.Error("Get technique failed", "error", err, "technique_id", techniqueID)
		return nil, apierr.Internal("Erro ao obter técnica")
	}
	if technique == nil {
		return nil, apierr.NotFound("Técnica não encontrada")
	}
	return ts.dto(technique), nil
}

func (ts *techniqueService) Update(ctx context.Context, techniqueID uuid.UUID, in UpdateTechniqueInput) (*TechniqueDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Nome != nil {
		fields["nome"] = *in.Nome
	}
	if in.Categoria != nil {
		fields["categoria"] = *in.Categoria
	}
	if in.Posicao != nil {
		fields["posicao"] = *in.Posicao
	}
	if in.Passos != nil {
		fields["passos"] = datatypes.NewJSONSlice(*in.Passos)
	}
	if in.Observacoes != nil {
		fields["observacoes"] = datatypes.NewJSONSlice(*in.Observacoes)
	}
	if in.Nota != nil {
		fields["nota"] = *in.Nota
	}
	if in.Video != nil {
		fields["video"] = *in.Video
	}
	if in.VideoURL != nil {
		fields["video_url"] = utils.NormalizeFilename(*in.VideoURL)
	}
	if in.VideoPoster != nil {
		fields["video_poster"] = utils.NormalizeFilename(*in.VideoPoster)
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		technique, err := ts.techniqueRepo.GetOwned(ctx, tx, techniqueID, userID)
		if err != nil {
			return err
		}
		if technique == nil {
			return apierr.NotFound("Técnica não encontrada")
		}
		return ts.techniqueRepo.UpdateFields(ctx, tx, technique.ID, fields)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ts.log.Error("Update technique failed", "error", err, "technique_id", techniqueID)
		return nil, apierr.Internal("Erro ao atualizar técnica")
	}

	return ts.get(ctx, userID, techniqueID)
}

func (ts *techniqueService) Delete(ctx context.Context, techniqueID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		technique, err := ts.techniqueRepo.GetOwned(ctx, tx, techniqueID, userID)
		if err != nil {
			return err
		}
		if technique == nil {
			return apierr.NotFound("Técnica não encontrada")
		}
		return ts.techniqueRepo.Delete(ctx, tx, technique.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		ts.log.Error("Delete technique failed", "error", err, "technique_id", techniqueID)
		return apierr.Internal("Erro ao excluir técnica")
	}

	return nil
}

func (ts *techniqueService) setFlag(ctx context.Context, techniqueID uuid.UUID, column string, value bool) (*TechniqueDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		technique, err := ts.techniqueRepo.GetOwned(ctx, tx, techniqueID, userID)
		if err != nil {
			return err
		}
		if technique == nil {
			return apierr.NotFound("Técnica não encontrada")
		}
		return ts.techniqueRepo.UpdateFields(ctx, tx, technique.ID, map[string]any{column: value})
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		ts.log.Error("Update technique flag failed", "error", err, "technique_id", techniqueID, "column", column)
		return nil, apierr.Internal("Erro ao atualizar técnica")
	}

	return ts.get(ctx, userID, techniqueID)
}

func (ts *techniqueService) SetDestaque(ctx context.Context, techniqueID uuid.UUID, destacado bool) (*TechniqueDTO, error) {
	return ts.setFlag(ctx, techniqueID, "destacado", destacado)
}

func (ts *techniqueService) SetVisibility(ctx context.Context, techniqueID uuid.UUID, publica bool) (*TechniqueDTO, error) {
	return ts.setFlag(ctx, techniqueID, "publica", publica)
}

func (ts *techniqueService) ListPositions(ctx context.Context) ([]*types.Position, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := ts.positionRepo.ListForUser(ctx, nil, userID)
	if err != nil {
		ts.log.Error("List positions failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar posições")
	}

	return positions, nil
}

func (ts *techniqueService) AddPosition(ctx context.Context, nome string) (*types.Position, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, apierr.Validation("Nome é obrigatório")
	}

	position := &types.Position{
		ID:     uuid.New(),
		Nome:   nome,
		UserID: &userID,
	}
	if _, err := ts.positionRepo.Create(ctx, nil, []*types.Position{position}); err != nil {
		ts.log.Error("Add position failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar posição")
	}

	return position, nil
}

func (ts *techniqueService) DeletePosition(ctx context.Context, positionID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	position, err := ts.positionRepo.GetOwned(ctx, nil, positionID, userID)
	if err != nil {
		ts.log.Error("Get position failed", "error", err, "position_id", positionID)
		return apierr.Internal("Erro ao excluir posição")
	}
	if position == nil {
		return apierr.NotFound("Posição não encontrada")
	}

	if err := ts.positionRepo.Delete(ctx, nil, position.ID); err != nil {
		ts.log.Error("Delete position failed", "error", err, "position_id", positionID)
		return apierr.Internal("Erro ao excluir posição")
	}

	return nil
}

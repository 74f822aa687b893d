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

type CreatePlanInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Categoria string `json:"categoria"`
}

type UpdatePlanInput struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Categoria *string `json:"categoria"`
}

type AddNodeInput struct {
	ParentID    *string    `json:"parentId"`
	Nome        string     `json:"nome"`
	Tipo        string     `json:"tipo"`
	Descricao   string     `json:"descricao"`
	TecnicaID   *uuid.UUID `json:"tecnicaId"`
	Categoria   string     `json:"categoria"`
	Posicao     string     `json:"posicao"`
	Passos      []string   `json:"passos"`
	Observacoes []string   `json:"observacoes"`
	VideoURL    string     `json:"video_url"`
	VideoPoster string     `json:"video_poster"`
	Video       bool       `json:"video"`
}

// PlanWithNodes is the full read model: plan metadata plus the assembled
// node tree.
type PlanWithNodes struct {
	*types.GamePlan
	Nodes []*NodeTree `json:"nodes"`
}

type GamePlanService interface {
	List(ctx context.Context) ([]*types.GamePlan, error)
	Get(ctx context.Context, planID uuid.UUID) (*PlanWithNodes, error)
	Create(ctx context.Context, in CreatePlanInput) (*PlanWithNodes, error)
	Update(ctx context.Context, planID uuid.UUID, in UpdatePlanInput) (*types.GamePlan, error)
	Delete(ctx context.Context, planID uuid.UUID) error
	AddNode(ctx context.Context, planID uuid.UUID, in AddNodeInput) (*PlanWithNodes, error)
	RemoveNode(ctx context.Context, planID uuid.UUID, nodeID string) (*PlanWithNodes, error)
}

type gamePlanService struct {
	db       *gorm.DB
	log      *logger.Logger
	media    MediaLinker
	planRepo repos.GamePlanRepo
	nodeRepo repos.GamePlanNodeRepo
}

func NewGamePlanService(
	db *gorm.DB,
	baseLog *logger.Logger,
	media MediaLinker,
	planRepo repos.GamePlanRepo,
	nodeRepo repos.GamePlanNodeRepo,
) GamePlanService {
	serviceLog := baseLog.With("service", "GamePlanService")
	return &gamePlanService{
		db:       db,
		log:      serviceLog,
		media:    media,
		planRepo: planRepo,
		nodeRepo: nodeRepo,
	}
}

func (gs *gamePlanService) List(ctx context.Context) ([]*types.GamePlan, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := gs.planRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		gs.log.Error("List plans failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao listar planos")
	}

	return plans, nil
}

func (gs *gamePlanService) Get(ctx context.Context, planID uuid.UUID) (*PlanWithNodes, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return gs.get(ctx, nil, userID, planID)
}

// get is the shared ownership-checked fetch. Node rows arrive ordered by
// (parent_id, ordem), which is the contract the assembler depends on.
func (gs *gamePlanService) get(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID) (*PlanWithNodes, error) {
	plan, err := gs.planRepo.GetOwned(ctx, tx, planID, userID)
	if err != nil {
		gs.log.Error("Get plan failed", "error", err, "plan_id", planID)
		return nil, apierr.Internal("Erro ao obter plano")
	}
	if plan == nil {
		return nil, apierr.NotFound("Plano não encontrado")
	}

	nodes, err := gs.nodeRepo.GetByPlanID(ctx, tx, plan.ID)
	if err != nil {
		gs.log.Error("Load plan nodes failed", "error", err, "plan_id", planID)
		return nil, apierr.Internal("Erro ao obter plano")
	}

	return &PlanWithNodes{
		GamePlan: plan,
		Nodes:    assembleNodeTrees(nodes, gs.media),
	}, nil
}

func (gs *gamePlanService) Create(ctx context.Context, in CreatePlanInput) (*PlanWithNodes, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Nome) == "" {
		return nil, apierr.Validation("Nome é obrigatório")
	}

	plan := &types.GamePlan{
		ID:        uuid.New(),
		UserID:    userID,
		Nome:      strings.TrimSpace(in.Nome),
		Descricao: in.Descricao,
		Categoria: in.Categoria,
	}
	if _, err := gs.planRepo.Create(ctx, nil, []*types.GamePlan{plan}); err != nil {
		gs.log.Error("Create plan failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao criar plano")
	}

	return &PlanWithNodes{GamePlan: plan, Nodes: []*NodeTree{}}, nil
}

func (gs *gamePlanService) Update(ctx context.Context, planID uuid.UUID, in UpdatePlanInput) (*types.GamePlan, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, apierr.Validation("Nome é obrigatório")
		}
		fields["nome"] = strings.TrimSpace(*in.Nome)
	}
	if in.Descricao != nil {
		fields["descricao"] = *in.Descricao
	}
	if in.Categoria != nil {
		fields["categoria"] = *in.Categoria
	}

	var updated *types.GamePlan
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := gs.planRepo.GetOwned(ctx, tx, planID, userID)
		if err != nil {
			return err
		}
		if plan == nil {
			return apierr.NotFound("Plano não encontrado")
		}
		if err := gs.planRepo.UpdateFields(ctx, tx, plan.ID, fields); err != nil {
			return err
		}
		updated, err = gs.planRepo.GetOwned(ctx, tx, planID, userID)
		return err
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		gs.log.Error("Update plan failed", "error", err, "plan_id", planID)
		return nil, apierr.Internal("Erro ao atualizar plano")
	}

	return updated, nil
}

func (gs *gamePlanService) Delete(ctx context.Context, planID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := gs.planRepo.GetOwned(ctx, tx, planID, userID)
		if err != nil {
			return err
		}
		if plan == nil {
			return apierr.NotFound("Plano não encontrado")
		}
		if err := gs.nodeRepo.DeleteByPlanID(ctx, tx, plan.ID); err != nil {
			return err
		}
		return gs.planRepo.Delete(ctx, tx, plan.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return apiErr
		}
		gs.log.Error("Delete plan failed", "error", err, "plan_id", planID)
		return apierr.Internal("Erro ao excluir plano")
	}

	return nil
}

func (gs *gamePlanService) AddNode(ctx context.Context, planID uuid.UUID, in AddNodeInput) (*PlanWithNodes, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Tipo) == "" {
		return nil, apierr.Validation("Campos nome e tipo são obrigatórios")
	}
	if !types.ValidNodeTipo(in.Tipo) {
		return nil, apierr.Validation("Tipo de nó inválido")
	}

	parentID := in.ParentID
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The plan row lock serializes ordem assignment per plan, so two
		// concurrent inserts under the same parent cannot read the same max.
		plan, err := gs.planRepo.LockOwned(ctx, tx, planID, userID)
		if err != nil {
			return err
		}
		if plan == nil {
			return apierr.NotFound("Plano não encontrado")
		}

		if parentID != nil {
			parent, err := gs.nodeRepo.GetByID(ctx, tx, plan.ID, *parentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return apierr.Validation("Nó pai não pertence ao plano")
			}
		}

		ordem, err := gs.nodeRepo.NextOrdem(ctx, tx, plan.ID, parentID)
		if err != nil {
			return err
		}

		node := &types.GamePlanNode{
			ID:          uuid.NewString(),
			PlanoID:     plan.ID,
			ParentID:    parentID,
			Nome:        strings.TrimSpace(in.Nome),
			Tipo:        in.Tipo,
			Descricao:   in.Descricao,
			TecnicaID:   in.TecnicaID,
			Categoria:   in.Categoria,
			Posicao:     in.Posicao,
			Passos:      in.Passos,
			Observacoes: in.Observacoes,
			VideoFile:   utils.NormalizeFilename(in.VideoURL),
			PosterFile:  utils.NormalizeFilename(in.VideoPoster),
			Video:       in.Video,
			Ordem:       ordem,
		}
		_, err = gs.nodeRepo.Create(ctx, tx, node)
		return err
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		gs.log.Error("Add node failed", "error", err, "plan_id", planID)
		return nil, apierr.Internal("Erro ao adicionar nó")
	}

	// Callers always see consistent tree state, not just the new node.
	return gs.get(ctx, nil, userID, planID)
}

func (gs *gamePlanService) RemoveNode(ctx context.Context, planID uuid.UUID, nodeID string) (*PlanWithNodes, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := gs.planRepo.GetOwned(ctx, tx, planID, userID)
		if err != nil {
			return err
		}
		if plan == nil {
			return apierr.NotFound("Plano não encontrado")
		}

		node, err := gs.nodeRepo.GetByID(ctx, tx, plan.ID, nodeID)
		if err != nil {
			return err
		}
		if node == nil {
			return apierr.NotFound("Nó não encontrado")
		}

		return gs.nodeRepo.DeleteSubtree(ctx, tx, plan.ID, node.ID)
	}); err != nil {
		if apiErr, ok := err.(*apierr.Error); ok {
			return nil, apiErr
		}
		gs.log.Error("Remove node failed", "error", err, "plan_id", planID, "node_id", nodeID)
		return nil, apierr.Internal("Erro ao remover nó")
	}

	return gs.get(ctx, nil, userID, planID)
}

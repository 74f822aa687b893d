package repos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type GamePlanNodeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, node *types.GamePlanNode) (*types.GamePlanNode, error)
	// GetByPlanID returns the plan's flat node rows ordered by
	// (parent_id, ordem), the order the tree assembler expects.
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.GamePlanNode, error)
	GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID, nodeID string) (*types.GamePlanNode, error)
	// NextOrdem computes max(ordem)+1 within the sibling group, 0 when the
	// group is empty. Callers must hold the plan lock (GamePlanRepo.LockOwned)
	// for the read-then-write to be safe.
	NextOrdem(ctx context.Context, tx *gorm.DB, planID uuid.UUID, parentID *string) (int, error)
	// DeleteSubtree removes the node and every transitive descendant in a
	// single DELETE, independent of database-level cascade support.
	DeleteSubtree(ctx context.Context, tx *gorm.DB, planID uuid.UUID, nodeID string) error
	DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
}

type gamePlanNodeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGamePlanNodeRepo(db *gorm.DB, baseLog *logger.Logger) GamePlanNodeRepo {
	repoLog := baseLog.With("repo", "GamePlanNodeRepo")
	return &gamePlanNodeRepo{db: db, log: repoLog}
}

func (gnr *gamePlanNodeRepo) Create(ctx context.Context, tx *gorm.DB, node *types.GamePlanNode) (*types.GamePlanNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	if err := transaction.WithContext(ctx).Create(node).Error; err != nil {
		return nil, err
	}

	return node, nil
}

func (gnr *gamePlanNodeRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.GamePlanNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	var results []*types.GamePlanNode
	if err := transaction.WithContext(ctx).
		Where("plano_id = ?", planID).
		Order("parent_id").
		Order("ordem").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (gnr *gamePlanNodeRepo) GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID, nodeID string) (*types.GamePlanNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	var results []*types.GamePlanNode
	if err := transaction.WithContext(ctx).
		Where("plano_id = ? AND id = ?", planID, nodeID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (gnr *gamePlanNodeRepo) NextOrdem(ctx context.Context, tx *gorm.DB, planID uuid.UUID, parentID *string) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.GamePlanNode{}).
		Where("plano_id = ?", planID)
	if parentID == nil || *parentID == "" {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var max sql.NullInt64
	if err := query.Select("MAX(ordem)").Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}

	return int(max.Int64) + 1, nil
}

func (gnr *gamePlanNodeRepo) DeleteSubtree(ctx context.Context, tx *gorm.DB, planID uuid.UUID, nodeID string) error {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	nodes, err := gnr.GetByPlanID(ctx, transaction, planID)
	if err != nil {
		return err
	}

	childrenByParent := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		if n.ParentID != nil {
			childrenByParent[*n.ParentID] = append(childrenByParent[*n.ParentID], n.ID)
		}
	}

	doomed := []string{nodeID}
	for i := 0; i < len(doomed); i++ {
		doomed = append(doomed, childrenByParent[doomed[i]]...)
	}

	return transaction.WithContext(ctx).
		Where("plano_id = ? AND id IN ?", planID, doomed).
		Delete(&types.GamePlanNode{}).Error
}

func (gnr *gamePlanNodeRepo) DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gnr.db
	}

	return transaction.WithContext(ctx).
		Where("plano_id = ?", planID).
		Delete(&types.GamePlanNode{}).Error
}

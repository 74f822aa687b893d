package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type GamePlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.GamePlan) ([]*types.GamePlan, error)
	// GetOwned returns nil (no error) when the plan does not exist or is not
	// owned by userID, so callers cannot distinguish the two cases.
	GetOwned(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.GamePlan, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GamePlan, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, planID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
	// LockOwned reloads the plan row under a row lock where the dialect
	// supports it, serializing sibling-order assignment per plan.
	LockOwned(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.GamePlan, error)
}

type gamePlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGamePlanRepo(db *gorm.DB, baseLog *logger.Logger) GamePlanRepo {
	repoLog := baseLog.With("repo", "GamePlanRepo")
	return &gamePlanRepo{db: db, log: repoLog}
}

func (gpr *gamePlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.GamePlan) ([]*types.GamePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	if len(plans) == 0 {
		return []*types.GamePlan{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (gpr *gamePlanRepo) GetOwned(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.GamePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	var results []*types.GamePlan
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (gpr *gamePlanRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GamePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	var results []*types.GamePlan
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("criado_em DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (gpr *gamePlanRepo) UpdateFields(ctx context.Context, tx *gorm.DB, planID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.GamePlan{}).
		Where("id = ?", planID).
		Updates(fields).Error
}

func (gpr *gamePlanRepo) Delete(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", planID).
		Delete(&types.GamePlan{}).Error
}

func (gpr *gamePlanRepo) LockOwned(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.GamePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = gpr.db
	}

	query := transaction.WithContext(ctx)
	// SQLite serializes writers on its own and rejects FOR UPDATE.
	if transaction.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var results []*types.GamePlan
	if err := query.
		Where("id = ? AND user_id = ?", planID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

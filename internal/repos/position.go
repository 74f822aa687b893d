package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type PositionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, positions []*types.Position) ([]*types.Position, error)
	// ListForUser returns the shared defaults plus the user's own entries.
	ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Position, error)
	GetOwned(ctx context.Context, tx *gorm.DB, positionID, userID uuid.UUID) (*types.Position, error)
	Delete(ctx context.Context, tx *gorm.DB, positionID uuid.UUID) error
}

type positionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPositionRepo(db *gorm.DB, baseLog *logger.Logger) PositionRepo {
	repoLog := baseLog.With("repo", "PositionRepo")
	return &positionRepo{db: db, log: repoLog}
}

func (pr *positionRepo) Create(ctx context.Context, tx *gorm.DB, positions []*types.Position) ([]*types.Position, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(positions) == 0 {
		return []*types.Position{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (pr *positionRepo) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Position, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Position
	if err := transaction.WithContext(ctx).
		Where("padrao = ? OR usuario_id = ?", true, userID).
		Order("nome").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (pr *positionRepo) GetOwned(ctx context.Context, tx *gorm.DB, positionID, userID uuid.UUID) (*types.Position, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Position
	if err := transaction.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", positionID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (pr *positionRepo) Delete(ctx context.Context, tx *gorm.DB, positionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", positionID).
		Delete(&types.Position{}).Error
}

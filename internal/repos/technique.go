package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type TechniqueRepo interface {
	Create(ctx context.Context, tx *gorm.DB, techniques []*types.Technique) ([]*types.Technique, error)
	GetOwned(ctx context.Context, tx *gorm.DB, techniqueID, userID uuid.UUID) (*types.Technique, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Technique, error)
	ListPublic(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Technique, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, techniqueID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, techniqueID uuid.UUID) error
}

type techniqueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTechniqueRepo(db *gorm.DB, baseLog *logger.Logger) TechniqueRepo {
	repoLog := baseLog.With("repo", "TechniqueRepo")
	return &techniqueRepo{db: db, log: repoLog}
}

func (tr *techniqueRepo) Create(ctx context.Context, tx *gorm.DB, techniques []*types.Technique) ([]*types.Technique, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(techniques) == 0 {
		return []*types.Technique{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&techniques).Error; err != nil {
		return nil, err
	}

	return techniques, nil
}

func (tr *techniqueRepo) GetOwned(ctx context.Context, tx *gorm.DB, techniqueID, userID uuid.UUID) (*types.Technique, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Technique
	if err := transaction.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", techniqueID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (tr *techniqueRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Technique, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Technique
	if err := transaction.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("destacado DESC").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (tr *techniqueRepo) ListPublic(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Technique, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Technique{}).
		Where("publica = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var results []*types.Technique
	if err := query.
		Preload("User").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (tr *techniqueRepo) UpdateFields(ctx context.Context, tx *gorm.DB, techniqueID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Technique{}).
		Where("id = ?", techniqueID).
		Updates(fields).Error
}

func (tr *techniqueRepo) Delete(ctx context.Context, tx *gorm.DB, techniqueID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", techniqueID).
		Delete(&types.Technique{}).Error
}

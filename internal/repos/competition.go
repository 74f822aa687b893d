package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type CompetitionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comps []*types.Competition) ([]*types.Competition, error)
	GetOwned(ctx context.Context, tx *gorm.DB, compID, userID uuid.UUID) (*types.Competition, error)
	List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Competition, int64, error)
	// ListPublic returns community records: competitions flagged public,
	// regardless of owner, with the owner preloaded for display.
	ListPublic(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Competition, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, compID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, compID uuid.UUID) error
	GetImage(ctx context.Context, tx *gorm.DB, compID, imageID uuid.UUID) (*types.CompetitionImage, error)
	DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error
	DeleteImagesByCompID(ctx context.Context, tx *gorm.DB, compID uuid.UUID) error
}

type competitionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompetitionRepo(db *gorm.DB, baseLog *logger.Logger) CompetitionRepo {
	repoLog := baseLog.With("repo", "CompetitionRepo")
	return &competitionRepo{db: db, log: repoLog}
}

func (cr *competitionRepo) Create(ctx context.Context, tx *gorm.DB, comps []*types.Competition) ([]*types.Competition, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(comps) == 0 {
		return []*types.Competition{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&comps).Error; err != nil {
		return nil, err
	}

	return comps, nil
}

func (cr *competitionRepo) GetOwned(ctx context.Context, tx *gorm.DB, compID, userID uuid.UUID) (*types.Competition, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Competition
	if err := transaction.WithContext(ctx).
		Preload("Imagens").
		Where("id = ? AND user_id = ?", compID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (cr *competitionRepo) List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Competition, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Competition{}).
		Where("user_id = ?", userID)

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

	var results []*types.Competition
	if err := query.
		Preload("Imagens").
		Order("data DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (cr *competitionRepo) ListPublic(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Competition, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Competition{}).
		Where("is_publico = ?", true)

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

	var results []*types.Competition
	if err := query.
		Preload("Imagens").
		Preload("User").
		Order("data DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (cr *competitionRepo) UpdateFields(ctx context.Context, tx *gorm.DB, compID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Competition{}).
		Where("id = ?", compID).
		Updates(fields).Error
}

func (cr *competitionRepo) Delete(ctx context.Context, tx *gorm.DB, compID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", compID).
		Delete(&types.Competition{}).Error
}

func (cr *competitionRepo) GetImage(ctx context.Context, tx *gorm.DB, compID, imageID uuid.UUID) (*types.CompetitionImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.CompetitionImage
	if err := transaction.WithContext(ctx).
		Where("id = ? AND competicao_id = ?", imageID, compID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (cr *competitionRepo) DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", imageID).
		Delete(&types.CompetitionImage{}).Error
}

func (cr *competitionRepo) DeleteImagesByCompID(ctx context.Context, tx *gorm.DB, compID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("competicao_id = ?", compID).
		Delete(&types.CompetitionImage{}).Error
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type TrainingFilter struct {
	Tipo      string
	DiaSemana string
	Offset    int
	Limit     int
}

type TrainingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.TrainingSession) ([]*types.TrainingSession, error)
	GetOwned(ctx context.Context, tx *gorm.DB, sessionID, userID uuid.UUID) (*types.TrainingSession, error)
	List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, filter TrainingFilter) ([]*types.TrainingSession, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
	AddImages(ctx context.Context, tx *gorm.DB, images []*types.TrainingImage) ([]*types.TrainingImage, error)
	GetImage(ctx context.Context, tx *gorm.DB, sessionID, imageID uuid.UUID) (*types.TrainingImage, error)
	DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error
	DeleteImagesBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
}

type trainingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrainingRepo(db *gorm.DB, baseLog *logger.Logger) TrainingRepo {
	repoLog := baseLog.With("repo", "TrainingRepo")
	return &trainingRepo{db: db, log: repoLog}
}

func (tr *trainingRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.TrainingSession) ([]*types.TrainingSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(sessions) == 0 {
		return []*types.TrainingSession{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (tr *trainingRepo) GetOwned(ctx context.Context, tx *gorm.DB, sessionID, userID uuid.UUID) (*types.TrainingSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TrainingSession
	if err := transaction.WithContext(ctx).
		Preload("Imagens").
		Where("id = ? AND usuario_id = ?", sessionID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (tr *trainingRepo) List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, filter TrainingFilter) ([]*types.TrainingSession, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.TrainingSession{}).
		Where("usuario_id = ?", userID)
	if filter.Tipo != "" {
		query = query.Where("tipo = ?", filter.Tipo)
	}
	if filter.DiaSemana != "" {
		query = query.Where("dia_semana = ?", filter.DiaSemana)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var results []*types.TrainingSession
	if err := query.
		Preload("Imagens").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (tr *trainingRepo) UpdateFields(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.TrainingSession{}).
		Where("id = ?", sessionID).
		Updates(fields).Error
}

func (tr *trainingRepo) Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", sessionID).
		Delete(&types.TrainingSession{}).Error
}

func (tr *trainingRepo) AddImages(ctx context.Context, tx *gorm.DB, images []*types.TrainingImage) ([]*types.TrainingImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(images) == 0 {
		return []*types.TrainingImage{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, err
	}

	return images, nil
}

func (tr *trainingRepo) GetImage(ctx context.Context, tx *gorm.DB, sessionID, imageID uuid.UUID) (*types.TrainingImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TrainingImage
	if err := transaction.WithContext(ctx).
		Where("id = ? AND treino_id = ?", imageID, sessionID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (tr *trainingRepo) DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", imageID).
		Delete(&types.TrainingImage{}).Error
}

func (tr *trainingRepo) DeleteImagesBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Where("treino_id = ?", sessionID).
		Delete(&types.TrainingImage{}).Error
}

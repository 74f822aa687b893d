package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type NoteFilter struct {
	Tag    string
	Termo  string
	Offset int
	Limit  int
}

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error)
	GetOwned(ctx context.Context, tx *gorm.DB, noteID, userID uuid.UUID) (*types.Note, error)
	List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, filter NoteFilter) ([]*types.Note, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) error
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	repoLog := baseLog.With("repo", "NoteRepo")
	return &noteRepo{db: db, log: repoLog}
}

func (nr *noteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(notes) == 0 {
		return []*types.Note{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (nr *noteRepo) GetOwned(ctx context.Context, tx *gorm.DB, noteID, userID uuid.UUID) (*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var results []*types.Note
	if err := transaction.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", noteID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return results[0], nil
}

func (nr *noteRepo) List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, filter NoteFilter) ([]*types.Note, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Note{}).
		Where("usuario_id = ?", userID)
	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}
	if filter.Termo != "" {
		like := "%" + filter.Termo + "%"
		query = query.Where("titulo LIKE ? OR conteudo LIKE ?", like, like)
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

	var results []*types.Note
	if err := query.
		Order("data DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (nr *noteRepo) UpdateFields(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Note{}).
		Where("id = ?", noteID).
		Updates(fields).Error
}

func (nr *noteRepo) Delete(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", noteID).
		Delete(&types.Note{}).Error
}

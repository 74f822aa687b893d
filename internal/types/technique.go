package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Technique struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                   `gorm:"column:usuario_id;type:uuid;not null;index" json:"-"`
	User        *User                       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Nome        string                      `gorm:"column:nome;not null" json:"nome"`
	Categoria   string                      `gorm:"column:categoria;not null" json:"categoria"`
	Posicao     string                      `gorm:"column:posicao;not null" json:"posicao"`
	Passos      datatypes.JSONSlice[string] `gorm:"column:passos" json:"passos"`
	Observacoes datatypes.JSONSlice[string] `gorm:"column:observacoes" json:"observacoes"`
	Nota        int                         `gorm:"column:nota;not null;default:0" json:"nota"`
	Video       bool                        `gorm:"column:video;not null;default:false" json:"video"`
	VideoFile   string                      `gorm:"column:video_url" json:"-"`
	PosterFile  string                      `gorm:"column:video_poster" json:"-"`
	Destacado   bool                        `gorm:"column:destacado;not null;default:false" json:"destacado"`
	Publica     bool                        `gorm:"column:publica;not null;default:false" json:"publica"`
	CreatedAt   time.Time                   `gorm:"column:created_at;not null" json:"dataCriacao"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;not null" json:"dataAtualizacao"`
}

func (Technique) TableName() string {
	return "tecnicas"
}

// Position is a catalog entry techniques point at by name. Rows with a nil
// UserID are the shared defaults; user-created rows are private.
type Position struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string     `gorm:"column:nome;not null;index" json:"nome"`
	UserID    *uuid.UUID `gorm:"column:usuario_id;type:uuid;index" json:"-"`
	Padrao    bool       `gorm:"column:padrao;not null;default:false" json:"padrao"`
	CreatedAt time.Time  `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null" json:"-"`
}

func (Position) TableName() string {
	return "posicoes"
}

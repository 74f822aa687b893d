package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GamePlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Nome      string    `gorm:"column:nome;not null" json:"nome"`
	Descricao string    `gorm:"column:descricao" json:"descricao"`
	Categoria string    `gorm:"column:categoria" json:"categoria"`
	CreatedAt time.Time `gorm:"column:criado_em;not null" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;not null" json:"dataAtualizacao"`
}

func (GamePlan) TableName() string {
	return "planos_jogo"
}

// GamePlanNode is one entry in a plan's technique tree, stored flat with a
// self-referential parent pointer. ParentID nil means root. Ordem is the
// sibling display order within (plano_id, parent_id).
//
// VideoFile and PosterFile hold bare filenames only; delivery URLs are built
// at the read boundary, never persisted.
type GamePlanNode struct {
	ID          string                      `gorm:"primaryKey" json:"id"`
	PlanoID     uuid.UUID                   `gorm:"column:plano_id;type:uuid;not null;index" json:"-"`
	Plano       *GamePlan                   `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanoID;references:ID" json:"-"`
	ParentID    *string                     `gorm:"column:parent_id;index" json:"parentId"`
	Nome        string                      `gorm:"column:nome;not null" json:"nome"`
	Tipo        string                      `gorm:"column:tipo;not null" json:"tipo"`
	Descricao   string                      `gorm:"column:descricao" json:"descricao"`
	TecnicaID   *uuid.UUID                  `gorm:"column:tecnica_id;type:uuid" json:"tecnicaId"`
	Categoria   string                      `gorm:"column:categoria" json:"categoria"`
	Posicao     string                      `gorm:"column:posicao" json:"posicao"`
	Passos      datatypes.JSONSlice[string] `gorm:"column:passos" json:"passos"`
	Observacoes datatypes.JSONSlice[string] `gorm:"column:observacoes" json:"observacoes"`
	VideoFile   string                      `gorm:"column:video_url" json:"-"`
	PosterFile  string                      `gorm:"column:video_poster" json:"-"`
	Video       bool                        `gorm:"column:video;not null;default:false" json:"video"`
	Ordem       int                         `gorm:"column:ordem;not null;default:0" json:"-"`
	CreatedAt   time.Time                   `gorm:"column:criado_em;not null" json:"-"`
	UpdatedAt   time.Time                   `gorm:"column:atualizado_em;not null" json:"-"`
	Children    []*GamePlanNode             `gorm:"constraint:OnDelete:CASCADE;foreignKey:ParentID;references:ID" json:"-"`
}

func (GamePlanNode) TableName() string {
	return "plano_jogo_nodes"
}

// Allowed node type tags. The column stays free text, the service validates.
const (
	NodeTipoPosition  = "position"
	NodeTipoTechnique = "technique"
	NodeTipoGroup     = "group"
	NodeTipoNote      = "note"
)

func ValidNodeTipo(tipo string) bool {
	switch tipo {
	case NodeTipoPosition, NodeTipoTechnique, NodeTipoGroup, NodeTipoNote:
		return true
	}
	return false
}

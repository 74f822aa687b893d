package types

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuarioId"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Titulo    string    `gorm:"column:titulo;not null" json:"titulo"`
	Conteudo  string    `gorm:"column:conteudo;not null" json:"conteudo"`
	Tag       string    `gorm:"column:tag" json:"tag"`
	Data      time.Time `gorm:"column:data;not null" json:"data"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao;not null" json:"dataAtualizacao"`
}

func (Note) TableName() string {
	return "observacoes"
}

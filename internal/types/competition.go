package types

import (
	"time"

	"github.com/google/uuid"
)

type Competition struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index" json:"-"`
	User                *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	NomeEvento          string              `gorm:"column:nome_evento;not null" json:"nomeEvento"`
	Cidade              string              `gorm:"column:cidade" json:"cidade"`
	Data                string              `gorm:"column:data;not null" json:"data"`
	Modalidade          string              `gorm:"column:modalidade" json:"modalidade"`
	Colocacao           string              `gorm:"column:colocacao" json:"colocacao"`
	Categoria           string              `gorm:"column:categoria" json:"categoria"`
	NumeroLutas         int                 `gorm:"column:numero_lutas;not null;default:0" json:"numeroLutas"`
	NumeroVitorias      int                 `gorm:"column:numero_vitorias;not null;default:0" json:"numeroVitorias"`
	NumeroDerrotas      int                 `gorm:"column:numero_derrotas;not null;default:0" json:"numeroDerrotas"`
	NumeroFinalizacoes  int                 `gorm:"column:numero_finalizacoes;not null;default:0" json:"numeroFinalizacoes"`
	Observacoes         string              `gorm:"column:observacoes" json:"observacoes"`
	Publico             bool                `gorm:"column:is_publico;not null;default:false" json:"isPublico"`
	Imagens             []*CompetitionImage `gorm:"constraint:OnDelete:CASCADE;foreignKey:CompeticaoID;references:ID" json:"-"`
	CreatedAt           time.Time           `gorm:"column:created_at;not null" json:"dataCriacao"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;not null" json:"dataAtualizacao"`
}

func (Competition) TableName() string {
	return "competicoes"
}

type CompetitionImage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompeticaoID uuid.UUID `gorm:"column:competicao_id;type:uuid;not null;index" json:"-"`
	Filename     string    `gorm:"column:url;not null" json:"-"`
	Ordem        int       `gorm:"column:ordem;not null;default:0" json:"ordem"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"-"`
}

func (CompetitionImage) TableName() string {
	return "competicoes_imagens"
}

package types

import (
	"time"

	"github.com/google/uuid"
)

type TrainingSession struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID        `gorm:"column:usuario_id;type:uuid;not null;index" json:"-"`
	User        *User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	NumeroAula  int              `gorm:"column:numero_aula;not null" json:"numeroAula"`
	Tipo        string           `gorm:"column:tipo;not null" json:"tipo"`
	DiaSemana   string           `gorm:"column:dia_semana;not null" json:"diaSemana"`
	Horario     string           `gorm:"column:horario" json:"horario"`
	Data        string           `gorm:"column:data" json:"data"`
	Observacoes string           `gorm:"column:observacoes" json:"observacoes"`
	Publico     bool             `gorm:"column:is_publico;not null;default:false" json:"isPublico"`
	Imagens     []*TrainingImage `gorm:"constraint:OnDelete:CASCADE;foreignKey:TreinoID;references:ID" json:"-"`
	CreatedAt   time.Time        `gorm:"column:created_at;not null" json:"dataCriacao"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;not null" json:"dataAtualizacao"`
}

func (TrainingSession) TableName() string {
	return "treinos"
}

type TrainingImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TreinoID  uuid.UUID `gorm:"column:treino_id;type:uuid;not null;index" json:"-"`
	Filename  string    `gorm:"column:url;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
}

func (TrainingImage) TableName() string {
	return "treinos_imagens"
}

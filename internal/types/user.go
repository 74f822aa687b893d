package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome          string    `gorm:"column:nome;not null" json:"nome"`
	Email         string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Senha         string    `gorm:"column:senha;not null" json:"-"`
	Faixa         string    `gorm:"column:faixa" json:"faixa"`
	Academia      string    `gorm:"column:academia" json:"academia"`
	Cidade        string    `gorm:"column:cidade" json:"cidade"`
	Estado        string    `gorm:"column:estado" json:"estado"`
	Pais          string    `gorm:"column:pais" json:"pais"`
	Bio           string    `gorm:"column:bio" json:"bio"`
	Instagram     string    `gorm:"column:instagram" json:"instagram"`
	Imagem        string    `gorm:"column:imagem" json:"imagem"`
	PerfilPublico bool      `gorm:"column:perfil_publico;not null;default:false" json:"perfilPublico"`
	CreatedAt     time.Time `gorm:"column:criado_em;not null" json:"dataCriacao"`
	UpdatedAt     time.Time `gorm:"column:atualizado_em;not null" json:"dataAtualizacao"`
}

func (User) TableName() string {
	return "user"
}

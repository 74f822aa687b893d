package types

import (
	"time"

	"github.com/google/uuid"
)

// UserToken is an opaque bearer token. Possession of the value is the whole
// credential; the middleware resolves it by table lookup.
type UserToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Valor     string    `gorm:"column:valor;uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:criado_em;not null" json:"criado_em"`
}

func (UserToken) TableName() string {
	return "token"
}

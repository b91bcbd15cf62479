package model

import "time"

// Solicitante is the distinct-value lookup list of requester names.
// Rows are created as a byproduct of insumo creation/import and are never
// updated or deleted through the API.
type Solicitante struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Solicitante) TableName() string { return "solicitantes" }

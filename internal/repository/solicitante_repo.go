package repository

import (
	"context"
	"errors"

	"backend/internal/model"

	"gorm.io/gorm"
)

type SolicitanteRepository interface {
	// EnsureByName inserts a solicitante row if no row has that exact name.
	// Idempotent; comparison is case-sensitive.
	EnsureByName(ctx context.Context, nome string) error
	ListNomes(ctx context.Context) ([]string, error)
}

type solicitanteRepository struct {
	db *gorm.DB
}

func NewSolicitanteRepository(db *gorm.DB) SolicitanteRepository {
	return &solicitanteRepository{db: db}
}

func (r *solicitanteRepository) EnsureByName(ctx context.Context, nome string) error {
	db := GetDB(ctx, r.db)

	var existing model.Solicitante
	err := db.Where("nome = ?", nome).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&model.Solicitante{Nome: nome}).Error
}

func (r *solicitanteRepository) ListNomes(ctx context.Context) ([]string, error) {
	var nomes []string
	err := GetDB(ctx, r.db).Model(&model.Solicitante{}).
		Order("nome ASC").
		Pluck("nome", &nomes).Error
	if err != nil {
		return nil, err
	}
	return nomes, nil
}

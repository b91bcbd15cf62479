package repository

import (
	"context"
	"errors"

	"backend/internal/model"

	"gorm.io/gorm"
)

type InsumoRepository interface {
	Create(ctx context.Context, insumo *model.Insumo) error
	FindByID(ctx context.Context, id uint) (*model.Insumo, error)
	Update(ctx context.Context, insumo *model.Insumo) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter model.InsumoFilter) ([]model.Insumo, error)
}

type insumoRepository struct {
	db *gorm.DB
}

func NewInsumoRepository(db *gorm.DB) InsumoRepository {
	return &insumoRepository{db: db}
}

func (r *insumoRepository) Create(ctx context.Context, insumo *model.Insumo) error {
	return GetDB(ctx, r.db).Create(insumo).Error
}

func (r *insumoRepository) FindByID(ctx context.Context, id uint) (*model.Insumo, error) {
	var insumo model.Insumo
	if err := GetDB(ctx, r.db).First(&insumo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &insumo, nil
}

func (r *insumoRepository) Update(ctx context.Context, insumo *model.Insumo) error {
	return GetDB(ctx, r.db).Save(insumo).Error
}

func (r *insumoRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Insumo{}).Error
}

func (r *insumoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var insumo model.Insumo
	err := GetDB(ctx, r.db).Select("id").First(&insumo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List applies the filter clauses (all ANDed, date range inclusive) and
// returns records ordered by request date descending, newest id first on ties.
func (r *insumoRepository) List(ctx context.Context, filter model.InsumoFilter) ([]model.Insumo, error) {
	var insumos []model.Insumo

	query := GetDB(ctx, r.db).Model(&model.Insumo{})
	if filter.CentroCusto != "" {
		query = query.Where("centro_custo = ?", filter.CentroCusto)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Solicitante != "" {
		query = query.Where("solicitante = ?", filter.Solicitante)
	}
	if filter.DataInicio != nil {
		query = query.Where("data_solicitacao >= ?", *filter.DataInicio)
	}
	if filter.DataFim != nil {
		query = query.Where("data_solicitacao <= ?", *filter.DataFim)
	}

	if err := query.Order("data_solicitacao DESC, id DESC").Find(&insumos).Error; err != nil {
		return nil, err
	}
	return insumos, nil
}

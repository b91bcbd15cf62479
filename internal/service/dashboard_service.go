package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetStats(ctx context.Context, dataInicio, dataFim string) (model.DashboardStats, error)
}

type dashboardService struct {
	insumoRepo repository.InsumoRepository
}

func NewDashboardService(insumoRepo repository.InsumoRepository) DashboardService {
	return &dashboardService{insumoRepo: insumoRepo}
}

// GetStats computes totals and the per-centro/status/month breakdowns over
// the date-filtered record set.
func (s *dashboardService) GetStats(ctx context.Context, dataInicio, dataFim string) (model.DashboardStats, error) {
	var filter model.InsumoFilter
	var err error

	if filter.DataInicio, err = parseOptionalDate("dataInicio", dataInicio); err != nil {
		return model.DashboardStats{}, err
	}
	if filter.DataFim, err = parseOptionalDate("dataFim", dataFim); err != nil {
		return model.DashboardStats{}, err
	}

	insumos, err := s.insumoRepo.List(ctx, filter)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to load insumos for dashboard: %w", err)
	}

	return buildStats(insumos), nil
}

// buildStats is a single pass over the record set. Every record lands in
// exactly one centro bucket and one status bucket (sentinel labels for
// empty values), so the bucket sums partition the totals. Sums run in
// decimal and convert to float64 only at the edge.
func buildStats(insumos []model.Insumo) model.DashboardStats {
	totalValor := decimal.Zero
	totalQuantidade := 0

	gastosPorCentro := map[string]decimal.Decimal{}
	quantidadePorCentro := map[string]int{}
	gastosPorStatus := map[string]decimal.Decimal{}
	quantidadePorStatus := map[string]int{}
	gastosPorMes := map[string]decimal.Decimal{}
	quantidadePorMes := map[string]int{}

	for _, insumo := range insumos {
		totalValor = totalValor.Add(insumo.Valor)
		totalQuantidade += insumo.EquipamentoQuantidade

		centro := insumo.CentroCustoLabel()
		gastosPorCentro[centro] = gastosPorCentro[centro].Add(insumo.Valor)
		quantidadePorCentro[centro] += insumo.EquipamentoQuantidade

		status := insumo.StatusLabel()
		gastosPorStatus[status] = gastosPorStatus[status].Add(insumo.Valor)
		quantidadePorStatus[status] += insumo.EquipamentoQuantidade

		mes := insumo.MesKey()
		gastosPorMes[mes] = gastosPorMes[mes].Add(insumo.Valor)
		quantidadePorMes[mes] += insumo.EquipamentoQuantidade
	}

	return model.DashboardStats{
		TotalInsumos:        len(insumos),
		TotalValor:          totalValor.InexactFloat64(),
		TotalQuantidade:     totalQuantidade,
		GastosPorCentro:     toFloatMap(gastosPorCentro),
		QuantidadePorCentro: quantidadePorCentro,
		GastosPorStatus:     toFloatMap(gastosPorStatus),
		QuantidadePorStatus: quantidadePorStatus,
		GastosPorMes:        toFloatMap(gastosPorMes),
		QuantidadePorMes:    quantidadePorMes,
	}
}

func toFloatMap(in map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(in))
	for key, value := range in {
		out[key] = value.InexactFloat64()
	}
	return out
}

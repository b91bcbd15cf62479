package model

import (
	"fmt"
	"time"
)

// DashboardStats aggregates totals and per-dimension breakdowns over a
// (possibly date-filtered) insumo set. Month buckets are sparse: a month
// with no records has no key.
type DashboardStats struct {
	TotalInsumos        int                `json:"totalInsumos"`
	TotalValor          float64            `json:"totalValor"`
	TotalQuantidade     int                `json:"totalQuantidade"`
	GastosPorCentro     map[string]float64 `json:"gastosPorCentro"`
	QuantidadePorCentro map[string]int     `json:"quantidadePorCentro"`
	GastosPorStatus     map[string]float64 `json:"gastosPorStatus"`
	QuantidadePorStatus map[string]int     `json:"quantidadePorStatus"`
	GastosPorMes        map[string]float64 `json:"gastosPorMes"`
	QuantidadePorMes    map[string]int     `json:"quantidadePorMes"`
}

// MonthKey formats a date as the "MM/YYYY" dashboard bucket key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%02d/%d", int(t.Month()), t.Year())
}

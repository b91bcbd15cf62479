package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel bucket labels used by the dashboard when a record carries no
// cost center or no status.
const (
	CentroCustoNaoInformado = "Não informado"
	SemStatus               = "Sem status"
)

// Insumo represents a procurement/equipment request record.
// Solicitante is denormalized free text, not a foreign key to the
// solicitantes table.
type Insumo struct {
	ID                    uint            `gorm:"primaryKey"`
	DataSolicitacao       time.Time       `gorm:"type:date;not null"`
	DataAprovacao         *time.Time      `gorm:"type:date"`
	AprovadoPor           string          `gorm:"type:varchar(100)"`
	Solicitante           string          `gorm:"type:varchar(100);not null"`
	CentroCusto           string          `gorm:"type:varchar(100);not null"`
	Equipamento           string          `gorm:"type:varchar(200)"`
	Status                string          `gorm:"type:varchar(50)"`
	NumeroChamado         string          `gorm:"type:varchar(50)"`
	EquipamentoQuantidade int             `gorm:"not null;default:1"`
	Valor                 decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Insumo) TableName() string { return "insumos" }

// CentroCustoLabel returns the cost-center bucket label for aggregation.
func (i Insumo) CentroCustoLabel() string {
	if i.CentroCusto == "" {
		return CentroCustoNaoInformado
	}
	return i.CentroCusto
}

// StatusLabel returns the status bucket label for aggregation.
func (i Insumo) StatusLabel() string {
	if i.Status == "" {
		return SemStatus
	}
	return i.Status
}

// MesKey returns the "MM/YYYY" bucket key derived from DataSolicitacao.
func (i Insumo) MesKey() string {
	return MonthKey(i.DataSolicitacao)
}

// InsumoFilter narrows the record set. Zero values mean "no constraint";
// the date range is inclusive on both ends.
type InsumoFilter struct {
	CentroCusto string
	Status      string
	Solicitante string
	DataInicio  *time.Time
	DataFim     *time.Time
}

// Matches reports whether the record satisfies every supplied constraint.
// This is the reference semantics for the SQL clauses built by the
// repository and is what in-memory test doubles use.
func (f InsumoFilter) Matches(i Insumo) bool {
	if f.CentroCusto != "" && i.CentroCusto != f.CentroCusto {
		return false
	}
	if f.Status != "" && i.Status != f.Status {
		return false
	}
	if f.Solicitante != "" && i.Solicitante != f.Solicitante {
		return false
	}
	if f.DataInicio != nil && i.DataSolicitacao.Before(*f.DataInicio) {
		return false
	}
	if f.DataFim != nil && i.DataSolicitacao.After(*f.DataFim) {
		return false
	}
	return true
}

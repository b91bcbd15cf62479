package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"
)

// ExportVersion tags the bulk dump format.
const ExportVersion = "2.0"

// --- DTOs ---

type ExportPayload struct {
	Insumos      []InsumoRecord `json:"insumos"`
	Solicitantes []string       `json:"solicitantes"`
	ExportDate   string         `json:"exportDate"`
	Version      string         `json:"version"`
}

// ImportInsumo mirrors CreateInsumoRequest plus the exported id. Extra
// export fields (dataCreated, dataUpdated) are ignored on the way in.
type ImportInsumo struct {
	ID                    *uint    `json:"id"`
	DataSolicitacao       string   `json:"dataSolicitacao"`
	DataAprovacao         string   `json:"dataAprovacao"`
	AprovadoPor           string   `json:"aprovadoPor"`
	Solicitante           string   `json:"solicitante"`
	CentroCusto           string   `json:"centroCusto"`
	Equipamento           string   `json:"equipamento"`
	Status                string   `json:"status"`
	NumeroChamado         string   `json:"numeroChamado"`
	EquipamentoQuantidade *int     `json:"equipamentoQuantidade"`
	Valor                 *float64 `json:"valor"`
}

type ImportRequest struct {
	Insumos      []ImportInsumo `json:"insumos"`
	Solicitantes []string       `json:"solicitantes"`
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// --- Interface ---

type TransferService interface {
	ExportData(ctx context.Context) (ExportPayload, error)
	ImportData(ctx context.Context, req ImportRequest) (ImportSummary, error)
}

type transferService struct {
	insumoRepo      repository.InsumoRepository
	solicitanteRepo repository.SolicitanteRepository
	txManager       repository.TransactionManager
}

func NewTransferService(
	insumoRepo repository.InsumoRepository,
	solicitanteRepo repository.SolicitanteRepository,
	txManager repository.TransactionManager,
) TransferService {
	return &transferService{
		insumoRepo:      insumoRepo,
		solicitanteRepo: solicitanteRepo,
		txManager:       txManager,
	}
}

// --- Implementation ---

// ExportData dumps the full insumo set and solicitante name list, with no
// filtering.
func (s *transferService) ExportData(ctx context.Context) (ExportPayload, error) {
	insumos, err := s.insumoRepo.List(ctx, model.InsumoFilter{})
	if err != nil {
		return ExportPayload{}, fmt.Errorf("failed to export insumos: %w", err)
	}

	nomes, err := s.solicitanteRepo.ListNomes(ctx)
	if err != nil {
		return ExportPayload{}, fmt.Errorf("failed to export solicitantes: %w", err)
	}

	records := make([]InsumoRecord, 0, len(insumos))
	for _, insumo := range insumos {
		records = append(records, toInsumoRecord(insumo))
	}

	return ExportPayload{
		Insumos:      records,
		Solicitantes: nomes,
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
		Version:      ExportVersion,
	}, nil
}

// ImportData merges a dump into the store as one atomic unit. Records whose
// id already exists are skipped untouched; everything else is inserted with
// a store-assigned id, so an exported id never collides with local data.
// Any failure rolls the whole import back.
func (s *transferService) ImportData(ctx context.Context, req ImportRequest) (ImportSummary, error) {
	if req.Insumos == nil {
		return ImportSummary{}, apperror.Validationf("payload must contain an insumos list")
	}

	// Validate every record before touching the store.
	type candidate struct {
		exportedID *uint
		insumo     model.Insumo
	}
	candidates := make([]candidate, 0, len(req.Insumos))
	for idx, in := range req.Insumos {
		insumo, err := buildInsumo(CreateInsumoRequest{
			DataSolicitacao:       in.DataSolicitacao,
			DataAprovacao:         in.DataAprovacao,
			AprovadoPor:           in.AprovadoPor,
			Solicitante:           in.Solicitante,
			CentroCusto:           in.CentroCusto,
			Equipamento:           in.Equipamento,
			Status:                in.Status,
			NumeroChamado:         in.NumeroChamado,
			EquipamentoQuantidade: in.EquipamentoQuantidade,
			Valor:                 in.Valor,
		})
		if err != nil {
			return ImportSummary{}, apperror.Validationf("insumos[%d]: %v", idx, err)
		}
		candidates = append(candidates, candidate{exportedID: in.ID, insumo: insumo})
	}

	var summary ImportSummary
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range candidates {
			if c.exportedID != nil {
				exists, err := s.insumoRepo.Exists(txCtx, *c.exportedID)
				if err != nil {
					return fmt.Errorf("failed to check insumo %d: %w", *c.exportedID, err)
				}
				if exists {
					summary.Skipped++
					continue
				}
			}

			insumo := c.insumo
			if err := s.insumoRepo.Create(txCtx, &insumo); err != nil {
				return fmt.Errorf("failed to import insumo: %w", err)
			}
			if err := s.solicitanteRepo.EnsureByName(txCtx, insumo.Solicitante); err != nil {
				return fmt.Errorf("failed to register solicitante: %w", err)
			}
			summary.Imported++
		}

		for _, nome := range req.Solicitantes {
			if nome == "" {
				continue
			}
			if err := s.solicitanteRepo.EnsureByName(txCtx, nome); err != nil {
				return fmt.Errorf("failed to register solicitante: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}

	return summary, nil
}

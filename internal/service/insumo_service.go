package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// --- DTOs ---

// InsumoRecord is the wire representation of an insumo. Field names follow
// the external camelCase contract; calendar dates are YYYY-MM-DD and
// timestamps RFC3339.
type InsumoRecord struct {
	ID                    uint    `json:"id"`
	DataSolicitacao       string  `json:"dataSolicitacao"`
	DataAprovacao         *string `json:"dataAprovacao"`
	AprovadoPor           string  `json:"aprovadoPor"`
	Solicitante           string  `json:"solicitante"`
	CentroCusto           string  `json:"centroCusto"`
	Equipamento           string  `json:"equipamento"`
	Status                string  `json:"status"`
	NumeroChamado         string  `json:"numeroChamado"`
	EquipamentoQuantidade int     `json:"equipamentoQuantidade"`
	Valor                 float64 `json:"valor"`
	DataCreated           string  `json:"dataCreated"`
	DataUpdated           string  `json:"dataUpdated"`
}

type CreateInsumoRequest struct {
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

// UpdateInsumoRequest carries a partial update; nil means "field not sent".
type UpdateInsumoRequest struct {
	DataSolicitacao       *string  `json:"dataSolicitacao"`
	DataAprovacao         *string  `json:"dataAprovacao"`
	AprovadoPor           *string  `json:"aprovadoPor"`
	Solicitante           *string  `json:"solicitante"`
	CentroCusto           *string  `json:"centroCusto"`
	Equipamento           *string  `json:"equipamento"`
	Status                *string  `json:"status"`
	NumeroChamado         *string  `json:"numeroChamado"`
	EquipamentoQuantidade *int     `json:"equipamentoQuantidade"`
	Valor                 *float64 `json:"valor"`
}

// ListInsumosQuery holds raw query-string filters; date strings are
// validated here, everything else is exact-match.
type ListInsumosQuery struct {
	CentroCusto string
	Status      string
	Solicitante string
	DataInicio  string
	DataFim     string
}

// --- Interface ---

type InsumoService interface {
	ListInsumos(ctx context.Context, query ListInsumosQuery) ([]InsumoRecord, error)
	CreateInsumo(ctx context.Context, req CreateInsumoRequest) (InsumoRecord, error)
	UpdateInsumo(ctx context.Context, id uint, req UpdateInsumoRequest) (InsumoRecord, error)
	DeleteInsumo(ctx context.Context, id uint) error
	ListSolicitantes(ctx context.Context) ([]string, error)
}

type insumoService struct {
	insumoRepo      repository.InsumoRepository
	solicitanteRepo repository.SolicitanteRepository
	txManager       repository.TransactionManager
}

func NewInsumoService(
	insumoRepo repository.InsumoRepository,
	solicitanteRepo repository.SolicitanteRepository,
	txManager repository.TransactionManager,
) InsumoService {
	return &insumoService{
		insumoRepo:      insumoRepo,
		solicitanteRepo: solicitanteRepo,
		txManager:       txManager,
	}
}

// --- Implementation ---

func (s *insumoService) ListInsumos(ctx context.Context, query ListInsumosQuery) ([]InsumoRecord, error) {
	filter := model.InsumoFilter{
		CentroCusto: query.CentroCusto,
		Status:      query.Status,
		Solicitante: query.Solicitante,
	}

	var err error
	if filter.DataInicio, err = parseOptionalDate("dataInicio", query.DataInicio); err != nil {
		return nil, err
	}
	if filter.DataFim, err = parseOptionalDate("dataFim", query.DataFim); err != nil {
		return nil, err
	}

	insumos, err := s.insumoRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list insumos: %w", err)
	}

	records := make([]InsumoRecord, 0, len(insumos))
	for _, insumo := range insumos {
		records = append(records, toInsumoRecord(insumo))
	}
	return records, nil
}

func (s *insumoService) CreateInsumo(ctx context.Context, req CreateInsumoRequest) (InsumoRecord, error) {
	insumo, err := buildInsumo(req)
	if err != nil {
		return InsumoRecord{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.insumoRepo.Create(txCtx, &insumo); createErr != nil {
			return fmt.Errorf("failed to create insumo: %w", createErr)
		}
		if ensureErr := s.solicitanteRepo.EnsureByName(txCtx, insumo.Solicitante); ensureErr != nil {
			return fmt.Errorf("failed to register solicitante: %w", ensureErr)
		}
		return nil
	})
	if err != nil {
		return InsumoRecord{}, err
	}

	return toInsumoRecord(insumo), nil
}

func (s *insumoService) UpdateInsumo(ctx context.Context, id uint, req UpdateInsumoRequest) (InsumoRecord, error) {
	insumo, err := s.findInsumo(ctx, id)
	if err != nil {
		return InsumoRecord{}, err
	}

	if err := applyUpdate(insumo, req); err != nil {
		return InsumoRecord{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.insumoRepo.Update(txCtx, insumo); updateErr != nil {
			return fmt.Errorf("failed to update insumo: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return InsumoRecord{}, err
	}

	return toInsumoRecord(*insumo), nil
}

func (s *insumoService) DeleteInsumo(ctx context.Context, id uint) error {
	if _, err := s.findInsumo(ctx, id); err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.insumoRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete insumo: %w", err)
		}
		return nil
	})
}

func (s *insumoService) ListSolicitantes(ctx context.Context) ([]string, error) {
	nomes, err := s.solicitanteRepo.ListNomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list solicitantes: %w", err)
	}
	return nomes, nil
}

func (s *insumoService) findInsumo(ctx context.Context, id uint) (*model.Insumo, error) {
	insumo, err := s.insumoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("insumo %d not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return insumo, nil
}

// --- Helpers ---

// buildInsumo validates a creation payload and produces the entity.
// Defaults: equipamentoQuantidade 1, valor 0. Shared by create and import.
func buildInsumo(req CreateInsumoRequest) (model.Insumo, error) {
	if req.Solicitante == "" || req.CentroCusto == "" || req.DataSolicitacao == "" {
		return model.Insumo{}, apperror.Validationf("required fields: solicitante, centroCusto, dataSolicitacao")
	}

	dataSolicitacao, err := parseDate("dataSolicitacao", req.DataSolicitacao)
	if err != nil {
		return model.Insumo{}, err
	}

	insumo := model.Insumo{
		DataSolicitacao:       dataSolicitacao,
		AprovadoPor:           req.AprovadoPor,
		Solicitante:           req.Solicitante,
		CentroCusto:           req.CentroCusto,
		Equipamento:           req.Equipamento,
		Status:                req.Status,
		NumeroChamado:         req.NumeroChamado,
		EquipamentoQuantidade: 1,
		Valor:                 decimal.Zero,
	}

	if insumo.DataAprovacao, err = parseOptionalDate("dataAprovacao", req.DataAprovacao); err != nil {
		return model.Insumo{}, err
	}

	if req.EquipamentoQuantidade != nil {
		if *req.EquipamentoQuantidade < 1 {
			return model.Insumo{}, apperror.Validationf("equipamentoQuantidade must be at least 1")
		}
		insumo.EquipamentoQuantidade = *req.EquipamentoQuantidade
	}
	if req.Valor != nil {
		if *req.Valor < 0 {
			return model.Insumo{}, apperror.Validationf("valor must not be negative")
		}
		insumo.Valor = decimal.NewFromFloat(*req.Valor)
	}

	return insumo, nil
}

func applyUpdate(insumo *model.Insumo, req UpdateInsumoRequest) error {
	if req.DataSolicitacao != nil {
		parsed, err := parseDate("dataSolicitacao", *req.DataSolicitacao)
		if err != nil {
			return err
		}
		insumo.DataSolicitacao = parsed
	}
	if req.DataAprovacao != nil {
		if *req.DataAprovacao == "" {
			insumo.DataAprovacao = nil
		} else {
			parsed, err := parseDate("dataAprovacao", *req.DataAprovacao)
			if err != nil {
				return err
			}
			insumo.DataAprovacao = &parsed
		}
	}
	if req.AprovadoPor != nil {
		insumo.AprovadoPor = *req.AprovadoPor
	}
	if req.Solicitante != nil {
		if *req.Solicitante == "" {
			return apperror.Validationf("solicitante must not be empty")
		}
		insumo.Solicitante = *req.Solicitante
	}
	if req.CentroCusto != nil {
		if *req.CentroCusto == "" {
			return apperror.Validationf("centroCusto must not be empty")
		}
		insumo.CentroCusto = *req.CentroCusto
	}
	if req.Equipamento != nil {
		insumo.Equipamento = *req.Equipamento
	}
	if req.Status != nil {
		insumo.Status = *req.Status
	}
	if req.NumeroChamado != nil {
		insumo.NumeroChamado = *req.NumeroChamado
	}
	if req.EquipamentoQuantidade != nil {
		if *req.EquipamentoQuantidade < 1 {
			return apperror.Validationf("equipamentoQuantidade must be at least 1")
		}
		insumo.EquipamentoQuantidade = *req.EquipamentoQuantidade
	}
	if req.Valor != nil {
		if *req.Valor < 0 {
			return apperror.Validationf("valor must not be negative")
		}
		insumo.Valor = decimal.NewFromFloat(*req.Valor)
	}
	return nil
}

func toInsumoRecord(insumo model.Insumo) InsumoRecord {
	record := InsumoRecord{
		ID:                    insumo.ID,
		DataSolicitacao:       insumo.DataSolicitacao.Format(dateLayout),
		AprovadoPor:           insumo.AprovadoPor,
		Solicitante:           insumo.Solicitante,
		CentroCusto:           insumo.CentroCusto,
		Equipamento:           insumo.Equipamento,
		Status:                insumo.Status,
		NumeroChamado:         insumo.NumeroChamado,
		EquipamentoQuantidade: insumo.EquipamentoQuantidade,
		Valor:                 insumo.Valor.InexactFloat64(),
		DataCreated:           insumo.CreatedAt.Format(time.RFC3339),
		DataUpdated:           insumo.UpdatedAt.Format(time.RFC3339),
	}
	if insumo.DataAprovacao != nil {
		formatted := insumo.DataAprovacao.Format(dateLayout)
		record.DataAprovacao = &formatted
	}
	return record
}

// parseDate parses an ISO-8601 calendar date, rejecting anything else.
func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validationf("invalid %s: expected YYYY-MM-DD, got %q", field, value)
	}
	return parsed, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

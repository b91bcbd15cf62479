package service

import (
	"context"
	"testing"

	"backend/pkg/apperror"
)

func TestExportData(t *testing.T) {
	fx := newFixture()
	insumoSvc := NewInsumoService(fx.insumos, fx.solicitantes, fx.tx)
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)
	ctx := context.Background()

	seedInsumo(t, insumoSvc, CreateInsumoRequest{DataSolicitacao: "2024-01-05", Solicitante: "Ana", CentroCusto: "IT", Valor: floatPtr(100)})
	seedInsumo(t, insumoSvc, CreateInsumoRequest{DataSolicitacao: "2024-02-10", Solicitante: "Bruno", CentroCusto: "RH"})

	payload, err := svc.ExportData(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", payload.Version)
	}
	if payload.ExportDate == "" {
		t.Error("exportDate must be set")
	}
	if len(payload.Insumos) != 2 {
		t.Errorf("exported %d insumos, want 2", len(payload.Insumos))
	}
	if len(payload.Solicitantes) != 2 {
		t.Errorf("exported %d solicitantes, want 2", len(payload.Solicitantes))
	}
}

func TestImportData_MissingInsumosKey(t *testing.T) {
	fx := newFixture()
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)

	_, err := svc.ImportData(context.Background(), ImportRequest{Solicitantes: []string{"Ana"}})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fx.solicitantes.nomes) != 0 {
		t.Error("nothing should be persisted when the payload is rejected")
	}
}

func TestImportData_SkipsExistingIDs(t *testing.T) {
	fx := newFixture()
	insumoSvc := NewInsumoService(fx.insumos, fx.solicitantes, fx.tx)
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)
	ctx := context.Background()

	existing, err := insumoSvc.CreateInsumo(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	summary, err := svc.ImportData(ctx, ImportRequest{
		Insumos: []ImportInsumo{
			// Collides with the existing record: must be skipped untouched.
			{ID: &existing.ID, DataSolicitacao: "2020-01-01", Solicitante: "Intruso", CentroCusto: "X", Valor: floatPtr(999)},
			// Unknown id: inserted with a fresh store-assigned id.
			{ID: uintPtr(4000), DataSolicitacao: "2024-06-01", Solicitante: "Bruno", CentroCusto: "RH"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Skipped != 1 || summary.Imported != 1 {
		t.Errorf("summary = %+v, want 1 imported / 1 skipped", summary)
	}

	kept, err := fx.insumos.FindByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("existing record vanished: %v", err)
	}
	if kept.Solicitante != "Maria Silva" {
		t.Errorf("existing record was modified: %+v", kept)
	}

	if len(fx.insumos.records) != 2 {
		t.Fatalf("store has %d records, want 2", len(fx.insumos.records))
	}
	for _, record := range fx.insumos.records {
		if record.ID == 4000 {
			t.Error("exported id must not be honored for new records")
		}
	}
}

func TestImportData_RoundTrip(t *testing.T) {
	source := newFixture()
	sourceInsumos := NewInsumoService(source.insumos, source.solicitantes, source.tx)
	sourceTransfer := NewTransferService(source.insumos, source.solicitantes, source.tx)
	ctx := context.Background()

	seedInsumo(t, sourceInsumos, CreateInsumoRequest{DataSolicitacao: "2024-01-05", DataAprovacao: "2024-01-08", AprovadoPor: "Chefe", Solicitante: "Ana", CentroCusto: "IT", Equipamento: "Monitor", Status: "Aprovado", NumeroChamado: "CH-1", EquipamentoQuantidade: intPtr(2), Valor: floatPtr(899.9)})
	seedInsumo(t, sourceInsumos, CreateInsumoRequest{DataSolicitacao: "2024-02-10", Solicitante: "Bruno", CentroCusto: "RH"})

	payload, err := sourceTransfer.ExportData(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// Re-import into an empty store.
	dest := newFixture()
	destTransfer := NewTransferService(dest.insumos, dest.solicitantes, dest.tx)

	importReq := ImportRequest{Solicitantes: payload.Solicitantes}
	for _, record := range payload.Insumos {
		in := ImportInsumo{
			ID:                    uintPtr(record.ID),
			DataSolicitacao:       record.DataSolicitacao,
			AprovadoPor:           record.AprovadoPor,
			Solicitante:           record.Solicitante,
			CentroCusto:           record.CentroCusto,
			Equipamento:           record.Equipamento,
			Status:                record.Status,
			NumeroChamado:         record.NumeroChamado,
			EquipamentoQuantidade: intPtr(record.EquipamentoQuantidade),
			Valor:                 floatPtr(record.Valor),
		}
		if record.DataAprovacao != nil {
			in.DataAprovacao = *record.DataAprovacao
		}
		importReq.Insumos = append(importReq.Insumos, in)
	}

	summary, err := destTransfer.ImportData(ctx, importReq)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if summary.Imported != 2 || summary.Skipped != 0 {
		t.Fatalf("summary = %+v, want 2 imported / 0 skipped", summary)
	}

	reExported, err := destTransfer.ExportData(ctx)
	if err != nil {
		t.Fatalf("re-export failed: %v", err)
	}

	// Same field values; ids are reassigned by the destination store.
	if len(reExported.Insumos) != len(payload.Insumos) {
		t.Fatalf("round trip produced %d records, want %d", len(reExported.Insumos), len(payload.Insumos))
	}
	for i, got := range reExported.Insumos {
		want := payload.Insumos[i]
		if got.DataSolicitacao != want.DataSolicitacao ||
			got.Solicitante != want.Solicitante ||
			got.CentroCusto != want.CentroCusto ||
			got.Equipamento != want.Equipamento ||
			got.Status != want.Status ||
			got.NumeroChamado != want.NumeroChamado ||
			got.EquipamentoQuantidade != want.EquipamentoQuantidade ||
			got.Valor != want.Valor {
			t.Errorf("record %d differs after round trip:\n got %+v\nwant %+v", i, got, want)
		}
	}
	if len(reExported.Solicitantes) != len(payload.Solicitantes) {
		t.Errorf("solicitantes differ after round trip: %v vs %v", reExported.Solicitantes, payload.Solicitantes)
	}
}

func TestImportData_ReimportIsIdempotent(t *testing.T) {
	fx := newFixture()
	insumoSvc := NewInsumoService(fx.insumos, fx.solicitantes, fx.tx)
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)
	ctx := context.Background()

	seedInsumo(t, insumoSvc, validCreateRequest())

	payload, err := svc.ExportData(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	req := ImportRequest{Solicitantes: payload.Solicitantes}
	for _, record := range payload.Insumos {
		req.Insumos = append(req.Insumos, ImportInsumo{
			ID:              uintPtr(record.ID),
			DataSolicitacao: record.DataSolicitacao,
			Solicitante:     record.Solicitante,
			CentroCusto:     record.CentroCusto,
		})
	}

	summary, err := svc.ImportData(ctx, req)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if summary.Imported != 0 || summary.Skipped != 1 {
		t.Errorf("summary = %+v, want 0 imported / 1 skipped", summary)
	}
	if len(fx.insumos.records) != 1 {
		t.Errorf("store has %d records, want 1 (no duplicates)", len(fx.insumos.records))
	}
}

func TestImportData_InvalidRecordRejectsWholePayload(t *testing.T) {
	fx := newFixture()
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)

	_, err := svc.ImportData(context.Background(), ImportRequest{
		Insumos: []ImportInsumo{
			{DataSolicitacao: "2024-01-05", Solicitante: "Ana", CentroCusto: "IT"},
			{DataSolicitacao: "2024-01-06", Solicitante: "", CentroCusto: "IT"}, // invalid
		},
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fx.insumos.records) != 0 {
		t.Errorf("nothing should be persisted, found %d records", len(fx.insumos.records))
	}
}

func TestImportData_StoreFailureRollsBack(t *testing.T) {
	fx := newFixture()
	svc := NewTransferService(fx.insumos, fx.solicitantes, fx.tx)

	// First insert succeeds, second blows up inside the transaction.
	fx.insumos.failCreateAfter = 1

	_, err := svc.ImportData(context.Background(), ImportRequest{
		Insumos: []ImportInsumo{
			{DataSolicitacao: "2024-01-05", Solicitante: "Ana", CentroCusto: "IT"},
			{DataSolicitacao: "2024-01-06", Solicitante: "Bruno", CentroCusto: "RH"},
		},
	})
	if err == nil {
		t.Fatal("expected the import to fail")
	}
	if len(fx.insumos.records) != 0 {
		t.Errorf("rollback must leave no records, found %d", len(fx.insumos.records))
	}
	if len(fx.solicitantes.nomes) != 0 {
		t.Errorf("rollback must leave no solicitantes, found %v", fx.solicitantes.nomes)
	}
}

func uintPtr(u uint) *uint { return &u }

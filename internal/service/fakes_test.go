package service

import (
	"context"
	"errors"
	"sort"

	"backend/internal/model"

	"gorm.io/gorm"
)

// In-memory repository doubles implementing the same contracts as the GORM
// repositories, including filter and ordering semantics.

type fakeInsumoRepo struct {
	records []model.Insumo
	nextID  uint

	// failCreateAfter, when > 0, makes Create fail once that many inserts
	// have succeeded. Used to exercise transaction rollback.
	failCreateAfter int
	creates         int
}

func newFakeInsumoRepo() *fakeInsumoRepo {
	return &fakeInsumoRepo{nextID: 1}
}

func (r *fakeInsumoRepo) Create(_ context.Context, insumo *model.Insumo) error {
	if r.failCreateAfter > 0 && r.creates >= r.failCreateAfter {
		return errors.New("simulated store failure")
	}
	insumo.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *insumo)
	r.creates++
	return nil
}

func (r *fakeInsumoRepo) FindByID(_ context.Context, id uint) (*model.Insumo, error) {
	for _, record := range r.records {
		if record.ID == id {
			found := record
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInsumoRepo) Update(_ context.Context, insumo *model.Insumo) error {
	for i, record := range r.records {
		if record.ID == insumo.ID {
			r.records[i] = *insumo
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeInsumoRepo) Delete(_ context.Context, id uint) error {
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeInsumoRepo) Exists(_ context.Context, id uint) (bool, error) {
	for _, record := range r.records {
		if record.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInsumoRepo) List(_ context.Context, filter model.InsumoFilter) ([]model.Insumo, error) {
	var out []model.Insumo
	for _, record := range r.records {
		if filter.Matches(record) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DataSolicitacao.Equal(out[j].DataSolicitacao) {
			return out[i].DataSolicitacao.After(out[j].DataSolicitacao)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeSolicitanteRepo struct {
	nomes []string
}

func (r *fakeSolicitanteRepo) EnsureByName(_ context.Context, nome string) error {
	for _, existing := range r.nomes {
		if existing == nome {
			return nil
		}
	}
	r.nomes = append(r.nomes, nome)
	return nil
}

func (r *fakeSolicitanteRepo) ListNomes(_ context.Context) ([]string, error) {
	out := append([]string(nil), r.nomes...)
	sort.Strings(out)
	return out, nil
}

// fakeTxManager snapshots both repos before running the unit of work and
// restores them if it fails, mimicking a rollback.
type fakeTxManager struct {
	insumos      *fakeInsumoRepo
	solicitantes *fakeSolicitanteRepo
}

func (t *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	recordsBefore := append([]model.Insumo(nil), t.insumos.records...)
	nextIDBefore := t.insumos.nextID
	createsBefore := t.insumos.creates
	nomesBefore := append([]string(nil), t.solicitantes.nomes...)

	if err := fn(ctx); err != nil {
		t.insumos.records = recordsBefore
		t.insumos.nextID = nextIDBefore
		t.insumos.creates = createsBefore
		t.solicitantes.nomes = nomesBefore
		return err
	}
	return nil
}

type fixture struct {
	insumos      *fakeInsumoRepo
	solicitantes *fakeSolicitanteRepo
	tx           *fakeTxManager
}

func newFixture() fixture {
	insumos := newFakeInsumoRepo()
	solicitantes := &fakeSolicitanteRepo{}
	return fixture{
		insumos:      insumos,
		solicitantes: solicitantes,
		tx:           &fakeTxManager{insumos: insumos, solicitantes: solicitantes},
	}
}

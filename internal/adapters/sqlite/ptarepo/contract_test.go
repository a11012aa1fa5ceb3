package ptarepo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/contracttest"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/sqlite"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	ptarepoport "github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

func TestContract_SQLitePtaRepo(t *testing.T) {
	contracttest.RunPtaRepo(t, func(t *testing.T) (ptarepoport.Repository, func()) {
		t.Helper()
		db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "ptas.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		return NewRepo(db), func() { _ = db.Close() }
	})
}

func TestRepo_IDsSurviveReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ptas.db")
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	created, err := NewRepo(db).Create(ctx, domain.PtaFields{ProcedureNumber: "my pta"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_ = db.Close()

	db, err = sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	got, err := NewRepo(db).Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.ProcedureNumber != "my pta" {
		t.Fatalf("procedure_number=%q want=%q", got.ProcedureNumber, "my pta")
	}
}

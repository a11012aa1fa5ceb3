// Package contracttest holds behaviour suites shared by every adapter of an
// outbound port. Adapter packages call the Run* functions from their own
// contract_test.go with a factory for a fresh, empty repository.
package contracttest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// PtaRepoFactory returns an empty repository and an optional cleanup func.
type PtaRepoFactory func(t *testing.T) (ptarepo.Repository, func())

// RunPtaRepo exercises the ptarepo.Repository contract.
// Subtests run sequentially; factories may share one database between them.
func RunPtaRepo(t *testing.T, newRepo PtaRepoFactory) {
	t.Helper()

	open := func(t *testing.T) ptarepo.Repository {
		t.Helper()
		repo, cleanup := newRepo(t)
		if cleanup != nil {
			t.Cleanup(cleanup)
		}
		return repo
	}

	t.Run("CreateThenGet", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{ProcedureNumber: "my pta", Taxpayer: "ACME Ltda"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("Create returned empty id")
		}
		if created.ProcedureNumber != "my pta" {
			t.Fatalf("created procedure_number=%q want=%q", created.ProcedureNumber, "my pta")
		}

		got, err := repo.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != created {
			t.Fatalf("Get=%+v want=%+v", got, created)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{ProcedureNumber: "only"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ptarepo.ErrNotFound) {
			t.Fatalf("Get deleted err=%v want ErrNotFound", err)
		}
		if _, err := repo.Get(ctx, "not-an-id"); !errors.Is(err, ptarepo.ErrNotFound) {
			t.Fatalf("Get garbage id err=%v want ErrNotFound", err)
		}
	})

	t.Run("UpdatePatchesOnlySubmittedFields", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{ProcedureNumber: "my pta", Location: "shelf 1"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		updated, err := repo.Update(ctx, created.ID, domain.PtaPatch{"procedure_number": "my other pta", "status": "closed"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("Update changed id %q -> %q", created.ID, updated.ID)
		}
		want := created.PtaFields
		want.ProcedureNumber = "my other pta"
		want.Status = "closed"
		if updated.PtaFields != want {
			t.Fatalf("Update fields=%+v want=%+v", updated.PtaFields, want)
		}

		got, err := repo.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != updated {
			t.Fatalf("Get after update=%+v want=%+v", got, updated)
		}
	})

	t.Run("UpdateEmptyPatchIsRead", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{Phase: "judicial"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := repo.Update(ctx, created.ID, domain.PtaPatch{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got != created {
			t.Fatalf("Update(empty)=%+v want=%+v", got, created)
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.Update(ctx, created.ID, domain.PtaPatch{"status": "x"}); !errors.Is(err, ptarepo.ErrNotFound) {
			t.Fatalf("Update deleted err=%v want ErrNotFound", err)
		}
		if _, err := repo.Update(ctx, created.ID, domain.PtaPatch{}); !errors.Is(err, ptarepo.ErrNotFound) {
			t.Fatalf("Update(empty) deleted err=%v want ErrNotFound", err)
		}
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, domain.PtaFields{ProcedureNumber: "gone"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		for i := 0; i < 2; i++ {
			if err := repo.Delete(ctx, created.ID); err != nil {
				t.Fatalf("Delete #%d: %v", i+1, err)
			}
		}
		if err := repo.Delete(ctx, "not-an-id"); err != nil {
			t.Fatalf("Delete garbage id: %v", err)
		}
	})

	t.Run("ListPaginates", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		var want []domain.PtaID
		for i := 0; i < 5; i++ {
			p, err := repo.Create(ctx, domain.PtaFields{ProcedureNumber: fmt.Sprintf("pta-%d", i)})
			if err != nil {
				t.Fatalf("Create #%d: %v", i, err)
			}
			want = append(want, p.ID)
		}

		var got []domain.PtaID
		token := ""
		pages := 0
		for {
			page, err := repo.List(ctx, 2, token)
			if err != nil {
				t.Fatalf("List page %d: %v", pages, err)
			}
			pages++
			if len(page.Ptas) > 2 {
				t.Fatalf("page %d len=%d exceeds limit", pages, len(page.Ptas))
			}
			for _, p := range page.Ptas {
				got = append(got, p.ID)
			}
			if page.NextPageToken == "" {
				break
			}
			if pages > 5 {
				t.Fatalf("pagination did not terminate")
			}
			token = page.NextPageToken
		}
		if pages != 3 {
			t.Fatalf("pages=%d want=3", pages)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("ids=%v want=%v", got, want)
		}
	})

	t.Run("ListExactPageHasNoNextToken", func(t *testing.T) {
		repo := open(t)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			if _, err := repo.Create(ctx, domain.PtaFields{}); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		page, err := repo.List(ctx, 2, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Ptas) != 2 || page.NextPageToken != "" {
			t.Fatalf("page len=%d next=%q want len=2 next=\"\"", len(page.Ptas), page.NextPageToken)
		}
	})

	t.Run("ListEmpty", func(t *testing.T) {
		repo := open(t)

		page, err := repo.List(context.Background(), 10, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Ptas) != 0 || page.NextPageToken != "" {
			t.Fatalf("page=%+v want empty", page)
		}
	})

	t.Run("ListRejectsMalformedToken", func(t *testing.T) {
		repo := open(t)

		if _, err := repo.List(context.Background(), 10, "badrequest"); !errors.Is(err, ptarepo.ErrInvalidPageToken) {
			t.Fatalf("List err=%v want ErrInvalidPageToken", err)
		}
	})

	t.Run("ListRejectsNonPositiveLimit", func(t *testing.T) {
		repo := open(t)

		if _, err := repo.List(context.Background(), 0, ""); err == nil {
			t.Fatalf("List(limit=0) err=nil want error")
		}
	})
}

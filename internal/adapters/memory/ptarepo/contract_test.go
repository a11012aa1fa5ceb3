package ptarepo

import (
	"context"
	"sync"
	"testing"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/contracttest"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	ptarepoport "github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

func TestContract_PtaRepo(t *testing.T) {
	contracttest.RunPtaRepo(t, func(t *testing.T) (ptarepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}

func TestRepo_ConcurrentCreateAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Create(context.Background(), domain.PtaFields{})
		}()
	}
	wg.Wait()

	page, err := r.List(context.Background(), 100, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Ptas) != 20 {
		t.Fatalf("len=%d want=20", len(page.Ptas))
	}
}

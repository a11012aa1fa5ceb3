package ptarepo

import (
	"context"
	"os"
	"testing"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/contracttest"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/mongodb"
	ptarepoport "github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

func TestContract_MongoPtaRepo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping MongoDB contract tests")
	}
	client, err := mongodb.Connect(context.Background(), uri)
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = mongodb.Disconnect(client) })

	coll := client.Database("ptashelf_test").Collection("ptas_contract")
	contracttest.RunPtaRepo(t, func(t *testing.T) (ptarepoport.Repository, func()) {
		t.Helper()
		if err := coll.Drop(context.Background()); err != nil {
			t.Fatalf("drop collection: %v", err)
		}
		return NewRepo(coll), nil
	})
}

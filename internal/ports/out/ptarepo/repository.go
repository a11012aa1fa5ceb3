// Package ptarepo is the outbound port for pta persistence.
//
// Every backend adapter (memory, postgres, sqlite, mongo) implements
// Repository and is covered by the shared contract suite in
// internal/adapters/contracttest.
package ptarepo

import (
	"context"
	"errors"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

var (
	// ErrNotFound indicates no pta exists for the requested id.
	ErrNotFound = errors.New("pta not found")
	// ErrInvalidPageToken indicates a page token that the backend cannot decode.
	ErrInvalidPageToken = errors.New("invalid page token")
)

// Page is one page of a listing. NextPageToken is empty on the last page.
type Page struct {
	Ptas          []domain.Pta
	NextPageToken string
}

type Repository interface {
	// List returns at most limit ptas in backend order starting after the
	// position encoded in pageToken ("" for the first page).
	List(ctx context.Context, limit int, pageToken string) (Page, error)
	// Create stores fields under a backend-assigned id and returns the stored pta.
	Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error)
	// Get returns ErrNotFound when id does not exist.
	Get(ctx context.Context, id domain.PtaID) (domain.Pta, error)
	// Update applies patch and returns the updated pta, or ErrNotFound when id
	// does not exist.
	Update(ctx context.Context, id domain.PtaID, patch domain.PtaPatch) (domain.Pta, error)
	// Delete removes id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id domain.PtaID) error
}

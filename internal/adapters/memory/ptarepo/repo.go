package ptarepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/pagetoken"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// Repo is an in-memory implementation of ptarepo.Repository.
// It is safe for concurrent use.
//
// IDs are UUIDv7 strings, so lexical id order is creation order.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.PtaID]domain.PtaFields
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.PtaID]domain.PtaFields),
	}
}

func (r *Repo) List(ctx context.Context, limit int, pageToken string) (ptarepo.Page, error) {
	_ = ctx
	if limit <= 0 {
		return ptarepo.Page{}, fmt.Errorf("limit must be greater than zero")
	}
	after, err := pagetoken.Decode(pageToken)
	if err != nil {
		return ptarepo.Page{}, fmt.Errorf("%w: %v", ptarepo.ErrInvalidPageToken, err)
	}
	if after != "" {
		if _, err := uuid.Parse(after); err != nil {
			return ptarepo.Page{}, fmt.Errorf("%w: bad cursor id", ptarepo.ErrInvalidPageToken)
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]domain.PtaID, 0, len(r.byID))
	for id := range r.byID {
		if after == "" || string(id) > after {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	page := ptarepo.Page{Ptas: make([]domain.Pta, 0, min(limit, len(ids)))}
	for _, id := range ids {
		if len(page.Ptas) == limit {
			page.NextPageToken = pagetoken.Encode(string(page.Ptas[limit-1].ID))
			break
		}
		page.Ptas = append(page.Ptas, domain.Pta{ID: id, PtaFields: r.byID[id]})
	}
	return page, nil
}

func (r *Repo) Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error) {
	_ = ctx
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Pta{}, fmt.Errorf("generate pta id: %w", err)
	}
	p := domain.Pta{ID: domain.PtaID(id.String()), PtaFields: fields}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = fields
	return p, nil
}

func (r *Repo) Get(ctx context.Context, id domain.PtaID) (domain.Pta, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byID[id]
	if !ok {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	return domain.Pta{ID: id, PtaFields: f}, nil
}

func (r *Repo) Update(ctx context.Context, id domain.PtaID, patch domain.PtaPatch) (domain.Pta, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	patch.Apply(&f)
	r.byID[id] = f
	return domain.Pta{ID: id, PtaFields: f}, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PtaID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

var _ ptarepo.Repository = (*Repo)(nil)

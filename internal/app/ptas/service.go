// Package ptas is the application layer for pta records. It sits between the
// HTTP adapter and the ptarepo port and classifies storage failures.
package ptas

import (
	"context"
	"errors"
	"net/http"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// PageSize is the number of ptas per listing page.
const PageSize = 10

type Service struct {
	repo ptarepo.Repository
}

func NewService(repo ptarepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, pageToken string) (ptarepo.Page, error) {
	page, err := s.repo.List(ctx, PageSize, pageToken)
	if err != nil {
		return ptarepo.Page{}, classify(err)
	}
	return page, nil
}

func (s *Service) Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error) {
	p, err := s.repo.Create(ctx, fields)
	if err != nil {
		return domain.Pta{}, classify(err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id domain.PtaID) (domain.Pta, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Pta{}, classify(err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id domain.PtaID, patch domain.PtaPatch) (domain.Pta, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Pta{}, classify(err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id domain.PtaID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(err)
	}
	return nil
}

// Each walks every page and calls fn for each pta in listing order.
func (s *Service) Each(ctx context.Context, fn func(domain.Pta) error) error {
	token := ""
	for {
		page, err := s.repo.List(ctx, PageSize, token)
		if err != nil {
			return classify(err)
		}
		for _, p := range page.Ptas {
			if err := fn(p); err != nil {
				return err
			}
		}
		if page.NextPageToken == "" {
			return nil
		}
		token = page.NextPageToken
	}
}

func classify(err error) error {
	switch {
	case errors.Is(err, ptarepo.ErrNotFound):
		return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: "pta not found", Cause: err}
	case errors.Is(err, ptarepo.ErrInvalidPageToken):
		return &Error{Status: http.StatusInternalServerError, Code: CodeInvalidPageToken, Message: err.Error(), Cause: err}
	default:
		return &Error{Status: http.StatusInternalServerError, Code: CodeBackendFailure, Message: err.Error(), Cause: err}
	}
}

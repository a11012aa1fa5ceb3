package ptarepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/pagetoken"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// Repo stores ptas in the ptas table. IDs are the identity column rendered
// in base 10; ids that do not parse are treated as absent.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var selectColumns = func() string {
	cols := []string{"id"}
	for _, fd := range domain.Fields {
		cols = append(cols, fd.Column)
	}
	return strings.Join(cols, ", ")
}()

func (r *Repo) List(ctx context.Context, limit int, pageToken string) (ptarepo.Page, error) {
	if limit <= 0 {
		return ptarepo.Page{}, fmt.Errorf("limit must be greater than zero")
	}
	after, err := decodeCursor(pageToken)
	if err != nil {
		return ptarepo.Page{}, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM ptas WHERE id > $1 ORDER BY id ASC LIMIT $2`,
		after, limit+1,
	)
	if err != nil {
		return ptarepo.Page{}, postgres.WrapQueryError("list ptas", err)
	}
	defer rows.Close()

	page := ptarepo.Page{Ptas: make([]domain.Pta, 0, limit)}
	for rows.Next() {
		p, err := scanPta(rows)
		if err != nil {
			return ptarepo.Page{}, fmt.Errorf("list ptas: %w", err)
		}
		page.Ptas = append(page.Ptas, p)
	}
	if err := rows.Err(); err != nil {
		return ptarepo.Page{}, postgres.WrapQueryError("list ptas", err)
	}
	if len(page.Ptas) > limit {
		page.Ptas = page.Ptas[:limit]
		page.NextPageToken = pagetoken.Encode(string(page.Ptas[limit-1].ID))
	}
	return page, nil
}

func (r *Repo) Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error) {
	cols := make([]string, 0, len(domain.Fields))
	params := make([]string, 0, len(domain.Fields))
	args := make([]any, 0, len(domain.Fields))
	for i, fd := range domain.Fields {
		cols = append(cols, fd.Column)
		params = append(params, "$"+strconv.Itoa(i+1))
		args = append(args, fd.Get(fields))
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO ptas (`+strings.Join(cols, ", ")+`) VALUES (`+strings.Join(params, ", ")+`) RETURNING `+selectColumns,
		args...,
	)
	p, err := scanPta(row)
	if err != nil {
		return domain.Pta{}, postgres.WrapQueryError("create pta", err)
	}
	return p, nil
}

func (r *Repo) Get(ctx context.Context, id domain.PtaID) (domain.Pta, error) {
	n, ok := parseID(id)
	if !ok {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM ptas WHERE id = $1`, n)
	p, err := scanPta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Pta{}, ptarepo.ErrNotFound
		}
		return domain.Pta{}, postgres.WrapQueryError("get pta", err)
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id domain.PtaID, patch domain.PtaPatch) (domain.Pta, error) {
	n, ok := parseID(id)
	if !ok {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	var (
		sets []string
		args []any
	)
	for _, fd := range domain.Fields {
		v, ok := patch[fd.Key]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fd.Column+" = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, n)
	row := r.pool.QueryRow(ctx,
		`UPDATE ptas SET `+strings.Join(sets, ", ")+` WHERE id = $`+strconv.Itoa(len(args))+` RETURNING `+selectColumns,
		args...,
	)
	p, err := scanPta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Pta{}, ptarepo.ErrNotFound
		}
		return domain.Pta{}, postgres.WrapQueryError("update pta", err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PtaID) error {
	n, ok := parseID(id)
	if !ok {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM ptas WHERE id = $1`, n); err != nil {
		return postgres.WrapQueryError("delete pta", err)
	}
	return nil
}

func scanPta(row pgx.Row) (domain.Pta, error) {
	var (
		id int64
		p  domain.Pta
	)
	dest := make([]any, 0, len(domain.Fields)+1)
	dest = append(dest, &id)
	for _, fd := range domain.Fields {
		dest = append(dest, fd.Ptr(&p.PtaFields))
	}
	if err := row.Scan(dest...); err != nil {
		return domain.Pta{}, err
	}
	p.ID = domain.PtaID(strconv.FormatInt(id, 10))
	return p, nil
}

func parseID(id domain.PtaID) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func decodeCursor(pageToken string) (int64, error) {
	native, err := pagetoken.Decode(pageToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ptarepo.ErrInvalidPageToken, err)
	}
	if native == "" {
		return 0, nil
	}
	n, ok := parseID(domain.PtaID(native))
	if !ok {
		return 0, fmt.Errorf("%w: bad cursor id %q", ptarepo.ErrInvalidPageToken, native)
	}
	return n, nil
}

var _ ptarepo.Repository = (*Repo)(nil)

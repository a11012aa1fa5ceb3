package ptarepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/sqlite"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/pagetoken"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// Repo persists ptas in SQLite. IDs are the INTEGER PRIMARY KEY in base 10.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
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
	native, err := pagetoken.Decode(pageToken)
	if err != nil {
		return ptarepo.Page{}, fmt.Errorf("%w: %v", ptarepo.ErrInvalidPageToken, err)
	}
	var after int64
	if native != "" {
		n, ok := parseID(domain.PtaID(native))
		if !ok {
			return ptarepo.Page{}, fmt.Errorf("%w: bad cursor id %q", ptarepo.ErrInvalidPageToken, native)
		}
		after = n
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM ptas WHERE id > ? ORDER BY id ASC LIMIT ?`,
		after, limit+1,
	)
	if err != nil {
		return ptarepo.Page{}, sqlite.WrapQueryError("list ptas", err)
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
		return ptarepo.Page{}, sqlite.WrapQueryError("list ptas", err)
	}
	if len(page.Ptas) > limit {
		page.Ptas = page.Ptas[:limit]
		page.NextPageToken = pagetoken.Encode(string(page.Ptas[limit-1].ID))
	}
	return page, nil
}

func (r *Repo) Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error) {
	cols := make([]string, 0, len(domain.Fields))
	args := make([]any, 0, len(domain.Fields))
	for _, fd := range domain.Fields {
		cols = append(cols, fd.Column)
		args = append(args, fd.Get(fields))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ptas (`+strings.Join(cols, ", ")+`) VALUES (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return domain.Pta{}, sqlite.WrapQueryError("create pta", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Pta{}, fmt.Errorf("create pta: last insert id: %w", err)
	}
	return r.Get(ctx, domain.PtaID(strconv.FormatInt(id, 10)))
}

func (r *Repo) Get(ctx context.Context, id domain.PtaID) (domain.Pta, error) {
	n, ok := parseID(id)
	if !ok {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM ptas WHERE id = ?`, n)
	p, err := scanPta(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pta{}, ptarepo.ErrNotFound
		}
		return domain.Pta{}, sqlite.WrapQueryError("get pta", err)
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
		if v, ok := patch[fd.Key]; ok {
			sets = append(sets, fd.Column+" = ?")
			args = append(args, v)
		}
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, n)
	res, err := r.db.ExecContext(ctx, `UPDATE ptas SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Pta{}, sqlite.WrapQueryError("update pta", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Pta{}, fmt.Errorf("update pta: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id domain.PtaID) error {
	n, ok := parseID(id)
	if !ok {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ptas WHERE id = ?`, n); err != nil {
		return sqlite.WrapQueryError("delete pta", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPta(row rowScanner) (domain.Pta, error) {
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

var _ ptarepo.Repository = (*Repo)(nil)

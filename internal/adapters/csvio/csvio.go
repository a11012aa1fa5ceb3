// Package csvio moves ptas in and out of CSV files. The header row uses the
// field keys (procedure_number, taxpayer, ...) plus id on export.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jszwec/csvutil"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

// Lister walks every stored pta.
type Lister interface {
	Each(ctx context.Context, fn func(domain.Pta) error) error
}

// Creator stores a new pta.
type Creator interface {
	Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error)
}

// Export writes every pta to w and returns the number written.
func Export(ctx context.Context, src Lister, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(domain.Pta{}); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	n := 0
	err := src.Each(ctx, func(p domain.Pta) error {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode pta %s: %w", p.ID, err)
		}
		n++
		return nil
	})
	if err != nil {
		return n, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("flush csv: %w", err)
	}
	return n, nil
}

// ImportStats summarises an Import run.
type ImportStats struct {
	Created int
	Skipped int
}

// Import creates one pta per CSV row. Unknown columns (including id) are
// ignored; rows with every field empty are skipped.
func Import(ctx context.Context, dst Creator, r io.Reader) (ImportStats, error) {
	var stats ImportStats
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		return stats, fmt.Errorf("read csv header: %w", err)
	}

	for row := 1; ; row++ {
		var f domain.PtaFields
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, fmt.Errorf("decode row %d: %w", row, err)
		}
		if f == (domain.PtaFields{}) {
			log.Printf("skipping row %d: all fields empty", row)
			stats.Skipped++
			continue
		}
		if _, err := dst.Create(ctx, f); err != nil {
			return stats, fmt.Errorf("create row %d: %w", row, err)
		}
		stats.Created++
		if stats.Created%100 == 0 {
			log.Printf("imported %d ptas...", stats.Created)
		}
	}
}

package csvio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	memptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/memory/ptarepo"
	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

func TestExportThenImport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := ptas.NewService(memptarepo.NewRepo())
	for _, f := range []domain.PtaFields{
		{ProcedureNumber: "01.000123456-78", Taxpayer: "ACME, Ltda", OldProcess: "line one\nline two"},
		{ProcedureNumber: "02.000999999-00", Status: "closed"},
	} {
		if _, err := src.Create(ctx, f); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	var buf bytes.Buffer
	n, err := Export(ctx, src, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Fatalf("exported=%d want=2", n)
	}
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.HasPrefix(header, "id,procedure_number,taxpayer") {
		t.Fatalf("header=%q", header)
	}

	dstRepo := memptarepo.NewRepo()
	dst := ptas.NewService(dstRepo)
	stats, err := Import(ctx, dst, &buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.Created != 2 || stats.Skipped != 0 {
		t.Fatalf("stats=%+v", stats)
	}

	page, err := dst.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Ptas) != 2 {
		t.Fatalf("imported len=%d want=2", len(page.Ptas))
	}
	if got := page.Ptas[0]; got.Taxpayer != "ACME, Ltda" || got.OldProcess != "line one\nline two" {
		t.Fatalf("first imported=%+v", got)
	}
}

func TestExportEmptyWritesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := Export(context.Background(), ptas.NewService(memptarepo.NewRepo()), &buf)
	if err != nil || n != 0 {
		t.Fatalf("Export=(%d,%v)", n, err)
	}
	if !strings.HasPrefix(buf.String(), "id,procedure_number") {
		t.Fatalf("output=%q", buf.String())
	}
}

func TestImportSkipsBlankRowsAndIgnoresUnknownColumns(t *testing.T) {
	t.Parallel()

	in := "procedure_number,notes,status\nA-1,whatever,open\n,,\n"
	dst := ptas.NewService(memptarepo.NewRepo())
	stats, err := Import(context.Background(), dst, strings.NewReader(in))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.Created != 1 || stats.Skipped != 1 {
		t.Fatalf("stats=%+v want 1 created 1 skipped", stats)
	}
}

func TestImportEmptyInput(t *testing.T) {
	t.Parallel()

	stats, err := Import(context.Background(), ptas.NewService(memptarepo.NewRepo()), strings.NewReader(""))
	if err != nil || stats != (ImportStats{}) {
		t.Fatalf("Import(empty)=(%+v,%v)", stats, err)
	}
}

package ptarepo

import (
	"testing"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/contracttest"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres/testutil"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	ptarepoport "github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

func TestContract_PostgresPtaRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunPtaRepo(t, func(t *testing.T) (ptarepoport.Repository, func()) {
		t.Helper()
		testutil.TruncatePtas(t, pool)
		return NewRepo(pool), nil
	})
}

func TestParseID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseID(domain.PtaID(tc.in))
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseID(%q)=(%d,%v) want (%d,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDecodeCursorRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	if _, err := decodeCursor("badrequest"); err == nil {
		t.Fatalf("decodeCursor(badrequest) err=nil")
	}
	if n, err := decodeCursor(""); err != nil || n != 0 {
		t.Fatalf("decodeCursor(\"\")=(%d,%v) want (0,nil)", n, err)
	}
}

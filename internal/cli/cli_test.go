package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	memptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/memory/ptarepo"
)

// run executes the root command with args and no dotenv file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSQLiteImportExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ptashelf.db"))

	if _, err := run(t, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	in := filepath.Join(dir, "in.csv")
	csvData := "procedure_number,taxpayer,status\n01.000123456-78,ACME Ltda,open\n02.000999999-00,Widgets SA,closed\n"
	if err := os.WriteFile(in, []byte(csvData), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out, err := run(t, "import", in)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Fatalf("import output=%q want 2", out)
	}

	exported := filepath.Join(dir, "out.csv")
	if _, err := run(t, "export", "-o", exported); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("export lines=%d want=3:\n%s", len(lines), b)
	}
	if !strings.HasPrefix(lines[0], "id,procedure_number,taxpayer") {
		t.Fatalf("header=%q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,01.000123456-78,ACME Ltda") {
		t.Fatalf("first row=%q", lines[1])
	}

	stdout, err := run(t, "export")
	if err != nil {
		t.Fatalf("export to stdout: %v", err)
	}
	if !strings.Contains(stdout, "Widgets SA") {
		t.Fatalf("stdout export missing row:\n%s", stdout)
	}
}

func TestMigrateMemoryIsNoop(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	if _, err := run(t, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func TestUnknownBackendFails(t *testing.T) {
	t.Setenv("DATA_BACKEND", "oracle")
	_, err := run(t, "export")
	if err == nil || !strings.Contains(err.Error(), "unknown DATA_BACKEND") {
		t.Fatalf("err=%v want unknown DATA_BACKEND", err)
	}
}

func TestImportRequiresFile(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	if _, err := run(t, "import"); err == nil {
		t.Fatalf("import without args err=nil")
	}
	if _, err := run(t, "import", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("import missing file err=nil")
	}
}

func TestHandlerServesHealthAndPages(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(newHandler(memptarepo.NewRepo()))
	defer ts.Close()

	for _, path := range []string{"/healthz", "/ptas", "/api/ptas"} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status=%d want=200", path, res.StatusCode)
		}
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	if err := serve(ctx, srv, "memory"); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

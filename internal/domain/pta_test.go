package domain

import "testing"

func TestFieldsCatalogueCoversEveryAttribute(t *testing.T) {
	t.Parallel()

	var f PtaFields
	for _, fd := range Fields {
		fd.Set(&f, fd.Key+"-value")
	}
	for _, fd := range Fields {
		if got := fd.Get(f); got != fd.Key+"-value" {
			t.Fatalf("%s = %q, want %q", fd.Key, got, fd.Key+"-value")
		}
	}

	seen := map[string]bool{}
	for _, fd := range Fields {
		if seen[fd.Column] {
			t.Fatalf("duplicate column %q", fd.Column)
		}
		seen[fd.Column] = true
	}
}

func TestPatchApplyTouchesOnlyPatchedFields(t *testing.T) {
	t.Parallel()

	f := PtaFields{ProcedureNumber: "my pta", Taxpayer: "ACME"}
	PatchFromMap(map[string]string{
		"procedure_number": "my other pta",
		"not_a_field":      "ignored",
	}).Apply(&f)

	if f.ProcedureNumber != "my other pta" {
		t.Fatalf("procedure_number = %q, want %q", f.ProcedureNumber, "my other pta")
	}
	if f.Taxpayer != "ACME" {
		t.Fatalf("taxpayer = %q, want unchanged", f.Taxpayer)
	}
}

func TestPatchFromMapDropsUnknownKeys(t *testing.T) {
	t.Parallel()

	p := PatchFromMap(map[string]string{"id": "7", "status": "open"})
	if len(p) != 1 || p["status"] != "open" {
		t.Fatalf("patch = %v, want only status", p)
	}
}

func TestFieldsFromMap(t *testing.T) {
	t.Parallel()

	f := FieldsFromMap(map[string]string{"location": "shelf 3", "r3": "A1"})
	if f.Location != "shelf 3" || f.R3 != "A1" {
		t.Fatalf("fields = %+v", f)
	}
	if f.ProcedureNumber != "" {
		t.Fatalf("procedure_number = %q, want empty", f.ProcedureNumber)
	}
}

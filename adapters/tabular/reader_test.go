package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"datalens/domain/dataset"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewReader_TypeFromExtension(t *testing.T) {
	cases := map[string]string{
		"data.csv":  "csv",
		"data.CSV":  "csv",
		"data.xlsx": "xlsx",
		"data.XLS":  "xlsx",
		"data.json": "json",
		"data.txt":  "csv", // unknown extensions fall back to csv
	}
	for name, want := range cases {
		if r := NewReader(name); r.fileType != want {
			t.Errorf("NewReader(%q).fileType = %s, want %s", name, r.fileType, want)
		}
	}
}

func TestRead_CSV(t *testing.T) {
	path := writeTemp(t, "orders.csv", "region,units\nNorth,10\nSouth,20\n")
	rows, err := NewReader(path).Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["region"] != "North" || rows[0]["units"] != "10" {
		t.Errorf("row 0 = %v", rows[0])
	}
}

func TestRead_CSVRaggedRows(t *testing.T) {
	// A short data row pads the missing trailing cell with nil.
	path := writeTemp(t, "ragged.csv", "a,b,c\n1,2,3\n4,5\n")
	rows, err := NewReader(path).Read()
	if err != nil {
		t.Fatal(err)
	}
	if rows[1]["c"] != nil {
		t.Errorf("short row cell = %v, want nil", rows[1]["c"])
	}
	if rows[1]["b"] != "5" {
		t.Errorf("row 1 b = %v, want 5", rows[1]["b"])
	}
}

func TestRead_CSVHeaderOnly(t *testing.T) {
	path := writeTemp(t, "empty.csv", "a,b\n")
	if _, err := NewReader(path).Read(); err == nil {
		t.Error("expected error for header-only file")
	}
}

func TestRead_CSVHeaderTrimmedAndBlankDropped(t *testing.T) {
	path := writeTemp(t, "headers.csv", " name ,,value\nalice,ignored,3\n")
	rows, err := NewReader(path).Read()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0]["name"] != "alice" {
		t.Errorf("trimmed header lookup failed: %v", rows[0])
	}
	if _, ok := rows[0][""]; ok {
		t.Error("blank header column must be dropped")
	}
}

func TestRead_JSON(t *testing.T) {
	path := writeTemp(t, "orders.json", `[{"region":"North","units":10},{"region":"South","units":null}]`)
	rows, err := NewReader(path).Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["units"] != 10.0 {
		t.Errorf("units = %v (%T), want 10.0", rows[0]["units"], rows[0]["units"])
	}
	if !dataset.IsMissing(rows[1]["units"]) {
		t.Errorf("null cell should be missing, got %v", rows[1]["units"])
	}
}

func TestRead_JSONNotAnArray(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"region":"North"}`)
	if _, err := NewReader(path).Read(); err == nil {
		t.Error("expected error for non-array JSON")
	}
}

func TestRead_FileNotFound(t *testing.T) {
	if _, err := NewReader("/nonexistent/orders.csv").Read(); err == nil {
		t.Error("expected error for missing file")
	}
}

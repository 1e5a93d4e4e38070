package serializer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oraguide/oraguide/pkg/serializer"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want serializer.Format
	}{
		{"snapshot.json", serializer.FormatJSON},
		{"snapshot.yaml", serializer.FormatYAML},
		{"snapshot.yml", serializer.FormatYAML},
		{"SNAPSHOT.YAML", serializer.FormatYAML},
		{"snapshot.txt", serializer.FormatJSON},
		{"snapshot", serializer.FormatJSON},
	}

	for _, tt := range tests {
		if got := serializer.FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReader_DeserializeJSON(t *testing.T) {
	input := strings.NewReader(`{"name": "first", "value": 42}`)
	reader, err := serializer.NewReader(serializer.FormatJSON, input)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var doc testDoc
	if err := reader.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if doc.Name != "first" || doc.Value != 42 {
		t.Errorf("Unexpected data: %+v", doc)
	}
}

func TestReader_DeserializeYAML(t *testing.T) {
	input := strings.NewReader("name: first\nvalue: 42\n")
	reader, err := serializer.NewReader(serializer.FormatYAML, input)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var doc testDoc
	if err := reader.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if doc.Name != "first" || doc.Value != 42 {
		t.Errorf("Unexpected data: %+v", doc)
	}
}

func TestNewReader_RejectsTableFormat(t *testing.T) {
	_, err := serializer.NewReader(serializer.FormatTable, strings.NewReader(""))
	if err == nil {
		t.Fatal("Expected error for table format")
	}
}

func TestNewReader_RejectsUnknownFormat(t *testing.T) {
	_, err := serializer.NewReader("csv", strings.NewReader(""))
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"name": "stored", "value": 7}`), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	doc, err := serializer.FromFile[testDoc](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	if doc.Name != "stored" || doc.Value != 7 {
		t.Errorf("Unexpected data: %+v", doc)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := serializer.FromFile[testDoc](filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

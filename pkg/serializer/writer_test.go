package serializer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/oraguide/oraguide/pkg/serializer"
	"gopkg.in/yaml.v3"
)

type testDoc struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatJSON, &buf)

	data := []testDoc{
		{Name: "first", Value: 123},
		{Name: "second", Value: 456},
	}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != "first" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatYAML, &buf)

	data := []testDoc{
		{Name: "first", Value: 123},
	}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testDoc
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 1 || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatTable, &buf)

	data := []testDoc{
		{Name: "first", Value: 123},
		{Name: "second", Value: 456},
	}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}

	if !strings.Contains(output, "[0].name") || !strings.Contains(output, "[1].value") {
		t.Errorf("Expected flattened keys not found in output:\n%s", output)
	}
}

func TestWriter_TableHonorsJSONTags(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatTable, &buf)

	type tagged struct {
		Kept    string `json:"kept"`
		Skipped string `json:"-"`
	}

	if err := writer.Serialize(t.Context(), tagged{Kept: "yes", Skipped: "no"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "kept") {
		t.Error("Expected tagged key in output")
	}
	if strings.Contains(output, "Skipped") || strings.Contains(output, "no") {
		t.Errorf("Field tagged with - should be omitted:\n%s", output)
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter("invalid", &buf)

	if err := writer.Serialize(t.Context(), testDoc{Name: "x", Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Expected JSON fallback, got: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "  ")
	if writer == nil {
		t.Fatal("Expected non-nil writer for empty path")
	}
	if err := writer.(interface{ Close() error }).Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNewStdoutWriter(t *testing.T) {
	writer := serializer.NewStdoutWriter(serializer.FormatJSON)
	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should be a no-op: %v", err)
	}
}

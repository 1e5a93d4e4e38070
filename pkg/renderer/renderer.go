package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/oraguide/oraguide/pkg/advisor"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

//go:embed templates/report.txt.tmpl
var reportTemplate string

//go:embed templates/connector.properties.tmpl
var propertiesTemplate string

// reportData is the combined input for the operator report template.
type reportData struct {
	Snapshot        *snapshot.Snapshot
	Recommendations *advisor.Recommendations
}

// Renderer renders advisory output for operators. Templates hold no
// numeric derivation, every value is computed before rendering.
type Renderer struct {
	report     *template.Template
	properties *template.Template
}

// New creates a Renderer with the embedded templates parsed.
func New() (*Renderer, error) {
	report, err := template.New("report.txt").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	properties, err := template.New("connector.properties").Parse(propertiesTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties template: %w", err)
	}

	return &Renderer{
		report:     report,
		properties: properties,
	}, nil
}

// Report renders the human-readable operator report: observed statistics,
// each recommendation, and the ordered warnings.
func (r *Renderer) Report(snap *snapshot.Snapshot, recs *advisor.Recommendations) (string, error) {
	if snap == nil || recs == nil {
		return "", fmt.Errorf("snapshot and recommendations are required")
	}

	var buf bytes.Buffer
	if err := r.report.Execute(&buf, reportData{Snapshot: snap, Recommendations: recs}); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.String(), nil
}

// ConnectorProperties renders a connector properties fragment mapping the
// recommendation fields to their external configuration keys.
func (r *Renderer) ConnectorProperties(recs *advisor.Recommendations) (string, error) {
	if recs == nil {
		return "", fmt.Errorf("recommendations are required")
	}

	var buf bytes.Buffer
	if err := r.properties.Execute(&buf, recs); err != nil {
		return "", fmt.Errorf("failed to execute properties template: %w", err)
	}
	return buf.String(), nil
}

// Package schemas embeds the JSON Schemas describing the scorer's output documents.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names.
const (
	ScoreBreakdown = "score_breakdown.schema.json"
	Analysis       = "analysis.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded schema files.
func Names() []string {
	return []string{ScoreBreakdown, Analysis}
}

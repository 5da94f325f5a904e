package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"bess_economics/pkg/core/pipeline"
)

var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the Markdown report to HTML. The table extension is needed
// for the indicator and capex tables.
func HTML(res *pipeline.Result) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(Markdown(res)), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

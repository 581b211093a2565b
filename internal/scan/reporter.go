package scan

import (
	"fmt"
	"io"

	"github.com/camerondm9/git-todo/internal/diffscan"
)

const (
	findingLocationTemplateConstant = "at %s:%d\n"
	findingLineTemplateConstant     = "    %s\n"
)

// FindingReporter prints findings in the fixed report format: a location
// line followed by one indented line per captured comment.
type FindingReporter struct {
	outputWriter io.Writer
}

// NewFindingReporter constructs a FindingReporter writing to outputWriter.
func NewFindingReporter(outputWriter io.Writer) *FindingReporter {
	return &FindingReporter{outputWriter: outputWriter}
}

// Report writes one finding to the output writer.
func (reporter *FindingReporter) Report(finding diffscan.Finding) error {
	if _, writeError := fmt.Fprintf(reporter.outputWriter, findingLocationTemplateConstant, finding.Path, finding.Line); writeError != nil {
		return writeError
	}
	for _, findingLine := range finding.Lines {
		if _, writeError := fmt.Fprintf(reporter.outputWriter, findingLineTemplateConstant, findingLine); writeError != nil {
			return writeError
		}
	}
	return nil
}

package scan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camerondm9/git-todo/internal/diffscan"
	"github.com/camerondm9/git-todo/internal/scan"
)

func TestFindingReporterFormat(t *testing.T) {
	testCases := []struct {
		name           string
		findings       []diffscan.Finding
		expectedOutput string
	}{
		{
			name: "single_line_finding",
			findings: []diffscan.Finding{
				{Path: "pkg/server.go", Line: 42, Lines: []string{"// TODO: retry on timeout"}},
			},
			expectedOutput: "at pkg/server.go:42\n    // TODO: retry on timeout\n",
		},
		{
			name: "finding_with_continuations",
			findings: []diffscan.Finding{
				{Path: "scripts/setup.sh", Line: 7, Lines: []string{"# TODO: validate input", "# before running"}},
			},
			expectedOutput: "at scripts/setup.sh:7\n    # TODO: validate input\n    # before running\n",
		},
		{
			name: "multiple_findings_in_order",
			findings: []diffscan.Finding{
				{Path: "a.go", Line: 1, Lines: []string{"// TODO: first"}},
				{Path: "b.go", Line: 9, Lines: []string{"// TODO: second"}},
			},
			expectedOutput: "at a.go:1\n    // TODO: first\nat b.go:9\n    // TODO: second\n",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			outputBuilder := &strings.Builder{}
			findingReporter := scan.NewFindingReporter(outputBuilder)
			for _, finding := range testCase.findings {
				require.NoError(t, findingReporter.Report(finding))
			}
			require.Equal(t, testCase.expectedOutput, outputBuilder.String())
		})
	}
}

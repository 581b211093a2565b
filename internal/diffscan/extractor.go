package diffscan

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	addedLineMarkerByteConstant      = '+'
	removedLineMarkerByteConstant    = '-'
	contextLineMarkerByteConstant    = ' '
	commentMarkerStripCutsetConstant = "#/ \t"
	lineSeparatorConstant            = "\n"
)

var (
	annotationPattern   = regexp.MustCompile(`(?im)^\+[^\n]*((?:#|//|/\*)[ \t]*TODO[: \t][ \t]*[^\n]+)$`)
	continuationPattern = regexp.MustCompile(`(?m)^[ +][ \t]*((?:#|//|/\*)[^\n]+)$`)
	hunkHeaderPattern   = regexp.MustCompile(`^@@ -([0-9]+)(?:,([0-9]+))? \+([0-9]+)(?:,([0-9]+))? @@[^\n]*$`)
)

// Finding reports one annotation occurrence inside a file segment.
type Finding struct {
	// Path is the file path copied from the owning segment.
	Path string
	// Line is the 1-based line number in the new version of the file where the annotation begins.
	Line int
	// Lines holds the annotation text plus any continuation comment lines, in order.
	Lines []string
}

// segmentCursor tracks the per-segment scanning state: the next line number to
// assign in the new version of the file, how many lines the open finding has
// accumulated, and the character column the annotation text started at.
// Continuation lines must align to that column exactly, counted in runes so
// multi-byte text before the comment token does not skew the comparison.
type segmentCursor struct {
	currentNewLine    int
	continuationCount int
	anchorColumn      int
	openFindingIndex  int
}

func newSegmentCursor() segmentCursor {
	return segmentCursor{openFindingIndex: -1}
}

// ExtractFindings scans one file segment and collects every added TODO
// annotation together with the aligned comment lines that directly follow it.
//
// Hunk headers reset the new-file line counter and close any open finding.
// Added and context lines advance the counter; removed lines do not.
func ExtractFindings(segment FileSegment) []Finding {
	// Cheap pre-filter: segments without any added annotation line produce no findings.
	if !annotationPattern.MatchString(segment.Body) {
		return nil
	}

	findings := []Finding{}
	cursor := newSegmentCursor()

	for _, line := range strings.Split(segment.Body, lineSeparatorConstant) {
		if headerMatch := hunkHeaderPattern.FindStringSubmatch(line); headerMatch != nil {
			newStartValue, _ := strconv.Atoi(headerMatch[3])
			cursor.currentNewLine = newStartValue
			cursor.continuationCount = 0
			continue
		}

		if len(line) == 0 {
			continue
		}

		if annotationLocation := annotationPattern.FindStringSubmatchIndex(line); annotationLocation != nil {
			capturedText := line[annotationLocation[2]:annotationLocation[3]]
			if cursor.continuationCount == 0 {
				findings = append(findings, Finding{Path: segment.Path, Line: cursor.currentNewLine})
				cursor.openFindingIndex = len(findings) - 1
			}
			findings[cursor.openFindingIndex].Lines = append(findings[cursor.openFindingIndex].Lines, capturedText)
			cursor.continuationCount = 1
			cursor.anchorColumn = utf8.RuneCountInString(line[:annotationLocation[2]])
		} else if cursor.continuationCount > 0 && line[0] != removedLineMarkerByteConstant {
			continuationLocation := continuationPattern.FindStringSubmatchIndex(line)
			if continuationLocation != nil && utf8.RuneCountInString(line[:continuationLocation[2]]) == cursor.anchorColumn &&
				len(strings.TrimLeft(line[continuationLocation[2]:continuationLocation[3]], commentMarkerStripCutsetConstant)) > 0 {
				capturedText := line[continuationLocation[2]:continuationLocation[3]]
				findings[cursor.openFindingIndex].Lines = append(findings[cursor.openFindingIndex].Lines, capturedText)
				cursor.continuationCount++
			} else {
				cursor.continuationCount = 0
			}
		}

		if line[0] == contextLineMarkerByteConstant || line[0] == addedLineMarkerByteConstant {
			cursor.currentNewLine++
		}
	}

	return findings
}

// ExtractAllFindings runs extraction over every segment in order and
// concatenates the results.
func ExtractAllFindings(segments []FileSegment) []Finding {
	findings := []Finding{}
	for _, segment := range segments {
		findings = append(findings, ExtractFindings(segment)...)
	}
	return findings
}

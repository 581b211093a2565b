package diffscan

import "regexp"

var (
	fileHeaderStartPattern = regexp.MustCompile(`(?m)^diff --git [^\n]+$`)
	fileHeaderEndPattern   = regexp.MustCompile(`(?m)^--- ([^\n]+)\n\+\+\+ ([^\n]+)$`)
)

// FileSegment represents one file's portion of a multi-file unified diff.
type FileSegment struct {
	// Path is the file path taken from the segment's "+++" header line.
	Path string
	// Header is the raw header text from the "diff --git" line through the end of the "+++" line.
	Header string
	// Body is the raw hunk text belonging to the file, up to the next file's header or end of input.
	Body string
}

// SegmentDiff slices raw unified diff output into ordered per-file segments.
//
// A segment begins at each "diff --git" line whose header is completed by an
// adjacent "---"/"+++" line pair found scanning forward. A trailing header
// start without a completing pair produces no segment. Lines inside hunk
// bodies that merely resemble header fragments never form a boundary because
// only a pair located after a "diff --git" line terminates a header.
func SegmentDiff(rawDiff string) []FileSegment {
	segments := []FileSegment{}
	searchPosition := 0
	danglingHeaderStart := -1

	for {
		startLocation := fileHeaderStartPattern.FindStringIndex(rawDiff[searchPosition:])
		if startLocation == nil {
			break
		}
		headerStartPosition := searchPosition + startLocation[0]
		headerSearchPosition := searchPosition + startLocation[1]

		endLocation := fileHeaderEndPattern.FindStringSubmatchIndex(rawDiff[headerSearchPosition:])
		if endLocation == nil {
			danglingHeaderStart = headerStartPosition
			break
		}
		headerEndPosition := headerSearchPosition + endLocation[1]
		newFilePath := rawDiff[headerSearchPosition+endLocation[4] : headerSearchPosition+endLocation[5]]

		if len(segments) > 0 {
			segments[len(segments)-1].Body = rawDiff[searchPosition:headerStartPosition]
		}
		segments = append(segments, FileSegment{
			Path:   newFilePath,
			Header: rawDiff[headerStartPosition:headerEndPosition],
		})
		searchPosition = headerEndPosition
	}

	if len(segments) > 0 {
		if danglingHeaderStart >= 0 {
			segments[len(segments)-1].Body = rawDiff[searchPosition:danglingHeaderStart]
		} else {
			segments[len(segments)-1].Body = rawDiff[searchPosition:]
		}
	}

	return segments
}

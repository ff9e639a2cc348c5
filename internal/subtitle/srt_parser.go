package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	lineBreakRegex = regexp.MustCompile(`\r\n|\n|\r`)
	timecodeRegex  = regexp.MustCompile(
		`(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`,
	)
)

// parses SRT text into captions. Malformed blocks are dropped and
// reported as diagnostics; parsing always continues with the next block.
func ParseSRT(text string) ([]Caption, []Diagnostic) {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := lineBreakRegex.Split(text, -1)

	var captions []Caption
	var diagnostics []Diagnostic

	isBlank := func(i int) bool {
		return strings.TrimSpace(lines[i]) == ""
	}

	i := 0
	for i < len(lines) {
		if isBlank(i) {
			i++
			continue
		}

		blockLine := i + 1
		indexLine := strings.TrimSpace(lines[i])
		i++

		timeLine := ""
		if i < len(lines) {
			timeLine = lines[i]
			i++
		}

		var textLines []string
		for i < len(lines) && !isBlank(i) {
			textLines = append(textLines, lines[i])
			i++
		}

		index, err := strconv.Atoi(indexLine)
		if err != nil {
			diagnostics = append(diagnostics, newDiagnostic(blockLine, DefectInvalidIndex))
			continue
		}

		matches := timecodeRegex.FindStringSubmatch(timeLine)
		if len(matches) != 3 {
			diagnostics = append(diagnostics, newDiagnostic(blockLine, DefectMalformedTimecode))
			continue
		}

		if len(textLines) == 0 {
			diagnostics = append(diagnostics, newDiagnostic(blockLine, DefectMissingText))
			continue
		}

		captions = append(captions, Caption{
			Index: index,
			Start: matches[1],
			End:   matches[2],
			Text:  strings.Join(textLines, "\n"),
		})
	}

	return captions, diagnostics
}

func newDiagnostic(line int, kind DefectKind) Diagnostic {
	return Diagnostic{
		Line:    line,
		Kind:    kind,
		Message: fmt.Sprintf("error parsing block at line %d: %s", line, kind),
	}
}

// reads and parses an SRT file from disk
func ReadSRTFile(path string) ([]Caption, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	captions, diagnostics := ParseSRT(string(data))
	return captions, diagnostics, nil
}

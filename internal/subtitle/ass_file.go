package subtitle

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// parsed Style or Dialogue record, keyed by its section's Format columns
type ASSRecord struct {
	Fields map[string]string
	Line   int
}

func (r ASSRecord) Get(column string) string {
	return r.Fields[strings.ToLower(column)]
}

// parsed ASS document with the sections stylesub emits
type ASSDocument struct {
	ScriptInfo map[string]string
	Styles     []ASSRecord
	Dialogues  []ASSRecord

	styleColumns []string
	eventColumns []string
}

// parses an ASS/SSA document. Unknown sections and comment lines are
// ignored; Style and Dialogue lines before their Format line are errors.
func ParseASS(text string) (*ASSDocument, error) {
	doc := &ASSDocument{
		ScriptInfo: make(map[string]string),
	}

	text = strings.TrimPrefix(text, "\ufeff")
	lines := lineBreakRegex.Split(text, -1)
	section := ""

	for i, line := range lines {
		lineNum := i + 1
		trimmedLine := strings.TrimSpace(line)

		if trimmedLine == "" || strings.HasPrefix(trimmedLine, ";") {
			continue
		}

		if strings.HasPrefix(trimmedLine, "[") &&
			strings.HasSuffix(trimmedLine, "]") {
			section = strings.ToLower(
				strings.TrimSuffix(strings.TrimPrefix(trimmedLine, "["), "]"),
			)
			continue
		}

		key, value, ok := strings.Cut(trimmedLine, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch section {
		case "script info":
			doc.ScriptInfo[key] = value

		case "v4+ styles", "v4 styles":
			switch key {
			case "Format":
				doc.styleColumns = splitFormatColumns(value)
			case "Style":
				record, err := newASSRecord(doc.styleColumns, value, lineNum)
				if err != nil {
					return nil, fmt.Errorf(
						"failed to parse Style at line %d: %w",
						lineNum,
						err,
					)
				}
				doc.Styles = append(doc.Styles, record)
			}

		case "events":
			switch key {
			case "Format":
				doc.eventColumns = splitFormatColumns(value)
			case "Dialogue":
				record, err := newASSRecord(doc.eventColumns, value, lineNum)
				if err != nil {
					return nil, fmt.Errorf(
						"failed to parse Dialogue at line %d: %w",
						lineNum,
						err,
					)
				}
				doc.Dialogues = append(doc.Dialogues, record)
			}
		}
	}

	return doc, nil
}

// reads and parses an ASS file from disk
func ReadASSFile(path string) (*ASSDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ASS file: %w", err)
	}
	return ParseASS(string(data))
}

func splitFormatColumns(value string) []string {
	columns := strings.Split(value, ",")
	for i, col := range columns {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
	}
	return columns
}

func newASSRecord(columns []string, content string, line int) (ASSRecord, error) {
	if len(columns) == 0 {
		return ASSRecord{}, fmt.Errorf("format columns not parsed yet")
	}

	parts := splitASSFields(content, len(columns))
	if len(parts) < len(columns) {
		return ASSRecord{}, fmt.Errorf(
			"expected %d fields, got %d",
			len(columns),
			len(parts),
		)
	}

	fields := make(map[string]string, len(columns))
	for i, col := range columns {
		fields[col] = parts[i]
	}
	return ASSRecord{Fields: fields, Line: line}, nil
}

// splits content into at most numFields fields; the last field keeps any
// remaining commas
func splitASSFields(content string, numFields int) []string {
	if numFields <= 0 {
		return nil
	}

	parts := make([]string, 0, numFields)
	remaining := content

	for i := 0; i < numFields-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			parts = append(parts, remaining)
			remaining = ""
			break
		}
		parts = append(parts, remaining[:idx])
		remaining = remaining[idx+1:]
	}

	if len(parts) < numFields {
		parts = append(parts, remaining)
	}

	return parts
}

// count of dialogues assigned to each style
type StyleCount struct {
	Name  string
	Count int
}

// dialogue counts per declared style, in declaration order. Styles
// referenced by dialogues but never declared are appended by name.
func (d *ASSDocument) StyleUsage() []StyleCount {
	counts := make(map[string]int)
	for _, dlg := range d.Dialogues {
		counts[dlg.Get("Style")]++
	}

	usage := make([]StyleCount, 0, len(d.Styles))
	declared := make(map[string]bool, len(d.Styles))
	for _, st := range d.Styles {
		name := st.Get("Name")
		declared[name] = true
		usage = append(usage, StyleCount{Name: name, Count: counts[name]})
	}

	var undeclared []string
	for name := range counts {
		if !declared[name] {
			undeclared = append(undeclared, name)
		}
	}
	sort.Strings(undeclared)
	for _, name := range undeclared {
		usage = append(usage, StyleCount{Name: name, Count: counts[name]})
	}

	return usage
}

// time span from the earliest dialogue start to the latest dialogue end
func (d *ASSDocument) Duration() time.Duration {
	if len(d.Dialogues) == 0 {
		return 0
	}
	start := parseASSTimestamp(d.Dialogues[0].Get("Start"))
	var end time.Duration
	for _, dlg := range d.Dialogues {
		if t := parseASSTimestamp(dlg.Get("Start")); t < start {
			start = t
		}
		if t := parseASSTimestamp(dlg.Get("End")); t > end {
			end = t
		}
	}
	return end - start
}

func parseASSTimestamp(ts string) time.Duration {
	ts = strings.TrimSpace(ts)
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	// split seconds and centiseconds
	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0
	}

	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0
	}

	centis, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond
}

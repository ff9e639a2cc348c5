package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// script info header values
type ScriptInfo struct {
	Title      string
	ScriptType string
	PlayResX   int
	PlayResY   int
}

func DefaultScriptInfo() ScriptInfo {
	return ScriptInfo{
		Title:      "Styled Subtitles",
		ScriptType: "v4.00+",
		PlayResX:   1920,
		PlayResY:   1080,
	}
}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Info ScriptInfo
}

func NewASSWriter(info ScriptInfo) *ASSWriter {
	return &ASSWriter{Info: info}
}

var eventFormat = []string{
	"Layer", "Start", "End", "Style", "Name",
	"MarginL", "MarginR", "MarginV", "Effect", "Text",
}

// renders captions as an ASS document. The selector is asked for one
// style per caption, in caption order.
func (w *ASSWriter) Render(
	captions []Caption,
	pool []Style,
	selector *StyleSelector,
) string {
	var sb strings.Builder

	// script info section
	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Info.Title))
	sb.WriteString(fmt.Sprintf("ScriptType: %s\n", w.Info.ScriptType))
	sb.WriteString(fmt.Sprintf("PlayResX: %d\n", w.Info.PlayResX))
	sb.WriteString(fmt.Sprintf("PlayResY: %d", w.Info.PlayResY))

	// v4+ styles section
	sb.WriteString("\n\n[V4+ Styles]\n")
	sb.WriteString("Format: " + strings.Join(styleFormat, ", "))
	for _, style := range pool {
		sb.WriteString("\n")
		sb.WriteString(style.Line())
	}

	// events section
	sb.WriteString("\n\n[Events]\n")
	sb.WriteString("Format: " + strings.Join(eventFormat, ", "))
	for _, caption := range captions {
		style := selector.Pick()
		sb.WriteString(fmt.Sprintf("\nDialogue: 0,%s,%s,%s,,0000,0000,0000,,%s",
			formatASSTime(caption.Start),
			formatASSTime(caption.End),
			style.Name,
			escapeASSText(caption.Text)))
	}

	return sb.String()
}

// renders and writes the document to path
func (w *ASSWriter) Write(
	captions []Caption,
	pool []Style,
	selector *StyleSelector,
	path string,
) error {
	return WriteDocument(w.Render(captions, pool, selector), path)
}

// writes an already rendered document to path
func WriteDocument(document, path string) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write ASS file: %w", err)
	}
	return nil
}

func escapeASSText(text string) string {
	return lineBreakRegex.ReplaceAllLiteralString(text, `\N`)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".ass", ".ssa":
		return FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}

// DefaultOutputBase is used when no source file name is known.
const DefaultOutputBase = "output"

// output path for a converted source file: a trailing .srt (any case) is
// replaced by .ass, any other name gets .ass appended
func DefaultOutputPath(source string) string {
	if source == "" {
		return DefaultOutputBase + GetExtensionForFormat(FormatASS)
	}
	ext := filepath.Ext(source)
	base := source
	if strings.EqualFold(ext, GetExtensionForFormat(FormatSRT)) {
		base = strings.TrimSuffix(source, ext)
	}
	return base + GetExtensionForFormat(FormatASS)
}

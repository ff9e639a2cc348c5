package subtitle

import (
	"fmt"
	"strings"
)

// ASS V4+ style record
type Style struct {
	Name            string
	FontName        string
	FontSize        int
	PrimaryColour   string
	SecondaryColour string
	Outline         int
	Shadow          int
	Bold            bool
	Italic          bool
	Underline       bool
	Alignment       int
}

// field order of Style records in the [V4+ Styles] section
var styleFormat = []string{
	"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour",
	"Outline", "Shadow", "Bold", "Italic", "Underline", "Alignment",
}

// Style line for the [V4+ Styles] section
func (s Style) Line() string {
	return fmt.Sprintf("Style: %s,%s,%d,%s,%s,%d,%d,%d,%d,%d,%d",
		s.Name,
		s.FontName,
		s.FontSize,
		s.PrimaryColour,
		s.SecondaryColour,
		s.Outline,
		s.Shadow,
		boolFlag(s.Bold),
		boolFlag(s.Italic),
		boolFlag(s.Underline),
		s.Alignment,
	)
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// MaxPoolSize keeps style names within the two digit suffix.
const MaxPoolSize = 99

// PoolOptions describes how a style pool is generated. Every style
// shares all attributes except its name and font, which cycles through
// Fonts by position.
type PoolOptions struct {
	Count           int
	Prefix          string
	Fonts           []string
	FontSize        int
	PrimaryColour   string
	SecondaryColour string
	Outline         int
	Shadow          int
	Bold            bool
	Italic          bool
	Underline       bool
	Alignment       int
}

func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		Count:           10,
		Prefix:          "HighContrast",
		Fonts:           []string{"Arial", "Verdana"},
		FontSize:        72,
		PrimaryColour:   "&H00FFFFFF&",
		SecondaryColour: "&H00000000&",
		Outline:         2,
		Shadow:          1,
		Bold:            true,
		Alignment:       2,
	}
}

// builds the style pool described by the options
func (o PoolOptions) Generate() ([]Style, error) {
	if o.Count < 1 || o.Count > MaxPoolSize {
		return nil, fmt.Errorf(
			"style count %d out of range (1-%d)",
			o.Count,
			MaxPoolSize,
		)
	}
	if strings.TrimSpace(o.Prefix) == "" {
		return nil, fmt.Errorf("style prefix is required")
	}
	if len(o.Fonts) == 0 {
		return nil, fmt.Errorf("at least one font is required")
	}

	pool := make([]Style, 0, o.Count)
	for i := 1; i <= o.Count; i++ {
		pool = append(pool, Style{
			Name:            fmt.Sprintf("%s%02d", o.Prefix, i),
			FontName:        o.Fonts[(i-1)%len(o.Fonts)],
			FontSize:        o.FontSize,
			PrimaryColour:   o.PrimaryColour,
			SecondaryColour: o.SecondaryColour,
			Outline:         o.Outline,
			Shadow:          o.Shadow,
			Bold:            o.Bold,
			Italic:          o.Italic,
			Underline:       o.Underline,
			Alignment:       o.Alignment,
		})
	}
	return pool, nil
}

// default pool of 10 high contrast styles alternating Arial and Verdana
func GeneratePool() []Style {
	pool, err := DefaultPoolOptions().Generate()
	if err != nil {
		panic(err)
	}
	return pool
}

package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	captions, diagnostics := ParseSRT(content)
	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(captions) != 3 {
		t.Fatalf("expected 3 captions, got %d", len(captions))
	}

	first := captions[0]
	if first.Index != 1 || first.Start != "00:00:01,000" || first.End != "00:00:04,000" {
		t.Errorf("caption 0: unexpected %+v", first)
	}
	if first.Text != "Hello, world!" {
		t.Errorf("caption 0: expected 'Hello, world!', got %q", first.Text)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if captions[1].Text != expectedText {
		t.Errorf("caption 1: expected %q, got %q", expectedText, captions[1].Text)
	}
}

func TestParseSRTLineEndings(t *testing.T) {
	block := []string{"1", "00:00:01,000 --> 00:00:02,000", "Hello", "world", "", "2", "00:00:03,000 --> 00:00:04,000", "Bye"}

	for name, sep := range map[string]string{
		"LF":   "\n",
		"CRLF": "\r\n",
		"CR":   "\r",
	} {
		t.Run(name, func(t *testing.T) {
			captions, diagnostics := ParseSRT(strings.Join(block, sep))
			if len(diagnostics) != 0 {
				t.Fatalf("expected no diagnostics, got %v", diagnostics)
			}
			if len(captions) != 2 {
				t.Fatalf("expected 2 captions, got %d", len(captions))
			}
			if captions[0].Text != "Hello\nworld" {
				t.Errorf("expected joined text, got %q", captions[0].Text)
			}
		})
	}
}

func TestParseSRTMalformedBlocks(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantKind  DefectKind
		wantLine  int
	}{
		{
			name: "invalid index",
			content: `1
00:00:01,000 --> 00:00:02,000
First

abc
00:00:03,000 --> 00:00:04,000
Broken

3
00:00:05,000 --> 00:00:06,000
Third
`,
			wantCount: 2,
			wantKind:  DefectInvalidIndex,
			wantLine:  5,
		},
		{
			name: "malformed timecode",
			content: `1
00:00:01.000 --> 00:00:02.000
Dots instead of commas

2
00:00:03,000 --> 00:00:04,000
Second
`,
			wantCount: 1,
			wantKind:  DefectMalformedTimecode,
			wantLine:  1,
		},
		{
			name: "missing text",
			content: `1
00:00:01,000 --> 00:00:02,000

2
00:00:03,000 --> 00:00:04,000
Second
`,
			wantCount: 1,
			wantKind:  DefectMissingText,
			wantLine:  1,
		},
		{
			name:      "index only at end of file",
			content:   "1\n00:00:01,000 --> 00:00:02,000\nOnly\n\n2",
			wantCount: 1,
			wantKind:  DefectMalformedTimecode,
			wantLine:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captions, diagnostics := ParseSRT(tt.content)
			if len(captions) != tt.wantCount {
				t.Errorf("expected %d captions, got %d", tt.wantCount, len(captions))
			}
			if len(diagnostics) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %v", len(diagnostics), diagnostics)
			}
			d := diagnostics[0]
			if d.Kind != tt.wantKind {
				t.Errorf("kind: got %q, want %q", d.Kind, tt.wantKind)
			}
			if d.Line != tt.wantLine {
				t.Errorf("line: got %d, want %d", d.Line, tt.wantLine)
			}
			if !strings.Contains(d.Message, string(tt.wantKind)) {
				t.Errorf("message %q does not name defect %q", d.Message, tt.wantKind)
			}
		})
	}
}

func TestParseSRTKeepsIndexVerbatim(t *testing.T) {
	content := `7
00:00:01,000 --> 00:00:02,000
A

7
00:00:03,000 --> 00:00:04,000
B

2
00:00:05,000 --> 00:00:06,000
C
`
	captions, _ := ParseSRT(content)
	if len(captions) != 3 {
		t.Fatalf("expected 3 captions, got %d", len(captions))
	}
	want := []int{7, 7, 2}
	for i, c := range captions {
		if c.Index != want[i] {
			t.Errorf("caption %d: index %d, want %d", i, c.Index, want[i])
		}
	}
	if captions[2].Text != "C" {
		t.Errorf("expected input order to be preserved, got %q", captions[2].Text)
	}
}

func TestParseSRTEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "\ufeff", "  \r\n  "} {
		captions, diagnostics := ParseSRT(input)
		if len(captions) != 0 || len(diagnostics) != 0 {
			t.Errorf("ParseSRT(%q): got %d captions, %d diagnostics", input, len(captions), len(diagnostics))
		}
	}
}

func TestParseSRTStripsBOMAndExtraBlankLines(t *testing.T) {
	content := "\ufeff\n\n1\n00:00:01,000-->00:00:02,000\nHi\n\n\n\n2\n00:00:03,000 --> 00:00:04,000\nThere\n\n"
	captions, diagnostics := ParseSRT(content)
	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(captions) != 2 {
		t.Fatalf("expected 2 captions, got %d", len(captions))
	}
	if captions[0].Start != "00:00:01,000" || captions[0].End != "00:00:02,000" {
		t.Errorf("unexpected timecodes %q -> %q", captions[0].Start, captions[0].End)
	}
}

func TestReadSRTFile(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nHello\n"
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	captions, diagnostics, err := ReadSRTFile(srtPath)
	if err != nil {
		t.Fatalf("ReadSRTFile returned error: %v", err)
	}
	if len(captions) != 1 || len(diagnostics) != 0 {
		t.Errorf("got %d captions, %d diagnostics", len(captions), len(diagnostics))
	}

	if _, _, err := ReadSRTFile(filepath.Join(tmpDir, "missing.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}

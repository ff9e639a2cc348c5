package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// holds options for burning subtitles into a video
type BurnOptions struct {
	VideoCodec string // e.g. libx264; empty keeps ffmpeg's default for the container
	CRF        int    // quality for x264/x265, 0 = encoder default
	Preset     string // encoder preset, e.g. veryfast
}

// returns sensible defaults for a quick preview render
func DefaultBurnOptions() BurnOptions {
	return BurnOptions{
		VideoCodec: "libx264",
		CRF:        23,
		Preset:     "veryfast",
	}
}

// renders ASS subtitles onto video frames using ffmpeg
type Burner struct {
	ffmpegPath string
}

func NewBurner(ffmpegPath string) *Burner {
	return &Burner{ffmpegPath: ffmpegPath}
}

// burns the subtitles at assPath into a copy of videoPath written to
// outputPath. Audio streams are copied untouched.
func (b *Burner) BurnSubtitles(
	ctx context.Context,
	videoPath, assPath, outputPath string,
	opts BurnOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(assPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", assPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := burnArgs(videoPath, assPath, outputPath, opts)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, b.ffmpegPath, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg burn cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("ffmpeg burn failed: %w: %s", err, lastLine(stderr.String()))
	}

	return nil
}

func burnArgs(videoPath, assPath, outputPath string, opts BurnOptions) []string {
	kwargs := ffmpeg.KwArgs{
		"vf":  "subtitles=" + escapeFilterPath(assPath),
		"c:a": "copy",
	}
	if opts.VideoCodec != "" {
		kwargs["c:v"] = opts.VideoCodec
	}
	if opts.CRF > 0 {
		kwargs["crf"] = opts.CRF
	}
	if opts.Preset != "" {
		kwargs["preset"] = opts.Preset
	}

	return ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		GetArgs()
}

var (
	// option level: the value of a single filter option
	filterOptionEscaper = strings.NewReplacer(
		`\`, `\\`,
		`:`, `\:`,
		`'`, `\'`,
	)
	// graph level: the filter description inside the filtergraph
	filterGraphEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`,`, `\,`,
		`;`, `\;`,
		`[`, `\[`,
		`]`, `\]`,
	)
)

// escapes a path for use as a filter option value inside a filtergraph.
// ffmpeg unescapes the graph level first, then the option level.
func escapeFilterPath(path string) string {
	return filterGraphEscaper.Replace(filterOptionEscaper.Replace(filepath.ToSlash(path)))
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

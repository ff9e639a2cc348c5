package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/stylesub/internal/ffmpeg"
	"github.com/mgpai22/stylesub/internal/subtitle"
	"github.com/mgpai22/stylesub/internal/video"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [subtitle_file]",
	Short: "Burn styled subtitles into a copy of a video",
	Long: `Convert an SRT file with the configured style pool and render the
result onto a copy of a video with ffmpeg, so the randomized styling can be
checked in any player.

ffmpeg is taken from STYLESUB_FFMPEG_PATH or PATH.

Examples:
  stylesub preview movie.srt --video movie.mp4
  stylesub preview movie.srt --video movie.mkv -o preview.mkv --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	defaults := video.DefaultBurnOptions()

	previewCmd.Flags().
		String("video", "", "Video file to render the subtitles onto (required)")
	previewCmd.Flags().
		Uint64("seed", 0, "Seed for style selection (0 = random, overrides config)")
	previewCmd.Flags().
		String("codec", defaults.VideoCodec, "Video codec for the rendered preview")
	previewCmd.Flags().
		Int("crf", defaults.CRF, "Constant rate factor for the video codec")
	previewCmd.Flags().
		String("preset", defaults.Preset, "Encoder preset")

	_ = previewCmd.MarkFlagRequired("video")
}

func runPreview(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := cmd.Context()

	videoPath, _ := cmd.Flags().GetString("video")
	seed, _ := cmd.Flags().GetUint64("seed")
	codec, _ := cmd.Flags().GetString("codec")
	crf, _ := cmd.Flags().GetInt("crf")
	preset, _ := cmd.Flags().GetString("preset")
	outputPath, _ := cmd.Flags().GetString("output")

	if !cmd.Flags().Changed("seed") {
		seed = cfg.Output.Seed
	}

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	if outputPath == "" {
		outputPath = previewOutputPath(videoPath)
	}

	text, err := readInput(subtitlePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ffmpegPath, err := ffmpeg.FFmpegPath()
	if err != nil {
		return err
	}

	converter, err := newConverter(seed)
	if err != nil {
		return err
	}

	result := converter.Convert(text)
	logger.ConversionLog(result.Log, subtitlePath)
	if result.Empty() {
		return fmt.Errorf("no captions parsed from %s; nothing to preview", subtitlePath)
	}

	tempDir, err := os.MkdirTemp("", "stylesub-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	assPath := filepath.Join(tempDir, "preview.ass")
	if err := subtitle.WriteDocument(result.Document, assPath); err != nil {
		return err
	}

	logger.Infow("Rendering preview",
		"video", videoPath,
		"output", outputPath,
		"captions", len(result.Captions),
		"ffmpeg", ffmpegPath,
	)

	burner := video.NewBurner(ffmpegPath)
	opts := video.BurnOptions{
		VideoCodec: codec,
		CRF:        crf,
		Preset:     preset,
	}
	if err := burner.BurnSubtitles(ctx, videoPath, assPath, outputPath, opts); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Preview rendered successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Captions: %d\n", len(result.Captions))

	return nil
}

func previewOutputPath(videoPath string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + ".preview" + ext
}

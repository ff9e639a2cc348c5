package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/mgpai22/stylesub/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert an SRT file to a styled ASS file",
	Long: `Convert a SubRip (SRT) subtitle file into an Advanced SubStation Alpha
(ASS) file. Every caption is assigned a style from the configured pool;
no style repeats until the whole pool has been used.

Malformed blocks are skipped and reported; the rest of the file is still
converted. Use "-" to read from standard input.

Examples:
  stylesub convert movie.srt
  stylesub convert movie.srt -o styled.ass --seed 42
  stylesub convert movie.srt --stdout --copy
  cat movie.srt | stylesub convert - --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Bool("stdout", false, "Write the ASS document to standard output instead of a file")
	convertCmd.Flags().
		Uint64("seed", 0, "Seed for style selection (0 = random, overrides config)")
	convertCmd.Flags().
		Bool("copy", false, "Copy the ASS document to the clipboard")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	toStdout, _ := cmd.Flags().GetBool("stdout")
	seed, _ := cmd.Flags().GetUint64("seed")
	copyOut, _ := cmd.Flags().GetBool("copy")
	outputPath, _ := cmd.Flags().GetString("output")

	if !cmd.Flags().Changed("seed") {
		seed = cfg.Output.Seed
	}
	if !cmd.Flags().Changed("copy") {
		copyOut = cfg.Output.CopyToClipboard
	}

	text, err := readInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if outputPath == "" && !toStdout {
		outputPath = subtitle.DefaultOutputPath(sourceName(inputPath))
	}

	logger.Infow("Converting subtitles",
		"input", inputPath,
		"output", outputPath,
		"seed", seed,
	)

	converter, err := newConverter(seed)
	if err != nil {
		return err
	}

	result := converter.Convert(text)
	logger.ConversionLog(result.Log, inputPath)

	if result.Empty() {
		logger.Warnw("No captions parsed; nothing to export",
			"input", inputPath,
			"skipped_blocks", len(result.Diagnostics),
		)
		if !toStdout {
			return fmt.Errorf("no captions parsed from %s; %s was not written", inputPath, outputPath)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Document)
		return nil
	}

	if toStdout {
		fmt.Fprintln(cmd.OutOrStdout(), result.Document)
	} else {
		if err := subtitle.WriteDocument(result.Document, outputPath); err != nil {
			return err
		}
	}

	if copyOut {
		copyToClipboard(result.Document)
	}

	if !toStdout {
		absOutput, _ := filepath.Abs(outputPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Subtitles converted successfully: %s\n", absOutput)
		fmt.Fprintf(cmd.OutOrStdout(), "  Captions: %d\n", len(result.Captions))
		fmt.Fprintf(cmd.OutOrStdout(), "  Skipped blocks: %d\n", len(result.Diagnostics))
	}

	return nil
}

// converter configured from the loaded config
func newConverter(seed uint64) (*subtitle.Converter, error) {
	pool, err := cfg.PoolOptions().Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate style pool: %w", err)
	}
	return &subtitle.Converter{
		Pool: pool,
		Info: cfg.ScriptInfo(),
		Rand: newRand(seed),
	}, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("subtitle file not found: %s", path)
	}
	format, err := subtitle.GetFormatFromExtension(path)
	if err != nil {
		return "", err
	}
	if format != subtitle.FormatSRT {
		return "", fmt.Errorf("input must be an SRT file, got %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read subtitle file: %w", err)
	}
	return string(data), nil
}

// file name used to derive the output path; stdin has none
func sourceName(inputPath string) string {
	if inputPath == "-" {
		return ""
	}
	return inputPath
}

func copyToClipboard(document string) {
	if err := clipboard.WriteAll(document); err != nil {
		logger.Errorw("Clipboard failed", "error", err)
		return
	}
	logger.Infow("Copied to clipboard")
}

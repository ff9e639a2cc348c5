package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,500
Hello
world

two
00:00:03,000 --> 00:00:04,000
Broken index

3
00:00:05,000 --> 00:00:06,996
Last line
`

// isolates HOME and the working directory so no user config or .env is read
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STYLESUB_SEED", "")
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertWritesDefaultOutput(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "movie.srt")
	require.NoError(t, os.WriteFile(input, []byte(sampleSRT), 0o644))

	out, err := execute(t, "", "convert", input, "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Subtitles converted successfully")
	require.Contains(t, out, "Captions: 2")
	require.Contains(t, out, "Skipped blocks: 1")

	data, err := os.ReadFile(filepath.Join(dir, "movie.ass"))
	require.NoError(t, err)
	doc := string(data)
	require.Equal(t, 2, strings.Count(doc, "\nDialogue: "))
	require.Contains(t, doc, `Hello\Nworld`)
	require.Contains(t, doc, "0:00:05.00,0:00:07.00")
}

func TestConvertStdinToStdoutIsDeterministicWithSeed(t *testing.T) {
	isolate(t)

	first, err := execute(t, sampleSRT, "convert", "-", "--stdout", "--seed", "11")
	require.NoError(t, err)
	second, err := execute(t, sampleSRT, "convert", "-", "--stdout", "--seed", "11")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(first, "[Script Info]"))
	require.Equal(t, first, second)
	require.NotContains(t, first, "Subtitles converted successfully")
}

func TestConvertUsesConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[styles]\ncount = 2\nprefix = \"Pop\"\n[script]\ntitle = \"Party\"\n"), 0o644))

	out, err := execute(t, sampleSRT, "convert", "-", "--stdout", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Title: Party")
	require.Contains(t, out, "Style: Pop02,")
	require.NotContains(t, out, "HighContrast")
}

func TestConvertEmptyInputStillProducesDocument(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "convert", "-", "--stdout")
	require.NoError(t, err)
	require.Contains(t, out, "[V4+ Styles]")
	require.Contains(t, out, "[Events]")
	require.NotContains(t, out, "Dialogue:")
}

func TestConvertWithoutCaptionsWritesNothing(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "empty.srt")
	require.NoError(t, os.WriteFile(input, []byte("garbage\nnot a timecode\n"), 0o644))

	out, err := execute(t, "", "convert", input)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no captions parsed")
	require.NotContains(t, out, "converted successfully")
	require.NoFileExists(t, filepath.Join(dir, "empty.ass"))

	explicit := filepath.Join(dir, "out", "explicit.ass")
	_, err = execute(t, "", "convert", input, "-o", explicit)
	require.Error(t, err)
	require.NoFileExists(t, explicit)
}

func TestConvertRejectsNonSRTInput(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "movie.vtt")
	require.NoError(t, os.WriteFile(input, []byte("WEBVTT\n"), 0o644))

	_, err := execute(t, "", "convert", input)
	require.Error(t, err)

	_, err = execute(t, "", "convert", filepath.Join(dir, "missing.srt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestStylesRaw(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "styles", "--raw")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "Style: HighContrast01,Arial,72,&H00FFFFFF&,&H00000000&,2,1,1,0,0,2", lines[0])
}

func TestStylesTable(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "styles")
	require.NoError(t, err)
	require.Contains(t, out, "HighContrast10")
	require.Contains(t, out, "Verdana")
}

func TestInspectConvertedFile(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "ep.srt")
	output := filepath.Join(dir, "out", "ep.ass")
	require.NoError(t, os.WriteFile(input, []byte(sampleSRT), 0o644))

	_, err := execute(t, "", "convert", input, "-o", output)
	require.NoError(t, err)

	out, err := execute(t, "", "inspect", output)
	require.NoError(t, err)
	require.Contains(t, out, "Title: Styled Subtitles")
	require.Contains(t, out, "Dialogues: 2")
	require.Contains(t, out, "HighContrast01")

	_, err = execute(t, "", "inspect", input)
	require.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "stylesub.toml")

	out, err := execute(t, "", "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, path)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "[styles]")
	require.Contains(t, out, "HighContrast")
}

func TestLicense(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "license")
	require.NoError(t, err)
	require.Contains(t, out, "MIT License")
}

func TestPreviewOutputPath(t *testing.T) {
	require.Equal(t, "dir/movie.preview.mp4", previewOutputPath("dir/movie.mp4"))
	require.Equal(t, "clip.preview", previewOutputPath("clip"))
}

func TestPreviewRequiresExistingVideo(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "movie.srt")
	require.NoError(t, os.WriteFile(input, []byte(sampleSRT), 0o644))

	_, err := execute(t, "", "preview", input, "--video", filepath.Join(dir, "missing.mp4"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "video file not found")
}

func TestNewRand(t *testing.T) {
	require.Nil(t, newRand(0))

	a, b := newRand(5), newRand(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.IntN(100), b.IntN(100))
	}
}

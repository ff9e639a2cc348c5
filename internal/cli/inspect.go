package cli

import (
	"fmt"
	"strconv"

	"github.com/mgpai22/stylesub/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [ass_file]",
	Short: "Show script info and style usage of an ASS file",
	Long: `Read an ASS file and report its script info, the number of dialogue
lines, and how many dialogues use each style.

Examples:
  stylesub inspect movie.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := subtitle.GetFormatFromExtension(path)
	if err != nil {
		return err
	}
	if format != subtitle.FormatASS {
		return fmt.Errorf("inspect expects an ASS or SSA file, got %s", path)
	}

	doc, err := subtitle.ReadASSFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	logger.Debugw("Parsed ASS file",
		"styles", len(doc.Styles),
		"dialogues", len(doc.Dialogues),
	)

	out := cmd.OutOrStdout()
	for _, key := range []string{"Title", "ScriptType", "PlayResX", "PlayResY"} {
		if value, ok := doc.ScriptInfo[key]; ok {
			fmt.Fprintf(out, "%s: %s\n", key, value)
		}
	}
	fmt.Fprintf(out, "Dialogues: %d\n", len(doc.Dialogues))
	fmt.Fprintf(out, "Duration: %s\n", doc.Duration())

	usage := doc.StyleUsage()
	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		share := "0.0%"
		if len(doc.Dialogues) > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(u.Count)/float64(len(doc.Dialogues)))
		}
		rows = append(rows, []string{u.Name, strconv.Itoa(u.Count), share})
	}
	fmt.Fprintln(out, renderTable(
		out,
		[]string{"Style", "Dialogues", "Share"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))

	return nil
}

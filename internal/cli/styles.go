package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mgpai22/stylesub/internal/subtitle"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the style pool used for conversions",
	Long: `Print every style of the configured pool as a table, or as the raw
ASS Style lines with --raw.`,
	Args: cobra.NoArgs,
	RunE: runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().
		Bool("raw", false, "Print ASS Style lines instead of a table")
}

func runStyles(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	pool, err := cfg.PoolOptions().Generate()
	if err != nil {
		return fmt.Errorf("failed to generate style pool: %w", err)
	}

	out := cmd.OutOrStdout()
	if raw {
		for _, style := range pool {
			fmt.Fprintln(out, style.Line())
		}
		return nil
	}

	fmt.Fprintln(out, renderStyleTable(out, pool))
	return nil
}

func renderStyleTable(w io.Writer, pool []subtitle.Style) string {
	headers := []string{"#", "Name", "Font", "Size", "Primary", "Secondary", "Outline", "Shadow", "B", "I", "U", "Align"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(pool))
	for i, s := range pool {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Name,
			s.FontName,
			strconv.Itoa(s.FontSize),
			s.PrimaryColour,
			s.SecondaryColour,
			strconv.Itoa(s.Outline),
			strconv.Itoa(s.Shadow),
			flag(s.Bold),
			flag(s.Italic),
			flag(s.Underline),
			strconv.Itoa(s.Alignment),
		})
	}
	return renderTable(w, headers, rows, aligns)
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/centred-cli/internal/core/domain"
)

var (
	tableColumns string
	tableWidth   int
	tableColour  bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render rows with centred columns",
	Long: `Render tab-separated rows from standard input as a table whose
headers and cells are all centred in fixed-width columns.

  printf '1\t10.5\n2\tw\n' | centred table --columns ID,Value --width 10`,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&tableColumns, "columns", "c", "", "column headers (comma separated)")
	tableCmd.Flags().IntVarP(&tableWidth, "width", "w", 10, "column width")
	tableCmd.Flags().BoolVar(&tableColour, "colour", false, "render the header row in colour")
	rootCmd.AddCommand(tableCmd)
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

func runTable(cmd *cobra.Command, _ []string) error {
	if formatterService == nil {
		return errors.New("formatter service not configured")
	}
	if tableColumns == "" {
		return errors.New("at least one column header is required (--columns)")
	}
	headers := strings.Split(tableColumns, ",")

	var rows [][]string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	table := domain.Table{
		Headers:     headers,
		Rows:        rows,
		ColumnWidth: tableWidth,
	}

	settings := settingsServiceOrDefaults()
	out, err := formatterService.RenderTable(table, settings.FillRune())
	if err != nil {
		return err
	}

	if tableColour {
		lines := strings.SplitN(out, "\n", 2)
		lines[0] = tableHeaderStyle.Render(lines[0])
		out = strings.Join(lines, "\n")
	}
	cmd.Print(out)
	return nil
}

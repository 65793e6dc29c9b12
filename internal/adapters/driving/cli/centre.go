package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/centred-cli/internal/logger"
)

var (
	centreWidth    int
	centreFill     string
	centreTerminal bool
)

var centreCmd = &cobra.Command{
	Use:   "centre [text...]",
	Short: "Centre text in a fixed-width field",
	Long: `Centre each argument in a fixed-width field, one per line.
With no arguments, lines are read from standard input.

The width comes from --width, or --terminal to use the current terminal
width, or the configured default. A width of 0 prints content unchanged.`,
	RunE: runCentre,
}

func init() {
	centreCmd.Flags().IntVarP(&centreWidth, "width", "w", -1, "field width (overrides the configured default)")
	centreCmd.Flags().StringVarP(&centreFill, "fill", "f", "", "fill character (overrides the configured default)")
	centreCmd.Flags().BoolVarP(&centreTerminal, "terminal", "t", false, "centre across the full terminal width")
	rootCmd.AddCommand(centreCmd)
}

func runCentre(cmd *cobra.Command, args []string) error {
	if formatterService == nil {
		return errors.New("formatter service not configured")
	}

	width, fill, err := resolveFormat(cmd)
	if err != nil {
		return err
	}
	logger.Debug("resolved width %d, fill %q", width, fill)

	if len(args) > 0 {
		for _, arg := range args {
			cmd.Println(formatterService.CentreLine(arg, width, fill))
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		cmd.Println(formatterService.CentreLine(scanner.Text(), width, fill))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// resolveFormat determines the width and fill for a centring command from
// flags, terminal size, and the persisted defaults, in that order.
func resolveFormat(cmd *cobra.Command) (int, rune, error) {
	settings := settingsServiceOrDefaults()

	width := settings.Width
	if centreTerminal {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		} else {
			logger.Warn("stdout is not a terminal, using configured width %d", width)
		}
	}
	if cmd.Flags().Changed("width") {
		width = centreWidth
	}
	if width < 0 {
		return 0, 0, fmt.Errorf("width must not be negative, got %d", width)
	}

	fill := settings.FillRune()
	if centreFill != "" {
		runes := []rune(centreFill)
		if len(runes) != 1 {
			return 0, 0, fmt.Errorf("fill must be exactly one character, got %q", centreFill)
		}
		fill = runes[0]
	}

	return width, fill, nil
}

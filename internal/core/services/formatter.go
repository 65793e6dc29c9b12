package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/centred-cli/internal/align"
	"github.com/custodia-labs/centred-cli/internal/core/domain"
	"github.com/custodia-labs/centred-cli/internal/core/ports/driving"
	"github.com/custodia-labs/centred-cli/internal/logger"
)

// Ensure FormatterService implements the interface.
var _ driving.FormatterService = (*FormatterService)(nil)

// FormatterService centres values in fixed-width fields using the align
// package. It is stateless; one instance can serve the whole process.
type FormatterService struct{}

// NewFormatterService creates a new formatter service.
func NewFormatterService() *FormatterService {
	return &FormatterService{}
}

// CentreLine centres text in the given field width using fill for padding.
func (s *FormatterService) CentreLine(text string, width int, fill rune) string {
	logger.Debug("centring %q in width %d (content length %d)", text, width, len(text))
	return align.CentreFill(text, width, fill)
}

// CentreValue centres the textual form of any value. Numeric values use
// their canonical decimal representation.
func (s *FormatterService) CentreValue(value any, width int, fill rune) string {
	return align.CentreFill(align.Centred(value).String(), width, fill)
}

// RenderTable renders the table with every header and cell centred in the
// table's column width. The output ends with a trailing newline.
func (s *FormatterService) RenderTable(table domain.Table, fill rune) (string, error) {
	if err := table.Validate(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}

	var b strings.Builder
	w := align.NewWriter(&b)
	w.SetFill(fill)

	writeRow := func(cells []string) error {
		for col := 0; col < table.Columns(); col++ {
			cell := ""
			if col < len(cells) {
				cell = cells[col]
			}
			w.SetWidth(table.ColumnWidth)
			if _, err := w.WriteField(align.Centred(cell)); err != nil {
				return err
			}
		}
		_, err := b.WriteString("\n")
		return err
	}

	if err := writeRow(table.Headers); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	for _, row := range table.Rows {
		if err := writeRow(row); err != nil {
			return "", fmt.Errorf("rendering table: %w", err)
		}
	}

	return b.String(), nil
}

package driving

import "github.com/custodia-labs/centred-cli/internal/core/domain"

// FormatterService centres values in fixed-width output fields.
type FormatterService interface {
	// CentreLine centres text in the given field width using fill for
	// padding. A width at most the text length returns it verbatim.
	CentreLine(text string, width int, fill rune) string

	// CentreValue centres the textual form of any value. Numeric values
	// use their canonical decimal representation.
	CentreValue(value any, width int, fill rune) string

	// RenderTable renders the table with every header and cell centred
	// in the table's column width.
	RenderTable(table domain.Table, fill rune) (string, error)
}

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCmd_RendersCentredColumns(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "1\t10\n2\tw\n",
		"table", "--columns", "Column A,Column B", "--width", "10")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " Column A  Column B ", lines[0])
	assert.Equal(t, "    1         10    ", lines[1])
	assert.Equal(t, "    2         w     ", lines[2])
}

func TestTableCmd_HeadersOnly(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "", "table", "--columns", "A,B", "--width", "4")

	require.NoError(t, err)
	assert.Equal(t, " A   B  \n", out)
}

func TestTableCmd_SkipsBlankLines(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "1\n\n2\n", "table", "--columns", "N", "--width", "3")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestTableCmd_RequiresColumns(t *testing.T) {
	setupServices(t)

	_, err := executeCommand(t, "", "table")

	assert.Error(t, err)
}

func TestTableCmd_RowWiderThanHeadersFails(t *testing.T) {
	setupServices(t)

	_, err := executeCommand(t, "1\t2\t3\n", "table", "--columns", "A,B", "--width", "4")

	assert.Error(t, err)
}

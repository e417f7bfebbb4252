package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Console writes the human-readable report. It has no state beyond the
// destination writer; all methods are pure formatting.
type Console struct {
	w io.Writer
}

// NewConsole creates a console report writer
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Section prints an underlined top-level section header
func (c *Console) Section(title string) {
	rule := strings.Repeat("=", len(title))
	fmt.Fprintf(c.w, "\n%s\n%s\n%s\n", rule, title, rule)
}

// SubSection prints an underlined sub-section header
func (c *Console) SubSection(title string) {
	fmt.Fprintf(c.w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// Printf writes formatted text to the report
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format, args...)
}

// Table writes a table with the given header and rows
func (c *Console) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(c.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

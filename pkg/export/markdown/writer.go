package markdown

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/chapman178/om-Aviary/pkg/models/domain"
)

// Writer renders named value tables as markdown. Every row carries its unit;
// unresolved values render as "n/a" rather than dropping the row.
type Writer struct {
	w    io.Writer
	tmpl *template.Template
}

const tableTemplate = `
| Name | Value | Units |
| :--- | :--- | :--- |
{{range .}}| {{.Name}} | {{formatValue .Value}} | {{.Unit}} |
{{end}}`

func NewWriter(w io.Writer) (*Writer, error) {
	funcMap := template.FuncMap{
		"formatValue": func(v *float64) string {
			if v == nil {
				return "n/a"
			}
			return strconv.FormatFloat(*v, 'g', 8, 64)
		},
	}

	t, err := template.New("table").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table template: %w", err)
	}
	return &Writer{w: w, tmpl: t}, nil
}

// Section writes a top-level section header.
func (m *Writer) Section(title string) error {
	_, err := fmt.Fprintf(m.w, "# %s\n", title)
	return err
}

// Subsection writes a second-level header.
func (m *Writer) Subsection(title string) error {
	_, err := fmt.Fprintf(m.w, "\n## %s\n", title)
	return err
}

// Table renders the values as a three-column markdown table in insertion
// order.
func (m *Writer) Table(values *domain.NamedValues) error {
	return m.tmpl.Execute(m.w, values.Items())
}

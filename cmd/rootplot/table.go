package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nzipper/root-plotting/src/hist"
)

type integralRow struct {
	Name     string
	Lo, Hi   float64
	Integral hist.Integral
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	effStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F"))
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderIntegrals prints one line per curve. On a terminal the rows become an
// aligned table; otherwise each line is "name: Integrated Eff = ...".
func renderIntegrals(rows []integralRow, styled bool) string {
	var b strings.Builder
	if !styled {
		for _, r := range rows {
			b.WriteString(r.Name + ": " + r.Integral.String() + "\n")
		}
		return b.String()
	}
	header := []string{"input", "range", "passed", "total", "efficiency"}
	cells := [][]string{header}
	for _, r := range rows {
		in := r.Integral
		cells = append(cells, []string{
			r.Name,
			"[" + num(r.Lo) + ", " + num(r.Hi) + "]",
			num(in.Passed),
			num(in.Total),
			in.FormatEfficiency() + " ± " + in.FormatError(),
		})
	}
	widths := make([]int, len(header))
	for _, row := range cells {
		for j, c := range row {
			if w := lipgloss.Width(c); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for i, row := range cells {
		parts := make([]string, len(row))
		for j, c := range row {
			st := cellStyle.Width(widths[j] + 2)
			switch {
			case i == 0:
				st = st.Inherit(headerStyle)
			case j == len(row)-1:
				st = st.Inherit(effStyle)
			}
			parts[j] = st.Render(c)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n")
	}
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

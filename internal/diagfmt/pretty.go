package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"parsefloat/internal/diag"
	"parsefloat/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	markColor = color.New(color.FgRed)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем, по опции, строку файла с подчёркиванием ~~~~ длиной в Span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		sev := d.Severity.String()
		if opts.Color {
			switch d.Severity {
			case diag.SevError:
				sev = errColor.Sprint(sev)
			case diag.SevWarning:
				sev = warnColor.Sprint(sev)
			default:
				sev = infoColor.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

		if opts.Context {
			line := f.GetLine(start.Line)
			if line != "" {
				fmt.Fprintf(w, "  %s\n", line)
				marker := strings.Repeat("~", max(int(d.Primary.Len()), 1))
				if opts.Color {
					marker = markColor.Sprint(marker)
				}
				fmt.Fprintf(w, "  %s\n", marker)
			}
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  note: %s\n", n.Msg)
			}
		}
	}
}
